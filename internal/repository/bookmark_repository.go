package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"trekkit/internal/model"
)

type BookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

func (r *BookmarkRepository) Create(b *model.MountainBookmark) error {
	if err := r.db.Create(b).Error; err != nil {
		return fmt.Errorf("create bookmark failed: %w", err)
	}
	return nil
}

func (r *BookmarkRepository) Get(userID, mountainID uint) (*model.MountainBookmark, error) {
	var b model.MountainBookmark
	err := r.db.Where("user_id = ? AND mountain_id = ?", userID, mountainID).First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query bookmark failed: %w", err)
	}
	return &b, nil
}

func (r *BookmarkRepository) Delete(userID, mountainID uint) error {
	if err := r.db.Where("user_id = ? AND mountain_id = ?", userID, mountainID).
		Delete(&model.MountainBookmark{}).Error; err != nil {
		return fmt.Errorf("delete bookmark failed: %w", err)
	}
	return nil
}

// ListMountainsByUser returns the bookmarked mountains themselves, newest
// bookmark first.
func (r *BookmarkRepository) ListMountainsByUser(userID uint) ([]model.Mountain, error) {
	var mountains []model.Mountain
	err := r.db.
		Joins("JOIN mountain_bookmarks ON mountain_bookmarks.mountain_id = mountains.id").
		Where("mountain_bookmarks.user_id = ?", userID).
		Order("mountain_bookmarks.id DESC").
		Find(&mountains).Error
	if err != nil {
		return nil, fmt.Errorf("list bookmarked mountains failed: %w", err)
	}
	return mountains, nil
}
