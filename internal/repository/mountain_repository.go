package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"trekkit/internal/model"
)

type MountainRepository struct {
	db *gorm.DB
}

func NewMountainRepository(db *gorm.DB) *MountainRepository {
	return &MountainRepository{db: db}
}

func (r *MountainRepository) List(name string, offset, limit int) ([]model.Mountain, error) {
	query := r.db.Model(&model.Mountain{})
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}

	var mountains []model.Mountain
	if err := query.Order("name ASC").Offset(offset).Limit(limit).Find(&mountains).Error; err != nil {
		return nil, fmt.Errorf("list mountains failed: %w", err)
	}
	return mountains, nil
}

func (r *MountainRepository) GetByID(id uint) (*model.Mountain, error) {
	var mountain model.Mountain
	if err := r.db.First(&mountain, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query mountain by id failed: %w", err)
	}
	return &mountain, nil
}

func (r *MountainRepository) ListCourses(mountainID uint) ([]model.MountainCourse, error) {
	var courses []model.MountainCourse
	if err := r.db.Where("mountain_id = ?", mountainID).Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("list mountain courses failed: %w", err)
	}
	return courses, nil
}

func (r *MountainRepository) ListImages(mountainID uint) ([]model.MountainImage, error) {
	var images []model.MountainImage
	if err := r.db.Where("mountain_id = ?", mountainID).Find(&images).Error; err != nil {
		return nil, fmt.Errorf("list mountain images failed: %w", err)
	}
	return images, nil
}
