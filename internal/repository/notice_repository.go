package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"trekkit/internal/model"
)

type NoticeRepository struct {
	db *gorm.DB
}

func NewNoticeRepository(db *gorm.DB) *NoticeRepository {
	return &NoticeRepository{db: db}
}

func (r *NoticeRepository) Create(notice *model.Notice) error {
	if err := r.db.Create(notice).Error; err != nil {
		return fmt.Errorf("create notice failed: %w", err)
	}
	return nil
}

func (r *NoticeRepository) GetByID(id uint) (*model.Notice, error) {
	var notice model.Notice
	if err := r.db.First(&notice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query notice by id failed: %w", err)
	}
	return &notice, nil
}

func (r *NoticeRepository) List(offset, limit int) ([]model.Notice, int64, error) {
	var total int64
	if err := r.db.Model(&model.Notice{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count notices failed: %w", err)
	}

	var notices []model.Notice
	if err := r.db.Order("id DESC").Offset(offset).Limit(limit).Find(&notices).Error; err != nil {
		return nil, 0, fmt.Errorf("list notices failed: %w", err)
	}
	return notices, total, nil
}

func (r *NoticeRepository) Update(notice *model.Notice) error {
	if err := r.db.Save(notice).Error; err != nil {
		return fmt.Errorf("update notice failed: %w", err)
	}
	return nil
}

func (r *NoticeRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Notice{}, id).Error; err != nil {
		return fmt.Errorf("delete notice failed: %w", err)
	}
	return nil
}

func (r *NoticeRepository) IncrementViewCount(id uint) error {
	if err := r.db.Model(&model.Notice{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
		return fmt.Errorf("increment notice view count failed: %w", err)
	}
	return nil
}
