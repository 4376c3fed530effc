package repository

import (
	"fmt"

	"gorm.io/gorm"

	"trekkit/internal/model"
)

type PointRepository struct {
	db *gorm.DB
}

func NewPointRepository(db *gorm.DB) *PointRepository {
	return &PointRepository{db: db}
}

func (r *PointRepository) CreateHistory(h *model.PointHistory) error {
	if err := r.db.Create(h).Error; err != nil {
		return fmt.Errorf("create point history failed: %w", err)
	}
	return nil
}

func (r *PointRepository) ListByUser(userID uint, limit int) ([]model.PointHistory, error) {
	var history []model.PointHistory
	if err := r.db.Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).
		Find(&history).Error; err != nil {
		return nil, fmt.Errorf("list point history failed: %w", err)
	}
	return history, nil
}
