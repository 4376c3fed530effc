package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"trekkit/internal/model"
)

type StepRepository struct {
	db *gorm.DB
}

func NewStepRepository(db *gorm.DB) *StepRepository {
	return &StepRepository{db: db}
}

func (r *StepRepository) GetByUserAndDate(userID uint, date string) (*model.StepRecord, error) {
	var record model.StepRecord
	err := r.db.Where("user_id = ? AND date = ?", userID, date).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query step record failed: %w", err)
	}
	return &record, nil
}

func (r *StepRepository) Create(record *model.StepRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("create step record failed: %w", err)
	}
	return nil
}

func (r *StepRepository) Update(record *model.StepRecord) error {
	if err := r.db.Save(record).Error; err != nil {
		return fmt.Errorf("update step record failed: %w", err)
	}
	return nil
}

func (r *StepRepository) ListRange(userID uint, from, to string) ([]model.StepRecord, error) {
	var records []model.StepRecord
	if err := r.db.Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list step records failed: %w", err)
	}
	return records, nil
}
