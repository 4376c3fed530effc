package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"trekkit/internal/model"
)

type ThemeRepository struct {
	db *gorm.DB
}

func NewThemeRepository(db *gorm.DB) *ThemeRepository {
	return &ThemeRepository{db: db}
}

func (r *ThemeRepository) List() ([]model.Theme, error) {
	var themes []model.Theme
	if err := r.db.Order("id ASC").Find(&themes).Error; err != nil {
		return nil, fmt.Errorf("list themes failed: %w", err)
	}
	return themes, nil
}

func (r *ThemeRepository) GetByID(id uint) (*model.Theme, error) {
	var theme model.Theme
	if err := r.db.Preload("Mountains").First(&theme, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query theme by id failed: %w", err)
	}
	return &theme, nil
}
