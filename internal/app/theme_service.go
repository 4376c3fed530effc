package app

import (
	"trekkit/internal/model"
	"trekkit/internal/repository"
)

type ThemeService struct {
	themeRepo *repository.ThemeRepository
}

func NewThemeService(themeRepo *repository.ThemeRepository) *ThemeService {
	return &ThemeService{themeRepo: themeRepo}
}

func (s *ThemeService) List() ([]model.Theme, error) {
	return s.themeRepo.List()
}

func (s *ThemeService) Get(id uint) (*model.Theme, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}
	theme, err := s.themeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if theme == nil {
		return nil, ErrNotFound
	}
	return theme, nil
}
