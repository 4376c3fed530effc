package app

import (
	"trekkit/internal/model"
	"trekkit/internal/repository"
)

type BookmarkService struct {
	bookmarkRepo *repository.BookmarkRepository
	mountainRepo *repository.MountainRepository
}

func NewBookmarkService(bookmarkRepo *repository.BookmarkRepository, mountainRepo *repository.MountainRepository) *BookmarkService {
	return &BookmarkService{
		bookmarkRepo: bookmarkRepo,
		mountainRepo: mountainRepo,
	}
}

func (s *BookmarkService) Add(userID, mountainID uint) error {
	if userID == 0 || mountainID == 0 {
		return ErrInvalidInput
	}

	mountain, err := s.mountainRepo.GetByID(mountainID)
	if err != nil {
		return err
	}
	if mountain == nil {
		return ErrNotFound
	}

	existing, err := s.bookmarkRepo.Get(userID, mountainID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	return s.bookmarkRepo.Create(&model.MountainBookmark{
		UserID:     userID,
		MountainID: mountainID,
	})
}

func (s *BookmarkService) Remove(userID, mountainID uint) error {
	if userID == 0 || mountainID == 0 {
		return ErrInvalidInput
	}
	return s.bookmarkRepo.Delete(userID, mountainID)
}

func (s *BookmarkService) List(userID uint) ([]model.Mountain, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.bookmarkRepo.ListMountainsByUser(userID)
}

func (s *BookmarkService) IsBookmarked(userID, mountainID uint) (bool, error) {
	if userID == 0 || mountainID == 0 {
		return false, ErrInvalidInput
	}
	existing, err := s.bookmarkRepo.Get(userID, mountainID)
	if err != nil {
		return false, err
	}
	return existing != nil, nil
}
