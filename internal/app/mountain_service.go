package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"trekkit/internal/model"
	"trekkit/internal/repository"
)

const mountainPageSize = 20

// MountainReadCache is the cache-aside layer over mountain reads. Cache
// failures are logged and ignored so the database path always works.
type MountainReadCache interface {
	GetDetail(ctx context.Context, mountainID uint) (*model.Mountain, bool, error)
	SetDetail(ctx context.Context, mountain *model.Mountain) error
	GetList(ctx context.Context, name string, page int) ([]model.Mountain, bool, error)
	SetList(ctx context.Context, name string, page int, mountains []model.Mountain) error
}

type MountainService struct {
	mountainRepo *repository.MountainRepository
	cache        MountainReadCache
}

func NewMountainService(mountainRepo *repository.MountainRepository, cache MountainReadCache) *MountainService {
	return &MountainService{
		mountainRepo: mountainRepo,
		cache:        cache,
	}
}

func (s *MountainService) List(ctx context.Context, name string, page int) ([]model.Mountain, error) {
	if page < 1 {
		page = 1
	}

	if s.cache != nil {
		if mountains, hit, err := s.cache.GetList(ctx, name, page); err != nil {
			log.Warn().Err(err).Msg("mountain list cache read failed")
		} else if hit {
			return mountains, nil
		}
	}

	mountains, err := s.mountainRepo.List(name, (page-1)*mountainPageSize, mountainPageSize)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, name, page, mountains); err != nil {
			log.Warn().Err(err).Msg("mountain list cache write failed")
		}
	}
	return mountains, nil
}

func (s *MountainService) Get(ctx context.Context, id uint) (*model.Mountain, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}

	if s.cache != nil {
		if mountain, hit, err := s.cache.GetDetail(ctx, id); err != nil {
			log.Warn().Err(err).Msg("mountain detail cache read failed")
		} else if hit {
			return mountain, nil
		}
	}

	mountain, err := s.mountainRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mountain == nil {
		return nil, ErrNotFound
	}

	if s.cache != nil {
		if err := s.cache.SetDetail(ctx, mountain); err != nil {
			log.Warn().Err(err).Msg("mountain detail cache write failed")
		}
	}
	return mountain, nil
}

func (s *MountainService) ListCourses(mountainID uint) ([]model.MountainCourse, error) {
	if mountainID == 0 {
		return nil, ErrInvalidInput
	}
	return s.mountainRepo.ListCourses(mountainID)
}

func (s *MountainService) ListImages(mountainID uint) ([]model.MountainImage, error) {
	if mountainID == 0 {
		return nil, ErrInvalidInput
	}
	return s.mountainRepo.ListImages(mountainID)
}
