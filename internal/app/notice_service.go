package app

import (
	"strings"

	"trekkit/internal/model"
	"trekkit/internal/repository"
)

const noticePageSize = 20

type NoticeService struct {
	noticeRepo *repository.NoticeRepository
}

type NoticeInput struct {
	Title   string
	Content string
}

func NewNoticeService(noticeRepo *repository.NoticeRepository) *NoticeService {
	return &NoticeService{noticeRepo: noticeRepo}
}

// Create is admin-only; ownership of a notice is the admin who wrote it.
func (s *NoticeService) Create(actor *model.User, input NoticeInput) (*model.Notice, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" || content == "" {
		return nil, ErrInvalidInput
	}

	notice := &model.Notice{
		UserID:  actor.ID,
		Title:   title,
		Content: content,
	}
	if err := s.noticeRepo.Create(notice); err != nil {
		return nil, err
	}
	return notice, nil
}

func (s *NoticeService) List(page int) ([]model.Notice, int64, error) {
	if page < 1 {
		page = 1
	}
	return s.noticeRepo.List((page-1)*noticePageSize, noticePageSize)
}

func (s *NoticeService) Get(id uint) (*model.Notice, error) {
	notice, err := s.noticeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if notice == nil {
		return nil, ErrNotFound
	}

	if err := s.noticeRepo.IncrementViewCount(id); err != nil {
		return nil, err
	}
	notice.ViewCount++
	return notice, nil
}

// Update requires the actor to be the authoring admin.
func (s *NoticeService) Update(actor *model.User, id uint, input NoticeInput) (*model.Notice, error) {
	notice, err := s.noticeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if notice == nil {
		return nil, ErrNotFound
	}
	if !actor.IsAdmin() || notice.UserID != actor.ID {
		return nil, ErrForbidden
	}

	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" || content == "" {
		return nil, ErrInvalidInput
	}

	notice.Title = title
	notice.Content = content
	if err := s.noticeRepo.Update(notice); err != nil {
		return nil, err
	}
	return notice, nil
}

func (s *NoticeService) Delete(actor *model.User, id uint) error {
	notice, err := s.noticeRepo.GetByID(id)
	if err != nil {
		return err
	}
	if notice == nil {
		return ErrNotFound
	}
	if !actor.IsAdmin() || notice.UserID != actor.ID {
		return ErrForbidden
	}
	return s.noticeRepo.Delete(id)
}
