package app

import (
	"strings"

	"gorm.io/gorm"

	"trekkit/internal/model"
	"trekkit/internal/repository"
)

const postPageSize = 20

type PostService struct {
	db       *gorm.DB
	postRepo *repository.PostRepository
}

type CreatePostInput struct {
	Title    string
	Content  string
	ImageURL string
}

type UpdatePostInput struct {
	Title   string
	Content string
}

func NewPostService(db *gorm.DB, postRepo *repository.PostRepository) *PostService {
	return &PostService{db: db, postRepo: postRepo}
}

func (s *PostService) Create(actor *model.User, input CreatePostInput) (*model.Post, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" || content == "" {
		return nil, ErrInvalidInput
	}

	post := &model.Post{
		UserID:   actor.ID,
		Nickname: actor.Nickname,
		Title:    title,
		Content:  content,
		ImageURL: input.ImageURL,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) List(page int) ([]model.Post, int64, error) {
	if page < 1 {
		page = 1
	}
	return s.postRepo.List((page-1)*postPageSize, postPageSize)
}

// Get returns the post and bumps its view counter. The counter write is
// fire-and-forget relative to the read; drift on failure is accepted.
func (s *PostService) Get(id uint) (*model.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	if err := s.postRepo.IncrementViewCount(id); err != nil {
		return nil, err
	}
	post.ViewCount++
	return post, nil
}

func (s *PostService) Update(actor *model.User, id uint, input UpdatePostInput) (*model.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	if post.UserID != actor.ID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" || content == "" {
		return nil, ErrInvalidInput
	}

	post.Title = title
	post.Content = content
	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes the post and its comments in one transaction.
func (s *PostService) Delete(actor *model.User, id uint) error {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	if post.UserID != actor.ID && !actor.IsAdmin() {
		return ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return repository.NewPostRepository(tx).Delete(id)
	})
}
