package app

import (
	"strings"

	"gorm.io/gorm"

	"trekkit/internal/model"
	"trekkit/internal/repository"
)

type CommentService struct {
	db          *gorm.DB
	commentRepo *repository.CommentRepository
	postRepo    *repository.PostRepository
}

func NewCommentService(db *gorm.DB, commentRepo *repository.CommentRepository, postRepo *repository.PostRepository) *CommentService {
	return &CommentService{
		db:          db,
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// Create inserts the comment and bumps the post's denormalized comment
// counter in the same transaction.
func (s *CommentService) Create(actor *model.User, postID uint, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrInvalidInput
	}

	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	comment := &model.Comment{
		PostID:   postID,
		UserID:   actor.ID,
		Nickname: actor.Nickname,
		Content:  content,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewCommentRepository(tx).Create(comment); err != nil {
			return err
		}
		return repository.NewPostRepository(tx).AddCommentCount(postID, 1)
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) ListByPost(postID uint) ([]model.Comment, error) {
	if postID == 0 {
		return nil, ErrInvalidInput
	}
	return s.commentRepo.ListByPost(postID)
}

func (s *CommentService) Update(actor *model.User, id uint, content string) (*model.Comment, error) {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrNotFound
	}
	if comment.UserID != actor.ID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrInvalidInput
	}

	comment.Content = content
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Delete(actor *model.User, id uint) error {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrNotFound
	}
	if comment.UserID != actor.ID && !actor.IsAdmin() {
		return ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewCommentRepository(tx).Delete(id); err != nil {
			return err
		}
		return repository.NewPostRepository(tx).AddCommentCount(comment.PostID, -1)
	})
}
