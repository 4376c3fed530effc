package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"trekkit/internal/model"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) GetQuestionLike(questionID, userID uint) (*model.QuestionLike, error) {
	var like model.QuestionLike
	err := r.db.Where("question_id = ? AND user_id = ?", questionID, userID).First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query question like failed: %w", err)
	}
	return &like, nil
}

func (r *LikeRepository) CreateQuestionLike(like *model.QuestionLike) error {
	if err := r.db.Create(like).Error; err != nil {
		return fmt.Errorf("create question like failed: %w", err)
	}
	return nil
}

func (r *LikeRepository) DeleteQuestionLike(questionID, userID uint) error {
	if err := r.db.Where("question_id = ? AND user_id = ?", questionID, userID).
		Delete(&model.QuestionLike{}).Error; err != nil {
		return fmt.Errorf("delete question like failed: %w", err)
	}
	return nil
}

func (r *LikeRepository) GetAnswerLike(answerID, userID uint) (*model.AnswerLike, error) {
	var like model.AnswerLike
	err := r.db.Where("answer_id = ? AND user_id = ?", answerID, userID).First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query answer like failed: %w", err)
	}
	return &like, nil
}

func (r *LikeRepository) CreateAnswerLike(like *model.AnswerLike) error {
	if err := r.db.Create(like).Error; err != nil {
		return fmt.Errorf("create answer like failed: %w", err)
	}
	return nil
}

func (r *LikeRepository) DeleteAnswerLike(answerID, userID uint) error {
	if err := r.db.Where("answer_id = ? AND user_id = ?", answerID, userID).
		Delete(&model.AnswerLike{}).Error; err != nil {
		return fmt.Errorf("delete answer like failed: %w", err)
	}
	return nil
}
