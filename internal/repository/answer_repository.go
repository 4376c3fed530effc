package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"trekkit/internal/model"
)

type AnswerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{db: db}
}

func (r *AnswerRepository) Create(answer *model.Answer) error {
	if err := r.db.Create(answer).Error; err != nil {
		return fmt.Errorf("create answer failed: %w", err)
	}
	return nil
}

func (r *AnswerRepository) GetByID(id uint) (*model.Answer, error) {
	var answer model.Answer
	if err := r.db.First(&answer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query answer by id failed: %w", err)
	}
	return &answer, nil
}

func (r *AnswerRepository) ListByQuestion(questionID uint) ([]model.Answer, error) {
	var answers []model.Answer
	if err := r.db.Where("question_id = ?", questionID).
		Order("accepted DESC, id ASC").
		Find(&answers).Error; err != nil {
		return nil, fmt.Errorf("list answers failed: %w", err)
	}
	return answers, nil
}

func (r *AnswerRepository) Update(answer *model.Answer) error {
	if err := r.db.Save(answer).Error; err != nil {
		return fmt.Errorf("update answer failed: %w", err)
	}
	return nil
}

func (r *AnswerRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Answer{}, id).Error; err != nil {
		return fmt.Errorf("delete answer failed: %w", err)
	}
	return nil
}

func (r *AnswerRepository) AddLikeCount(id uint, delta int) error {
	if err := r.db.Model(&model.Answer{}).
		Where("id = ?", id).
		UpdateColumn("like_count", gorm.Expr("like_count + ?", delta)).Error; err != nil {
		return fmt.Errorf("adjust answer like count failed: %w", err)
	}
	return nil
}

func (r *AnswerRepository) MarkAccepted(id uint) error {
	if err := r.db.Model(&model.Answer{}).
		Where("id = ?", id).
		UpdateColumn("accepted", true).Error; err != nil {
		return fmt.Errorf("mark answer accepted failed: %w", err)
	}
	return nil
}
