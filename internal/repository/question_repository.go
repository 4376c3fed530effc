package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"trekkit/internal/model"
)

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) Create(question *model.Question) error {
	if err := r.db.Create(question).Error; err != nil {
		return fmt.Errorf("create question failed: %w", err)
	}
	return nil
}

func (r *QuestionRepository) GetByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query question by id failed: %w", err)
	}
	return &question, nil
}

func (r *QuestionRepository) List(offset, limit int, solved *bool) ([]model.Question, int64, error) {
	query := r.db.Model(&model.Question{})
	if solved != nil {
		query = query.Where("solved = ?", *solved)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count questions failed: %w", err)
	}

	var questions []model.Question
	if err := query.Order("id DESC").Offset(offset).Limit(limit).Find(&questions).Error; err != nil {
		return nil, 0, fmt.Errorf("list questions failed: %w", err)
	}
	return questions, total, nil
}

func (r *QuestionRepository) Update(question *model.Question) error {
	if err := r.db.Save(question).Error; err != nil {
		return fmt.Errorf("update question failed: %w", err)
	}
	return nil
}

func (r *QuestionRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Question{}, id).Error; err != nil {
		return fmt.Errorf("delete question failed: %w", err)
	}
	return nil
}

func (r *QuestionRepository) IncrementViewCount(id uint) error {
	if err := r.db.Model(&model.Question{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
		return fmt.Errorf("increment question view count failed: %w", err)
	}
	return nil
}

func (r *QuestionRepository) AddLikeCount(id uint, delta int) error {
	if err := r.db.Model(&model.Question{}).
		Where("id = ?", id).
		UpdateColumn("like_count", gorm.Expr("like_count + ?", delta)).Error; err != nil {
		return fmt.Errorf("adjust question like count failed: %w", err)
	}
	return nil
}

func (r *QuestionRepository) AddAnswerCount(id uint, delta int) error {
	if err := r.db.Model(&model.Question{}).
		Where("id = ?", id).
		UpdateColumn("answer_count", gorm.Expr("answer_count + ?", delta)).Error; err != nil {
		return fmt.Errorf("adjust question answer count failed: %w", err)
	}
	return nil
}

func (r *QuestionRepository) MarkSolved(id uint) error {
	if err := r.db.Model(&model.Question{}).
		Where("id = ?", id).
		UpdateColumn("solved", true).Error; err != nil {
		return fmt.Errorf("mark question solved failed: %w", err)
	}
	return nil
}
