package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"trekkit/internal/model"
)

type VerificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

func (r *VerificationRepository) Create(v *model.EmailVerification) error {
	if err := r.db.Create(v).Error; err != nil {
		return fmt.Errorf("create verification code failed: %w", err)
	}
	return nil
}

func (r *VerificationRepository) DeleteByEmail(email string) error {
	if err := r.db.Where("email = ?", email).Delete(&model.EmailVerification{}).Error; err != nil {
		return fmt.Errorf("delete verification codes failed: %w", err)
	}
	return nil
}

func (r *VerificationRepository) GetLatestByEmail(email string) (*model.EmailVerification, error) {
	var v model.EmailVerification
	if err := r.db.Where("email = ?", email).Order("id DESC").First(&v).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query verification code failed: %w", err)
	}
	return &v, nil
}

func (r *VerificationRepository) MarkVerified(id uint) error {
	if err := r.db.Model(&model.EmailVerification{}).
		Where("id = ?", id).
		UpdateColumn("verified", true).Error; err != nil {
		return fmt.Errorf("mark verification code failed: %w", err)
	}
	return nil
}

func (r *VerificationRepository) HasVerified(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.EmailVerification{}).
		Where("email = ? AND verified = ?", email, true).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("count verified codes failed: %w", err)
	}
	return count > 0, nil
}

// DeleteExpired removes codes past their expiry. Called by the cleanup
// scheduler; verification itself does not check expiry.
func (r *VerificationRepository) DeleteExpired(now time.Time) (int64, error) {
	result := r.db.Where("expires_at < ?", now).Delete(&model.EmailVerification{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete expired codes failed: %w", result.Error)
	}
	return result.RowsAffected, nil
}
