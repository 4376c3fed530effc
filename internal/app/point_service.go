package app

import (
	"gorm.io/gorm"

	"trekkit/internal/model"
	"trekkit/internal/repository"
)

const pointHistoryLimit = 50

type PointService struct {
	db        *gorm.DB
	pointRepo *repository.PointRepository
}

func NewPointService(db *gorm.DB, pointRepo *repository.PointRepository) *PointService {
	return &PointService{db: db, pointRepo: pointRepo}
}

// Credit adjusts the user's balance and appends a history row in one
// transaction; the history records the balance after the credit.
func (s *PointService) Credit(userID uint, amount int, reason string) (*model.PointHistory, error) {
	if userID == 0 || amount <= 0 {
		return nil, ErrInvalidInput
	}

	var history *model.PointHistory
	err := s.db.Transaction(func(tx *gorm.DB) error {
		balance, err := repository.NewUserRepository(tx).AddPoints(userID, amount)
		if err != nil {
			return err
		}

		history = &model.PointHistory{
			UserID:  userID,
			Amount:  amount,
			Reason:  reason,
			Balance: balance,
		}
		return repository.NewPointRepository(tx).CreateHistory(history)
	})
	if err != nil {
		return nil, err
	}
	return history, nil
}

func (s *PointService) History(userID uint) ([]model.PointHistory, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.pointRepo.ListByUser(userID, pointHistoryLimit)
}
