package app

import (
	"time"

	"trekkit/internal/model"
	"trekkit/internal/repository"
)

const dateLayout = "2006-01-02"

type StepService struct {
	stepRepo *repository.StepRepository
}

type SaveStepsInput struct {
	UserID     uint
	Date       string
	Steps      int
	DistanceKm float64
}

func NewStepService(stepRepo *repository.StepRepository) *StepService {
	return &StepService{stepRepo: stepRepo}
}

// Save upserts the day's record; a re-save overwrites the stored values.
func (s *StepService) Save(input SaveStepsInput) (*model.StepRecord, error) {
	if input.UserID == 0 || input.Steps < 0 || input.DistanceKm < 0 {
		return nil, ErrInvalidInput
	}
	if _, err := time.Parse(dateLayout, input.Date); err != nil {
		return nil, ErrInvalidInput
	}

	existing, err := s.stepRepo.GetByUserAndDate(input.UserID, input.Date)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Steps = input.Steps
		existing.DistanceKm = input.DistanceKm
		if err := s.stepRepo.Update(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	record := &model.StepRecord{
		UserID:     input.UserID,
		Date:       input.Date,
		Steps:      input.Steps,
		DistanceKm: input.DistanceKm,
	}
	if err := s.stepRepo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *StepService) ListRange(userID uint, from, to string) ([]model.StepRecord, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	if _, err := time.Parse(dateLayout, from); err != nil {
		return nil, ErrInvalidInput
	}
	if _, err := time.Parse(dateLayout, to); err != nil {
		return nil, ErrInvalidInput
	}
	return s.stepRepo.ListRange(userID, from, to)
}
