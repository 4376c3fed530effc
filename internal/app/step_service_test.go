package app

import (
	"errors"
	"testing"

	"trekkit/internal/model"
	"trekkit/internal/repository"
)

func TestSaveStepsUpserts(t *testing.T) {
	db := newTestDB(t)
	svc := NewStepService(repository.NewStepRepository(db))
	user := createTestUser(t, db, "stepper1", "password-one1", "stepper", model.RoleUser)

	first, err := svc.Save(SaveStepsInput{UserID: user.ID, Date: "2026-08-30", Steps: 8200, DistanceKm: 5.6})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}

	second, err := svc.Save(SaveStepsInput{UserID: user.ID, Date: "2026-08-30", Steps: 12400, DistanceKm: 8.1})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("re-save created a new row: %d != %d", second.ID, first.ID)
	}
	if second.Steps != 12400 || second.DistanceKm != 8.1 {
		t.Errorf("values not overwritten: %+v", second)
	}

	var count int64
	if err := db.Model(&model.StepRecord{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count records: %v", err)
	}
	if count != 1 {
		t.Errorf("records = %d, want 1", count)
	}
}

func TestSaveStepsRejectsBadInput(t *testing.T) {
	db := newTestDB(t)
	svc := NewStepService(repository.NewStepRepository(db))

	tests := []struct {
		name  string
		input SaveStepsInput
	}{
		{"missing user", SaveStepsInput{Date: "2026-08-30", Steps: 100}},
		{"negative steps", SaveStepsInput{UserID: 1, Date: "2026-08-30", Steps: -1}},
		{"negative distance", SaveStepsInput{UserID: 1, Date: "2026-08-30", Steps: 100, DistanceKm: -0.1}},
		{"bad date", SaveStepsInput{UserID: 1, Date: "30-08-2026", Steps: 100}},
		{"empty date", SaveStepsInput{UserID: 1, Steps: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Save(tt.input); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestListStepRange(t *testing.T) {
	db := newTestDB(t)
	svc := NewStepService(repository.NewStepRepository(db))
	user := createTestUser(t, db, "stepper2", "password-one1", "stepper2", model.RoleUser)

	for _, day := range []string{"2026-08-01", "2026-08-02", "2026-08-15", "2026-09-01"} {
		if _, err := svc.Save(SaveStepsInput{UserID: user.ID, Date: day, Steps: 1000, DistanceKm: 1}); err != nil {
			t.Fatalf("save %s: %v", day, err)
		}
	}

	records, err := svc.ListRange(user.ID, "2026-08-01", "2026-08-31")
	if err != nil {
		t.Fatalf("list range: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("records in August = %d, want 3", len(records))
	}

	if _, err := svc.ListRange(user.ID, "not-a-date", "2026-08-31"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("bad from date err = %v, want ErrInvalidInput", err)
	}
}
