package app

import (
	"errors"
	"testing"

	"trekkit/internal/model"
	"trekkit/internal/repository"
)

func TestCreditAccumulatesBalance(t *testing.T) {
	db := newTestDB(t)
	svc := NewPointService(db, repository.NewPointRepository(db))
	user := createTestUser(t, db, "earner01", "password-one1", "earner", model.RoleUser)

	first, err := svc.Credit(user.ID, 100, "daily walk goal")
	if err != nil {
		t.Fatalf("first credit: %v", err)
	}
	if first.Balance != 100 {
		t.Errorf("first balance = %d, want 100", first.Balance)
	}

	second, err := svc.Credit(user.ID, 50, "course review")
	if err != nil {
		t.Fatalf("second credit: %v", err)
	}
	if second.Balance != 150 {
		t.Errorf("second balance = %d, want 150", second.Balance)
	}

	var reloaded model.User
	if err := db.First(&reloaded, user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if reloaded.Points != 150 {
		t.Errorf("stored points = %d, want 150", reloaded.Points)
	}

	history, err := svc.History(user.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history rows = %d, want 2", len(history))
	}
}

func TestCreditRejectsNonPositiveAmounts(t *testing.T) {
	db := newTestDB(t)
	svc := NewPointService(db, repository.NewPointRepository(db))
	user := createTestUser(t, db, "earner02", "password-one1", "earner2", model.RoleUser)

	for _, amount := range []int{0, -10} {
		if _, err := svc.Credit(user.ID, amount, "bogus"); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("amount %d err = %v, want ErrInvalidInput", amount, err)
		}
	}

	var count int64
	if err := db.Model(&model.PointHistory{}).Count(&count).Error; err != nil {
		t.Fatalf("count history: %v", err)
	}
	if count != 0 {
		t.Errorf("history rows = %d, want 0", count)
	}
}
