package app

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"trekkit/internal/model"
	"trekkit/internal/platform/rabbitmq"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(
		&model.User{},
		&model.EmailVerification{},
		&model.Mountain{},
		&model.MountainCourse{},
		&model.MountainImage{},
		&model.MountainBookmark{},
		&model.Post{},
		&model.Comment{},
		&model.Question{},
		&model.Answer{},
		&model.QuestionLike{},
		&model.AnswerLike{},
		&model.Notice{},
		&model.StepRecord{},
		&model.PointHistory{},
		&model.Theme{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, loginID, password, nickname, role string) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := &model.User{
		LoginID:      loginID,
		PasswordHash: string(hash),
		Nickname:     nickname,
		Email:        loginID + "@example.com",
		Role:         role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

func markEmailVerified(t *testing.T, db *gorm.DB, email string) {
	t.Helper()

	v := &model.EmailVerification{
		Email:     email,
		Code:      "123456",
		Verified:  true,
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("create verification row: %v", err)
	}
}

// stubMail collects published mail jobs instead of touching a broker.
type stubMail struct {
	jobs []rabbitmq.MailJob
}

func (m *stubMail) Publish(_ context.Context, job rabbitmq.MailJob) error {
	m.jobs = append(m.jobs, job)
	return nil
}
