package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"trekkit/internal/model"
	"trekkit/internal/pkg/jwtutil"
	"trekkit/internal/repository"
)

func TestSignupAndLogin(t *testing.T) {
	db := newTestDB(t)
	mail := &stubMail{}
	svc := NewAuthService(
		repository.NewUserRepository(db),
		repository.NewVerificationRepository(db),
		mail,
		"test-secret",
		14*24*time.Hour,
	)

	markEmailVerified(t, db, "alice1@example.com")
	user, err := svc.Signup(SignupInput{
		LoginID:  "alice1",
		Password: "Secret1!",
		Nickname: "alice",
		Email:    "alice1@example.com",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if user.Role != model.RoleUser {
		t.Errorf("role = %q, want %q", user.Role, model.RoleUser)
	}

	result, err := svc.Login(LoginInput{LoginID: "alice1", Password: "Secret1!"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := jwtutil.ParseToken("test-secret", result.Token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("token user id = %d, want %d", claims.UserID, user.ID)
	}

	if _, err := svc.Login(LoginInput{LoginID: "alice1", Password: "WrongPass1!"}); !errors.Is(err, ErrInvalidCredential) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredential", err)
	}
}

func TestSignupRequiresVerifiedEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(
		repository.NewUserRepository(db),
		repository.NewVerificationRepository(db),
		&stubMail{},
		"test-secret",
		14*24*time.Hour,
	)

	_, err := svc.Signup(SignupInput{
		LoginID:  "bob123",
		Password: "Secret1!",
		Nickname: "bob",
		Email:    "bob123@example.com",
	})
	if !errors.Is(err, ErrEmailNotVerified) {
		t.Errorf("error = %v, want ErrEmailNotVerified", err)
	}

	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 0 {
		t.Errorf("user count = %d, want 0", count)
	}
}

func TestSignupDuplicatesRejectedWithoutMutation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(
		repository.NewUserRepository(db),
		repository.NewVerificationRepository(db),
		&stubMail{},
		"test-secret",
		14*24*time.Hour,
	)

	createTestUser(t, db, "carol1", "Secret1!", "carol", model.RoleUser)
	markEmailVerified(t, db, "other@example.com")

	cases := []struct {
		name  string
		input SignupInput
		want  error
	}{
		{
			name:  "duplicate login id",
			input: SignupInput{LoginID: "carol1", Password: "Secret1!", Nickname: "newnick", Email: "other@example.com"},
			want:  ErrLoginIDExists,
		},
		{
			name:  "duplicate nickname",
			input: SignupInput{LoginID: "newid1", Password: "Secret1!", Nickname: "carol", Email: "other@example.com"},
			want:  ErrNicknameExists,
		},
		{
			name:  "duplicate email",
			input: SignupInput{LoginID: "newid1", Password: "Secret1!", Nickname: "newnick", Email: "carol1@example.com"},
			want:  ErrEmailExists,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Signup(tc.input); !errors.Is(err, tc.want) {
				t.Errorf("error = %v, want %v", err, tc.want)
			}
		})
	}

	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Errorf("user count = %d, want 1", count)
	}
}

func TestSignupRejectsBadFormats(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(
		repository.NewUserRepository(db),
		repository.NewVerificationRepository(db),
		&stubMail{},
		"test-secret",
		14*24*time.Hour,
	)

	inputs := []SignupInput{
		{LoginID: "x", Password: "Secret1!", Nickname: "nick", Email: "a@b.com"},
		{LoginID: "gooduser", Password: "short", Nickname: "nick", Email: "a@b.com"},
		{LoginID: "gooduser", Password: "Secret1!", Nickname: "nick", Email: "not-an-email"},
	}
	for _, input := range inputs {
		if _, err := svc.Signup(input); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Signup(%q/%q/%q) error = %v, want ErrInvalidInput", input.LoginID, input.Password, input.Email, err)
		}
	}
}

func TestResetPasswordMailsTempPassword(t *testing.T) {
	db := newTestDB(t)
	mail := &stubMail{}
	svc := NewAuthService(
		repository.NewUserRepository(db),
		repository.NewVerificationRepository(db),
		mail,
		"test-secret",
		14*24*time.Hour,
	)

	user := createTestUser(t, db, "dave42", "Secret1!", "dave", model.RoleUser)

	if err := svc.ResetPassword(context.Background(), "dave42", user.Email); err != nil {
		t.Fatalf("reset password: %v", err)
	}
	if len(mail.jobs) != 1 {
		t.Fatalf("mail jobs = %d, want 1", len(mail.jobs))
	}
	if mail.jobs[0].To != user.Email {
		t.Errorf("mail to = %q, want %q", mail.jobs[0].To, user.Email)
	}
	if !strings.Contains(mail.jobs[0].Body, "temporary password") {
		t.Errorf("mail body %q missing temp password notice", mail.jobs[0].Body)
	}

	// Old password no longer works.
	if _, err := svc.Login(LoginInput{LoginID: "dave42", Password: "Secret1!"}); !errors.Is(err, ErrInvalidCredential) {
		t.Errorf("old password error = %v, want ErrInvalidCredential", err)
	}

	if err := svc.ResetPassword(context.Background(), "dave42", "wrong@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("mismatched email error = %v, want ErrNotFound", err)
	}
}
