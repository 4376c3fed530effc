package app

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"trekkit/internal/model"
	"trekkit/internal/pkg/jwtutil"
	"trekkit/internal/platform/rabbitmq"
	"trekkit/internal/repository"
)

var (
	ErrLoginIDExists     = errors.New("login id already exists")
	ErrNicknameExists    = errors.New("nickname already exists")
	ErrEmailExists       = errors.New("email already exists")
	ErrEmailNotVerified  = errors.New("email not verified")
	ErrInvalidCredential = errors.New("invalid login id or password")
)

var (
	loginIDPattern  = regexp.MustCompile(`^[a-z0-9]{4,20}$`)
	passwordPattern = regexp.MustCompile(`^[A-Za-z0-9!@#$%^&*()_+\-=]{8,64}$`)
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	nicknamePattern = regexp.MustCompile(`^[\p{L}0-9_]{2,20}$`)
)

type AuthService struct {
	userRepo         *repository.UserRepository
	verificationRepo *repository.VerificationRepository
	mail             MailPublisher
	jwtSecret        string
	jwtExpiration    time.Duration
}

type SignupInput struct {
	LoginID  string
	Password string
	Nickname string
	Email    string
}

type LoginInput struct {
	LoginID  string
	Password string
}

type AuthResult struct {
	Token string
	User  *model.User
}

type UpdateProfileInput struct {
	UserID          uint
	Nickname        string
	CurrentPassword string
	NewPassword     string
}

func NewAuthService(
	userRepo *repository.UserRepository,
	verificationRepo *repository.VerificationRepository,
	mail MailPublisher,
	jwtSecret string,
	jwtExpiration time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		mail:             mail,
		jwtSecret:        jwtSecret,
		jwtExpiration:    jwtExpiration,
	}
}

func (s *AuthService) Signup(input SignupInput) (*model.User, error) {
	loginID := strings.TrimSpace(strings.ToLower(input.LoginID))
	nickname := strings.TrimSpace(input.Nickname)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	password := strings.TrimSpace(input.Password)

	if !loginIDPattern.MatchString(loginID) ||
		!passwordPattern.MatchString(password) ||
		!emailPattern.MatchString(email) ||
		!nicknamePattern.MatchString(nickname) {
		return nil, ErrInvalidInput
	}

	// Duplicate probes run before any write so a rejected signup leaves
	// no trace.
	if available, err := s.IsLoginIDAvailable(loginID); err != nil {
		return nil, err
	} else if !available {
		return nil, ErrLoginIDExists
	}
	if available, err := s.IsNicknameAvailable(nickname); err != nil {
		return nil, err
	} else if !available {
		return nil, ErrNicknameExists
	}
	if available, err := s.IsEmailAvailable(email); err != nil {
		return nil, err
	} else if !available {
		return nil, ErrEmailExists
	}

	verified, err := s.verificationRepo.HasVerified(email)
	if err != nil {
		return nil, err
	}
	if !verified {
		return nil, ErrEmailNotVerified
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	user := &model.User{
		LoginID:      loginID,
		PasswordHash: string(hash),
		Nickname:     nickname,
		Email:        email,
		Role:         model.RoleUser,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	// Consumed codes are no longer needed once the account exists.
	if err := s.verificationRepo.DeleteByEmail(email); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) IsLoginIDAvailable(loginID string) (bool, error) {
	existing, err := s.userRepo.GetByLoginID(loginID)
	if err != nil {
		return false, err
	}
	return existing == nil, nil
}

func (s *AuthService) IsNicknameAvailable(nickname string) (bool, error) {
	existing, err := s.userRepo.GetByNickname(nickname)
	if err != nil {
		return false, err
	}
	return existing == nil, nil
}

func (s *AuthService) IsEmailAvailable(email string) (bool, error) {
	existing, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return false, err
	}
	return existing == nil, nil
}

func (s *AuthService) Login(input LoginInput) (*AuthResult, error) {
	loginID := strings.TrimSpace(strings.ToLower(input.LoginID))
	password := strings.TrimSpace(input.Password)
	if loginID == "" || password == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.userRepo.GetByLoginID(loginID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredential
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredential
	}

	token, err := jwtutil.GenerateToken(s.jwtSecret, s.jwtExpiration, user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) GetUserByID(id uint) (*model.User, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}
	return s.userRepo.GetByID(id)
}

// FindLoginID mails the account's login handle to its registered address.
func (s *AuthService) FindLoginID(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailPattern.MatchString(email) {
		return ErrInvalidInput
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}

	return s.mail.Publish(ctx, rabbitmq.MailJob{
		To:      email,
		Subject: "Trekkit account lookup",
		Body:    fmt.Sprintf("Your login id is %s.", user.LoginID),
	})
}

// ResetPassword stores a generated temporary password and mails it. The old
// password is invalid as soon as the new hash is written.
func (s *AuthService) ResetPassword(ctx context.Context, loginID, email string) error {
	loginID = strings.TrimSpace(strings.ToLower(loginID))
	email = strings.TrimSpace(strings.ToLower(email))
	if loginID == "" || !emailPattern.MatchString(email) {
		return ErrInvalidInput
	}

	user, err := s.userRepo.GetByLoginID(loginID)
	if err != nil {
		return err
	}
	if user == nil || user.Email != email {
		return ErrNotFound
	}

	tempPassword := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash temp password failed: %w", err)
	}

	user.PasswordHash = string(hash)
	if err := s.userRepo.Update(user); err != nil {
		return err
	}

	return s.mail.Publish(ctx, rabbitmq.MailJob{
		To:      email,
		Subject: "Trekkit temporary password",
		Body:    fmt.Sprintf("Your temporary password is %s. Change it after logging in.", tempPassword),
	})
}

func (s *AuthService) UpdateProfile(input UpdateProfileInput) (*model.User, error) {
	user, err := s.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if nickname := strings.TrimSpace(input.Nickname); nickname != "" && nickname != user.Nickname {
		if !nicknamePattern.MatchString(nickname) {
			return nil, ErrInvalidInput
		}
		existing, err := s.userRepo.GetByNickname(nickname)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrNicknameExists
		}
		user.Nickname = nickname
	}

	if newPassword := strings.TrimSpace(input.NewPassword); newPassword != "" {
		if !passwordPattern.MatchString(newPassword) {
			return nil, ErrInvalidInput
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
			return nil, ErrInvalidCredential
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password failed: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) UpdateProfileImage(userID uint, imageURL string) (*model.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	user.ProfileImage = imageURL
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) DeleteAccount(userID uint) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	return s.userRepo.Delete(userID)
}
