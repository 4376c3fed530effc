package app

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"trekkit/internal/model"
	"trekkit/internal/platform/rabbitmq"
	"trekkit/internal/repository"
)

var (
	ErrCodeMismatch = errors.New("verification code mismatch")
)

// MailPublisher enqueues outbound mail for the mail worker.
type MailPublisher interface {
	Publish(ctx context.Context, job rabbitmq.MailJob) error
}

type VerificationService struct {
	verificationRepo *repository.VerificationRepository
	mail             MailPublisher
	codeTTL          time.Duration
}

func NewVerificationService(verificationRepo *repository.VerificationRepository, mail MailPublisher, codeTTL time.Duration) *VerificationService {
	if codeTTL <= 0 {
		codeTTL = 5 * time.Minute
	}
	return &VerificationService{
		verificationRepo: verificationRepo,
		mail:             mail,
		codeTTL:          codeTTL,
	}
}

// SendCode replaces any outstanding codes for the email with a fresh 6-digit
// one and queues the mail. Expired rows are removed by the cleanup sweep,
// not here.
func (s *VerificationService) SendCode(ctx context.Context, email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidInput
	}

	if err := s.verificationRepo.DeleteByEmail(email); err != nil {
		return err
	}

	code, err := randomCode()
	if err != nil {
		return fmt.Errorf("generate verification code failed: %w", err)
	}

	v := &model.EmailVerification{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(s.codeTTL),
	}
	if err := s.verificationRepo.Create(v); err != nil {
		return err
	}

	return s.mail.Publish(ctx, rabbitmq.MailJob{
		To:      email,
		Subject: "Trekkit email verification",
		Body:    fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", code, int(s.codeTTL.Minutes())),
	})
}

// VerifyCode checks only code equality for the latest code of the email.
// A code deleted by the sweep can no longer match; one not yet swept is
// accepted even slightly past its expiry.
func (s *VerificationService) VerifyCode(email, code string) error {
	if email == "" || code == "" {
		return ErrInvalidInput
	}

	v, err := s.verificationRepo.GetLatestByEmail(email)
	if err != nil {
		return err
	}
	if v == nil || v.Code != code {
		return ErrCodeMismatch
	}

	return s.verificationRepo.MarkVerified(v.ID)
}

func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
