package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	errorvalues "github.com/limbo/taskstars/internal/error_values"
)

type SendVerificationRequest struct {
	Email    string `validate:"required,email,max=254"`
	Code     string `validate:"required,len=6,numeric"`
	UserName string `validate:"required,printable_text,max=100"`
}

// RateLimitError carries how long the caller has to wait.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s (retry after %s)", errorvalues.ErrRateLimited, e.RetryAfter.Round(time.Second))
}

func (e *RateLimitError) Unwrap() error {
	return errorvalues.ErrRateLimited
}

// EmailVerificationService sends verification codes through a rate limited sender
// and checks codes it issued itself.
type EmailVerificationService struct {
	limiter *EmailRateLimiter
	codes   *VerificationCodes
	sender  EmailSender
}

func NewEmailVerificationService(limiter *EmailRateLimiter, codes *VerificationCodes, sender EmailSender) *EmailVerificationService {
	if limiter == nil || codes == nil || sender == nil {
		log.Fatal("on email verification service provided nil dependencies")
	}
	return &EmailVerificationService{
		limiter: limiter,
		codes:   codes,
		sender:  sender,
	}
}

// SendCode mails a caller supplied code. It returns the provider message id.
func (s *EmailVerificationService) SendCode(ctx context.Context, req *SendVerificationRequest) (string, error) {
	if req == nil {
		return "", errorvalues.ErrValidation
	}
	if err := validateStruct(req); err != nil {
		return "", err
	}
	if ok, wait := s.limiter.Allow(req.Email); !ok {
		return "", &RateLimitError{RetryAfter: wait}
	}
	id, err := s.sender.SendVerificationEmail(ctx, normalizeEmail(req.Email), req.UserName, req.Code)
	if err != nil {
		return "", errors.New("email sender error: " + err.Error())
	}
	return id, nil
}

// IssueCode generates a fresh code for email and mails it. The new code
// replaces the live one only once the mail went out.
func (s *EmailVerificationService) IssueCode(ctx context.Context, email, userName string) error {
	code, err := NewVerificationCode()
	if err != nil {
		return err
	}
	_, err = s.SendCode(ctx, &SendVerificationRequest{
		Email:    email,
		Code:     code,
		UserName: userName,
	})
	if err != nil {
		return err
	}
	s.codes.Store(email, code)
	return nil
}

func (s *EmailVerificationService) CheckCode(email, code string) bool {
	return s.codes.Check(email, code)
}
