package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/hrms-service/internal/auth"
	"github.com/spec-kit/hrms-service/internal/domain"
	"github.com/spec-kit/hrms-service/internal/events"
	"github.com/spec-kit/hrms-service/internal/repository"
	apperrors "github.com/spec-kit/hrms-service/pkg/util"
)

// OTPService implements the one-time-code password reset flow:
// request issues a code, verify consumes one guess, a verified code
// authorizes exactly one password reset.
type OTPService struct {
	store      repository.OTPStore
	admins     repository.AdminRepository
	employees  repository.EmployeeRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	ttl        time.Duration
	bcryptCost int
}

// OTPDependencies encapsulates collaborator requirements for the OTP service.
type OTPDependencies struct {
	Store        repository.OTPStore
	AdminRepo    repository.AdminRepository
	EmployeeRepo repository.EmployeeRepository
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
}

// NewOTPService builds the service.
func NewOTPService(deps OTPDependencies, ttl time.Duration, bcryptCost int) *OTPService {
	return &OTPService{
		store:      deps.Store,
		admins:     deps.AdminRepo,
		employees:  deps.EmployeeRepo,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		ttl:        ttl,
		bcryptCost: bcryptCost,
	}
}

// Request issues a fresh code for the account matching the email.
// Storing overwrites any outstanding code for that address. The code
// stays valid even if dispatch fails; delivery problems are logged and
// a re-request simply mints a replacement.
func (s *OTPService) Request(ctx context.Context, email string, accountType domain.AccountType) error {
	if err := s.lookupAccount(ctx, email, accountType); err != nil {
		return err
	}

	code, err := generateOTPCode()
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	record := domain.OTPRecord{Code: code}
	if err := s.store.Save(ctx, email, record, s.ttl); err != nil {
		return apperrors.NewInternalError(err)
	}

	if err := s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventOTPIssued,
		Timestamp: time.Now(),
		Payload:   events.OTPIssuedPayload{Email: email, Code: code},
	}); err != nil {
		s.logger.Error("otp dispatch failed", zap.String("email", email), zap.Error(err))
	}
	return nil
}

// Verify checks a presented code against the stored record and marks it
// verified. Missing record, mismatch and elapsed TTL are all the same
// client-visible failure.
func (s *OTPService) Verify(ctx context.Context, email, code string) error {
	record, err := s.store.Get(ctx, email)
	if errors.Is(err, repository.ErrOTPNotFound) {
		return apperrors.NewValidationError("Invalid or expired OTP")
	}
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if record.Code != code {
		return apperrors.NewValidationError("Invalid or expired OTP")
	}
	if err := s.store.MarkVerified(ctx, email); err != nil {
		if errors.Is(err, repository.ErrOTPNotFound) {
			return apperrors.NewValidationError("Invalid or expired OTP")
		}
		return apperrors.NewInternalError(err)
	}
	return nil
}

// ConsumeForReset completes the reset: it requires a verified record,
// writes the new hash through the credential store, then deletes the
// record so the code is single-use.
func (s *OTPService) ConsumeForReset(ctx context.Context, email, newPassword string, accountType domain.AccountType) error {
	record, err := s.store.Get(ctx, email)
	if errors.Is(err, repository.ErrOTPNotFound) {
		return apperrors.NewUnauthorized("OTP verification required")
	}
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if !record.Verified {
		return apperrors.NewUnauthorized("OTP verification required")
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	if err := s.updatePassword(ctx, email, hash, accountType); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, email); err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}

func (s *OTPService) lookupAccount(ctx context.Context, email string, accountType domain.AccountType) error {
	var err error
	switch accountType {
	case domain.AccountTypeAdmin:
		_, err = s.admins.GetByEmail(ctx, email)
	case domain.AccountTypeEmployee:
		_, err = s.employees.GetByEmail(ctx, email)
	default:
		return apperrors.NewValidationError("invalid userType")
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("User not found")
	}
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}

func (s *OTPService) updatePassword(ctx context.Context, email, hash string, accountType domain.AccountType) error {
	var err error
	switch accountType {
	case domain.AccountTypeAdmin:
		err = s.admins.UpdatePasswordHash(ctx, email, hash)
	case domain.AccountTypeEmployee:
		err = s.employees.UpdatePasswordHash(ctx, email, hash)
	default:
		return apperrors.NewValidationError("invalid userType")
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("User not found")
	}
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}

// generateOTPCode draws a uniformly random six digit decimal code.
func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
