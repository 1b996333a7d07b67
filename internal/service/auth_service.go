package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hrms-service/internal/auth"
	"github.com/spec-kit/hrms-service/internal/config"
	"github.com/spec-kit/hrms-service/internal/domain"
	"github.com/spec-kit/hrms-service/internal/repository"
	apperrors "github.com/spec-kit/hrms-service/pkg/util"
)

// AuthService coordinates login, refresh and logout flows.
type AuthService struct {
	admins    repository.AdminRepository
	employees repository.EmployeeRepository
	tokenMgr  *auth.TokenManager
	revoked   auth.RevocationList
}

// AuthDependencies encapsulates collaborator requirements for auth service.
type AuthDependencies struct {
	AdminRepo      repository.AdminRepository
	EmployeeRepo   repository.EmployeeRepository
	RevocationList auth.RevocationList
}

// NewAuthService builds the service. The token manager receives the one
// configured signing secret; no other component holds it.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	return &AuthService{
		admins:    deps.AdminRepo,
		employees: deps.EmployeeRepo,
		tokenMgr:  auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		revoked:   deps.RevocationList,
	}
}

// Login authenticates against the admin store first, then employees.
// The same message covers unknown email and wrong password so callers
// cannot probe which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.Role, error) {
	var (
		subjectID int64
		role      domain.Role
		hash      string
	)

	admin, err := s.admins.GetByEmail(ctx, email)
	switch {
	case err == nil:
		subjectID, role, hash = admin.ID, domain.RoleAdmin, admin.PasswordHash
	case errors.Is(err, pgx.ErrNoRows):
		employee, empErr := s.employees.GetByEmail(ctx, email)
		if errors.Is(empErr, pgx.ErrNoRows) {
			return "", "", apperrors.NewUnauthorized("Invalid email or password")
		}
		if empErr != nil {
			return "", "", apperrors.NewInternalError(empErr)
		}
		subjectID, role, hash = employee.ID, domain.RoleEmployee, employee.PasswordHash
	default:
		return "", "", apperrors.NewInternalError(err)
	}

	if hash == "" || auth.ComparePassword(hash, password) != nil {
		return "", "", apperrors.NewUnauthorized("Invalid email or password")
	}

	token, _, err := s.tokenMgr.Generate(subjectID, role)
	if err != nil {
		return "", "", apperrors.NewInternalError(err)
	}
	return token, role, nil
}

// Refresh re-issues a token with the same subject and role. The
// presented token must still verify; its id is revoked so the old
// credential cannot outlive the exchange.
func (s *AuthService) Refresh(ctx context.Context, claims *auth.Claims) (string, error) {
	if err := s.revoked.Revoke(ctx, claims.ID, claims.RemainingLifetime()); err != nil {
		return "", apperrors.NewInternalError(err)
	}
	token, _, err := s.tokenMgr.Generate(claims.SubjectID, claims.Role)
	if err != nil {
		return "", apperrors.NewInternalError(err)
	}
	return token, nil
}

// Logout revokes the presented token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	if err := s.revoked.Revoke(ctx, claims.ID, claims.RemainingLifetime()); err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
