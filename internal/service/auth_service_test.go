package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/hrms-service/internal/config"
	"github.com/spec-kit/hrms-service/internal/domain"
	apperrors "github.com/spec-kit/hrms-service/pkg/util"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeEmployeeRepo, *fakeAdminRepo, *fakeRevocationList) {
	t.Helper()
	employees := newFakeEmployeeRepo()
	admins := newFakeAdminRepo()
	revoked := newFakeRevocationList()
	svc := NewAuthService(config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 60,
	}, AuthDependencies{
		AdminRepo:      admins,
		EmployeeRepo:   employees,
		RevocationList: revoked,
	})
	return svc, employees, admins, revoked
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginEmployee(t *testing.T) {
	svc, employees, _, _ := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, employees.Create(ctx, &domain.Employee{
		Email:        "jane@example.com",
		PasswordHash: mustHash(t, "hunter2"),
	}))

	token, role, err := svc.Login(ctx, "jane@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleEmployee, role)

	claims, err := svc.TokenManager().Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.SubjectID)
	assert.Equal(t, domain.RoleEmployee, claims.Role)
}

func TestLoginAdminTakesPrecedence(t *testing.T) {
	svc, _, admins, _ := newAuthFixture(t)
	ctx := context.Background()

	admins.byEmail["boss@example.com"] = &domain.Admin{
		ID:           7,
		Email:        "boss@example.com",
		PasswordHash: mustHash(t, "topsecret"),
	}

	token, role, err := svc.Login(ctx, "boss@example.com", "topsecret")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, role)

	claims, err := svc.TokenManager().Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.SubjectID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestLoginFailures(t *testing.T) {
	svc, employees, _, _ := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, employees.Create(ctx, &domain.Employee{
		Email:        "jane@example.com",
		PasswordHash: mustHash(t, "hunter2"),
	}))

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "jane@example.com", password: "wrong"},
		{name: "unknown email", email: "ghost@example.com", password: "hunter2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(ctx, tt.email, tt.password)
			require.Error(t, err)
			domainErr := apperrors.ToDomainError(err)
			assert.Equal(t, http.StatusUnauthorized, domainErr.HTTPStatus)
			assert.Equal(t, "Invalid email or password", domainErr.Message)
		})
	}
}

func TestRefreshRevokesOldToken(t *testing.T) {
	svc, employees, _, revoked := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, employees.Create(ctx, &domain.Employee{
		Email:        "jane@example.com",
		PasswordHash: mustHash(t, "hunter2"),
	}))

	token, _, err := svc.Login(ctx, "jane@example.com", "hunter2")
	require.NoError(t, err)
	oldClaims, err := svc.TokenManager().Parse(token)
	require.NoError(t, err)

	newToken, err := svc.Refresh(ctx, oldClaims)
	require.NoError(t, err)

	newClaims, err := svc.TokenManager().Parse(newToken)
	require.NoError(t, err)
	assert.Equal(t, oldClaims.SubjectID, newClaims.SubjectID)
	assert.Equal(t, oldClaims.Role, newClaims.Role)
	assert.NotEqual(t, oldClaims.ID, newClaims.ID)

	isRevoked, err := revoked.IsRevoked(ctx, oldClaims.ID)
	require.NoError(t, err)
	assert.True(t, isRevoked)
}

func TestLogoutRevokes(t *testing.T) {
	svc, employees, _, revoked := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, employees.Create(ctx, &domain.Employee{
		Email:        "jane@example.com",
		PasswordHash: mustHash(t, "hunter2"),
	}))

	token, _, err := svc.Login(ctx, "jane@example.com", "hunter2")
	require.NoError(t, err)
	claims, err := svc.TokenManager().Parse(token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, claims))

	isRevoked, err := revoked.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, isRevoked)
}

func TestLoginEmptyHashRejected(t *testing.T) {
	svc, employees, _, _ := newAuthFixture(t)
	ctx := context.Background()

	// Account exists but registration never set a password.
	require.NoError(t, employees.Create(ctx, &domain.Employee{Email: "jane@example.com"}))

	_, _, err := svc.Login(ctx, "jane@example.com", "")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperrors.ToDomainError(err).HTTPStatus)
}
