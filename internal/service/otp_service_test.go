package service

import (
	"context"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/hrms-service/internal/domain"
	"github.com/spec-kit/hrms-service/internal/events"
	"github.com/spec-kit/hrms-service/internal/repository"
	apperrors "github.com/spec-kit/hrms-service/pkg/util"
)

const otpTestTTL = 5 * time.Minute

func newOTPFixture(t *testing.T) (*OTPService, *fakeOTPStore, *fakeEmployeeRepo, *fakeAdminRepo, *recordingDispatcher) {
	t.Helper()
	store := newFakeOTPStore()
	employees := newFakeEmployeeRepo()
	admins := newFakeAdminRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewOTPService(OTPDependencies{
		Store:        store,
		AdminRepo:    admins,
		EmployeeRepo: employees,
		Dispatcher:   dispatcher,
		Logger:       zap.NewNop(),
	}, otpTestTTL, bcrypt.MinCost)
	return svc, store, employees, admins, dispatcher
}

func issuedCode(t *testing.T, dispatcher *recordingDispatcher) string {
	t.Helper()
	issued := dispatcher.eventsOfType(events.EventOTPIssued)
	require.NotEmpty(t, issued)
	payload, ok := issued[len(issued)-1].Payload.(events.OTPIssuedPayload)
	require.True(t, ok)
	return payload.Code
}

func TestOTPRequestUnknownEmail(t *testing.T) {
	svc, _, _, _, _ := newOTPFixture(t)

	err := svc.Request(context.Background(), "ghost@example.com", domain.AccountTypeEmployee)
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, http.StatusNotFound, domainErr.HTTPStatus)
	assert.Equal(t, "User not found", domainErr.Message)
}

func TestOTPRequestInvalidUserType(t *testing.T) {
	svc, _, _, _, _ := newOTPFixture(t)

	err := svc.Request(context.Background(), "a@example.com", "manager")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperrors.ToDomainError(err).HTTPStatus)
}

func TestOTPRoundTrip(t *testing.T) {
	svc, _, employees, _, dispatcher := newOTPFixture(t)
	ctx := context.Background()

	require.NoError(t, employees.Create(ctx, &domain.Employee{Email: "jane@example.com"}))
	require.NoError(t, svc.Request(ctx, "jane@example.com", domain.AccountTypeEmployee))

	code := issuedCode(t, dispatcher)
	require.Regexp(t, regexp.MustCompile(`^\d{6}$`), code)

	require.NoError(t, svc.Verify(ctx, "jane@example.com", code))
	require.NoError(t, svc.ConsumeForReset(ctx, "jane@example.com", "new-password", domain.AccountTypeEmployee))

	// The record is deleted on consumption; the same code cannot be
	// verified or consumed again.
	err := svc.Verify(ctx, "jane@example.com", code)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperrors.ToDomainError(err).HTTPStatus)

	err = svc.ConsumeForReset(ctx, "jane@example.com", "another", domain.AccountTypeEmployee)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperrors.ToDomainError(err).HTTPStatus)

	// New password actually took effect.
	employee, err := employees.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte("new-password")))
}

func TestOTPVerifyWrongCode(t *testing.T) {
	svc, _, employees, _, dispatcher := newOTPFixture(t)
	ctx := context.Background()

	require.NoError(t, employees.Create(ctx, &domain.Employee{Email: "jane@example.com"}))
	require.NoError(t, svc.Request(ctx, "jane@example.com", domain.AccountTypeEmployee))

	code := issuedCode(t, dispatcher)
	wrong := "000000"
	if code == wrong {
		wrong = "000001"
	}

	err := svc.Verify(ctx, "jane@example.com", wrong)
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus)
	assert.Equal(t, "Invalid or expired OTP", domainErr.Message)
}

func TestOTPVerifyAfterExpiry(t *testing.T) {
	svc, store, employees, _, dispatcher := newOTPFixture(t)
	ctx := context.Background()

	require.NoError(t, employees.Create(ctx, &domain.Employee{Email: "jane@example.com"}))
	require.NoError(t, svc.Request(ctx, "jane@example.com", domain.AccountTypeEmployee))
	code := issuedCode(t, dispatcher)

	store.now = func() time.Time { return time.Now().Add(otpTestTTL + time.Second) }

	err := svc.Verify(ctx, "jane@example.com", code)
	require.Error(t, err)
	assert.Equal(t, "Invalid or expired OTP", apperrors.ToDomainError(err).Message)
}

// expiringMidVerifyStore serves the record on Get but reports it gone
// by the time the verified flag is written, the way a key that expires
// between the two store calls behaves.
type expiringMidVerifyStore struct {
	*fakeOTPStore
}

func (s *expiringMidVerifyStore) MarkVerified(context.Context, string) error {
	return repository.ErrOTPNotFound
}

func TestOTPVerifyExpiresMidFlight(t *testing.T) {
	store := &expiringMidVerifyStore{fakeOTPStore: newFakeOTPStore()}
	employees := newFakeEmployeeRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewOTPService(OTPDependencies{
		Store:        store,
		AdminRepo:    newFakeAdminRepo(),
		EmployeeRepo: employees,
		Dispatcher:   dispatcher,
		Logger:       zap.NewNop(),
	}, otpTestTTL, bcrypt.MinCost)
	ctx := context.Background()

	require.NoError(t, employees.Create(ctx, &domain.Employee{Email: "jane@example.com"}))
	require.NoError(t, svc.Request(ctx, "jane@example.com", domain.AccountTypeEmployee))
	code := issuedCode(t, dispatcher)

	err := svc.Verify(ctx, "jane@example.com", code)
	require.Error(t, err)
	assert.Equal(t, "Invalid or expired OTP", apperrors.ToDomainError(err).Message)

	// The failed write must not leave a verified record behind.
	err = svc.ConsumeForReset(ctx, "jane@example.com", "new-password", domain.AccountTypeEmployee)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperrors.ToDomainError(err).HTTPStatus)
}

func TestOTPRequestOverwritesPriorCode(t *testing.T) {
	svc, _, employees, _, dispatcher := newOTPFixture(t)
	ctx := context.Background()

	require.NoError(t, employees.Create(ctx, &domain.Employee{Email: "jane@example.com"}))
	require.NoError(t, svc.Request(ctx, "jane@example.com", domain.AccountTypeEmployee))
	first := issuedCode(t, dispatcher)

	require.NoError(t, svc.Request(ctx, "jane@example.com", domain.AccountTypeEmployee))
	second := issuedCode(t, dispatcher)

	if first != second {
		err := svc.Verify(ctx, "jane@example.com", first)
		require.Error(t, err, "old code must be invalid once a new one is issued")
	}
	require.NoError(t, svc.Verify(ctx, "jane@example.com", second))
}

func TestOTPConsumeRequiresVerification(t *testing.T) {
	svc, _, employees, _, _ := newOTPFixture(t)
	ctx := context.Background()

	require.NoError(t, employees.Create(ctx, &domain.Employee{Email: "jane@example.com"}))
	require.NoError(t, svc.Request(ctx, "jane@example.com", domain.AccountTypeEmployee))

	err := svc.ConsumeForReset(ctx, "jane@example.com", "new-password", domain.AccountTypeEmployee)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperrors.ToDomainError(err).HTTPStatus)
}

func TestOTPAdminReset(t *testing.T) {
	svc, _, _, admins, dispatcher := newOTPFixture(t)
	ctx := context.Background()

	admins.byEmail["boss@example.com"] = &domain.Admin{ID: 1, Email: "boss@example.com"}
	require.NoError(t, svc.Request(ctx, "boss@example.com", domain.AccountTypeAdmin))
	code := issuedCode(t, dispatcher)

	require.NoError(t, svc.Verify(ctx, "boss@example.com", code))
	require.NoError(t, svc.ConsumeForReset(ctx, "boss@example.com", "s3cret", domain.AccountTypeAdmin))

	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(admins.byEmail["boss@example.com"].PasswordHash), []byte("s3cret")))
}

func TestGenerateOTPCodeRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := generateOTPCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		require.GreaterOrEqual(t, code, "100000")
		require.LessOrEqual(t, code, "999999")
	}
}
