package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hrms-service/internal/auth"
	"github.com/spec-kit/hrms-service/internal/domain"
	"github.com/spec-kit/hrms-service/internal/events"
	"github.com/spec-kit/hrms-service/internal/repository"
	apperrors "github.com/spec-kit/hrms-service/pkg/util"
)

// EmployeeService coordinates the employee record lifecycle.
type EmployeeService struct {
	employees  repository.EmployeeRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewEmployeeService builds the service.
func NewEmployeeService(employees repository.EmployeeRepository, dispatcher events.Dispatcher, bcryptCost int) *EmployeeService {
	return &EmployeeService{employees: employees, dispatcher: dispatcher, bcryptCost: bcryptCost}
}

// RegisterInput carries the self-registration payload.
type RegisterInput struct {
	FirstName  string
	LastName   string
	Email      string
	Password   string
	Department string
	Position   string
	Salary     float64
}

// Register creates a new employee account.
func (s *EmployeeService) Register(ctx context.Context, in RegisterInput) (*domain.Employee, error) {
	if _, err := s.employees.GetByEmail(ctx, in.Email); err == nil {
		return nil, apperrors.NewConflict("Email already registered")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewInternalError(err)
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	employee := &domain.Employee{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		Department:   in.Department,
		Position:     in.Position,
		Salary:       in.Salary,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		// A concurrent registration can slip past the lookup above; the
		// unique constraint is the arbiter.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.NewConflict("Email already registered")
		}
		return nil, apperrors.NewInternalError(err)
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventEmployeeRegistered,
		Timestamp: time.Now(),
		Payload:   events.EmployeeRegisteredPayload{EmployeeID: employee.ID, Email: employee.Email},
	})
	return employee, nil
}

// GetByID fetches one employee record.
func (s *EmployeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	employee, err := s.employees.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound("Employee not found")
	}
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return employee, nil
}

// List returns all employee records.
func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return employees, nil
}

// UpdateInput carries the full replacement record for an update.
type UpdateInput struct {
	FirstName  string
	LastName   string
	Email      string
	Department string
	Position   string
	Salary     float64
}

// Update replaces the employee's profile fields.
func (s *EmployeeService) Update(ctx context.Context, id int64, in UpdateInput) error {
	employee := &domain.Employee{
		ID:         id,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		Department: in.Department,
		Position:   in.Position,
		Salary:     in.Salary,
	}
	err := s.employees.Update(ctx, employee)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("Employee not found")
	}
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}

// Delete removes the employee record.
func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	err := s.employees.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("Employee not found")
	}
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventEmployeeDeleted,
		Timestamp: time.Now(),
		Payload:   events.EmployeeDeletedPayload{EmployeeID: id},
	})
	return nil
}
