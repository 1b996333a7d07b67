package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hrms-service/internal/domain"
	"github.com/spec-kit/hrms-service/internal/events"
	"github.com/spec-kit/hrms-service/internal/repository"
	apperrors "github.com/spec-kit/hrms-service/pkg/util"
)

// PayrollService coordinates the single payroll row kept per employee.
type PayrollService struct {
	payroll    repository.PayrollRepository
	employees  repository.EmployeeRepository
	dispatcher events.Dispatcher
}

// NewPayrollService builds the service.
func NewPayrollService(payroll repository.PayrollRepository, employees repository.EmployeeRepository, dispatcher events.Dispatcher) *PayrollService {
	return &PayrollService{payroll: payroll, employees: employees, dispatcher: dispatcher}
}

// PayrollInput carries the payroll components for a save.
type PayrollInput struct {
	EmployeeID  int64
	BasicSalary float64
	Allowances  float64
	Deductions  float64
}

// Save upserts the employee's payroll row. Net salary is always
// recomputed server-side from the submitted components.
func (s *PayrollService) Save(ctx context.Context, in PayrollInput) (*domain.Payroll, error) {
	if _, err := s.employees.GetByID(ctx, in.EmployeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Employee not found")
		}
		return nil, apperrors.NewInternalError(err)
	}

	payroll := &domain.Payroll{
		EmployeeID:  in.EmployeeID,
		BasicSalary: in.BasicSalary,
		Allowances:  in.Allowances,
		Deductions:  in.Deductions,
	}
	payroll.ComputeNet()

	if err := s.payroll.Save(ctx, payroll); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventPayrollSaved,
		Timestamp: time.Now(),
		Payload:   events.PayrollSavedPayload{EmployeeID: in.EmployeeID, NetSalary: payroll.NetSalary},
	})
	return payroll, nil
}

// GetByEmployee fetches the employee's payroll row.
func (s *PayrollService) GetByEmployee(ctx context.Context, employeeID int64) (*domain.Payroll, error) {
	payroll, err := s.payroll.GetByEmployee(ctx, employeeID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound("Payroll not found")
	}
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return payroll, nil
}
