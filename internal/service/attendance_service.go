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

// AttendanceService coordinates daily attendance marking.
type AttendanceService struct {
	attendance repository.AttendanceRepository
	employees  repository.EmployeeRepository
	dispatcher events.Dispatcher
	now        func() time.Time
}

// NewAttendanceService builds the service.
func NewAttendanceService(attendance repository.AttendanceRepository, employees repository.EmployeeRepository, dispatcher events.Dispatcher) *AttendanceService {
	return &AttendanceService{
		attendance: attendance,
		employees:  employees,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// Mark records the employee's status for today. Marking again replaces
// the earlier record for the same day rather than adding a second row.
func (s *AttendanceService) Mark(ctx context.Context, employeeID int64, status domain.AttendanceStatus) error {
	if !status.Valid() {
		return apperrors.NewValidationError("invalid attendance status")
	}
	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Employee not found")
		}
		return apperrors.NewInternalError(err)
	}

	now := s.now()
	// Midnight in the wall-clock zone. Truncating the instant would round
	// to UTC midnight and file early marks under the previous day.
	record := &domain.Attendance{
		EmployeeID:  employeeID,
		Date:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		Status:      status,
		CheckInTime: now,
	}
	if err := s.attendance.Mark(ctx, record); err != nil {
		return apperrors.NewInternalError(err)
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventAttendanceMarked,
		Timestamp: now,
		Payload: events.AttendanceMarkedPayload{
			EmployeeID: employeeID,
			Date:       record.Date,
			Status:     status,
		},
	})
	return nil
}

// ListByEmployee returns the employee's attendance history, newest first.
func (s *AttendanceService) ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Attendance, error) {
	records, err := s.attendance.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return records, nil
}
