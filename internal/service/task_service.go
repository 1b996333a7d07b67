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

// TaskService coordinates task assignment and progress updates.
type TaskService struct {
	tasks      repository.TaskRepository
	employees  repository.EmployeeRepository
	dispatcher events.Dispatcher
}

// NewTaskService builds the service.
func NewTaskService(tasks repository.TaskRepository, employees repository.EmployeeRepository, dispatcher events.Dispatcher) *TaskService {
	return &TaskService{tasks: tasks, employees: employees, dispatcher: dispatcher}
}

// AssignInput carries a new task assignment.
type AssignInput struct {
	EmployeeID  int64
	Title       string
	Description string
	DueDate     *time.Time
}

// Assign creates a pending task for the employee.
func (s *TaskService) Assign(ctx context.Context, in AssignInput) (*domain.Task, error) {
	if _, err := s.employees.GetByID(ctx, in.EmployeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Employee not found")
		}
		return nil, apperrors.NewInternalError(err)
	}

	task := &domain.Task{
		EmployeeID:  in.EmployeeID,
		Title:       in.Title,
		Description: in.Description,
		Status:      domain.TaskStatusPending,
		DueDate:     in.DueDate,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventTaskAssigned,
		Timestamp: time.Now(),
		Payload:   events.TaskAssignedPayload{TaskID: task.ID, EmployeeID: task.EmployeeID, Title: task.Title},
	})
	return task, nil
}

// ListByEmployee returns the employee's tasks, newest first.
func (s *TaskService) ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Task, error) {
	tasks, err := s.tasks.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return tasks, nil
}

// UpdateStatus moves a task through its lifecycle. Admins may update
// any task; employees only their own (the task's assignee is only known
// after a lookup, so the check lives here rather than in route policy).
func (s *TaskService) UpdateStatus(ctx context.Context, actor *auth.Principal, taskID int64, status domain.TaskStatus) error {
	if !status.Valid() {
		return apperrors.NewValidationError("invalid task status")
	}

	task, err := s.tasks.GetByID(ctx, taskID)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("Task not found")
	}
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	if actor.Role != domain.RoleAdmin && task.EmployeeID != actor.SubjectID {
		return apperrors.NewForbidden("access restricted to own tasks")
	}

	if err := s.tasks.UpdateStatus(ctx, taskID, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Task not found")
		}
		return apperrors.NewInternalError(err)
	}
	return nil
}
