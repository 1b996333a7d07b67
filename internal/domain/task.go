package domain

import "time"

// TaskStatus enumerates assignment lifecycle states.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Valid reports whether the status is a known value.
func (s TaskStatus) Valid() bool {
	return s == TaskStatusPending || s == TaskStatusInProgress || s == TaskStatusCompleted
}

// Task is a unit of work assigned to an employee.
type Task struct {
	ID          int64
	EmployeeID  int64
	Title       string
	Description string
	Status      TaskStatus
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
