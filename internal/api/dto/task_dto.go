package dto

import "time"

// TaskAssignRequest payload for assigning a task.
type TaskAssignRequest struct {
	EmployeeID  int64      `json:"employeeId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
}

// TaskStatusRequest payload for moving a task through its lifecycle.
type TaskStatusRequest struct {
	Status string `json:"status"`
}

// TaskResponse is one assigned task.
type TaskResponse struct {
	ID          int64      `json:"id"`
	EmployeeID  int64      `json:"employeeId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}
