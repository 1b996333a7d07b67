package events

import (
	"time"

	"github.com/spec-kit/hrms-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEmployeeRegistered EventType = "employee_registered"
	EventEmployeeDeleted    EventType = "employee_deleted"
	EventAttendanceMarked   EventType = "attendance_marked"
	EventPayrollSaved       EventType = "payroll_saved"
	EventTaskAssigned       EventType = "task_assigned"
	EventOTPIssued          EventType = "otp_issued"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// EmployeeRegisteredPayload payload.
type EmployeeRegisteredPayload struct {
	EmployeeID int64  `json:"employee_id"`
	Email      string `json:"email"`
}

// EmployeeDeletedPayload payload.
type EmployeeDeletedPayload struct {
	EmployeeID int64 `json:"employee_id"`
}

// AttendanceMarkedPayload payload.
type AttendanceMarkedPayload struct {
	EmployeeID int64                   `json:"employee_id"`
	Date       time.Time               `json:"date"`
	Status     domain.AttendanceStatus `json:"status"`
}

// PayrollSavedPayload payload.
type PayrollSavedPayload struct {
	EmployeeID int64   `json:"employee_id"`
	NetSalary  float64 `json:"net_salary"`
}

// TaskAssignedPayload payload.
type TaskAssignedPayload struct {
	TaskID     int64  `json:"task_id"`
	EmployeeID int64  `json:"employee_id"`
	Title      string `json:"title"`
}

// OTPIssuedPayload carries the code to the email dispatch handler.
type OTPIssuedPayload struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}
