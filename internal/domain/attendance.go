package domain

import "time"

// AttendanceStatus enumerates daily attendance outcomes.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLeave   AttendanceStatus = "leave"
)

// Valid reports whether the status is a known value.
func (s AttendanceStatus) Valid() bool {
	return s == AttendancePresent || s == AttendanceAbsent || s == AttendanceLeave
}

// Attendance records one employee's status for one calendar date.
// At most one record exists per (employee, date); repeated marking
// overwrites the status and check-in time.
type Attendance struct {
	ID          int64
	EmployeeID  int64
	Date        time.Time
	Status      AttendanceStatus
	CheckInTime time.Time
}
