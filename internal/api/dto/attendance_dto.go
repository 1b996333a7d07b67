package dto

import "time"

// MarkAttendanceRequest payload for marking today's attendance.
type MarkAttendanceRequest struct {
	EmployeeID int64  `json:"employeeId"`
	Status     string `json:"status"`
}

// AttendanceResponse is one attendance row.
type AttendanceResponse struct {
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	CheckInTime time.Time `json:"check_in_time"`
}
