package domain

import "time"

// Employee is the domain model for staff managed through the HRMS.
type Employee struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Department   string
	Position     string
	Salary       float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
