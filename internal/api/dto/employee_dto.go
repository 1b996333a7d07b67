package dto

import "time"

// EmployeeRegisterRequest payload for new employees.
type EmployeeRegisterRequest struct {
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	Salary     float64 `json:"salary"`
}

// EmployeeUpdateRequest payload for a full record update.
type EmployeeUpdateRequest struct {
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Email      string  `json:"email"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	Salary     float64 `json:"salary"`
}

// EmployeeResponse is the public view of an employee record.
type EmployeeResponse struct {
	ID         int64     `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	Position   string    `json:"position"`
	Salary     float64   `json:"salary"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
