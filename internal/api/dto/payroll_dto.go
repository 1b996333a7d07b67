package dto

import "time"

// PayrollSaveRequest payload for upserting an employee's payroll.
type PayrollSaveRequest struct {
	EmployeeID  int64   `json:"employeeId"`
	BasicSalary float64 `json:"basicSalary"`
	Allowances  float64 `json:"allowances"`
	Deductions  float64 `json:"deductions"`
}

// PayrollResponse is the employee's payroll row.
type PayrollResponse struct {
	EmployeeID  int64     `json:"employeeId"`
	BasicSalary float64   `json:"basicSalary"`
	Allowances  float64   `json:"allowances"`
	Deductions  float64   `json:"deductions"`
	NetSalary   float64   `json:"netSalary"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
