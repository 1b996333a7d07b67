package domain

import "time"

// Payroll holds the single payroll row kept per employee.
type Payroll struct {
	ID          int64
	EmployeeID  int64
	BasicSalary float64
	Allowances  float64
	Deductions  float64
	NetSalary   float64
	UpdatedAt   time.Time
}

// ComputeNet recalculates the net salary from its components.
func (p *Payroll) ComputeNet() {
	p.NetSalary = p.BasicSalary + p.Allowances - p.Deductions
}
