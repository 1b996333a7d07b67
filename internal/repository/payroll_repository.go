package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hrms-service/internal/domain"
)

// PayrollRepository defines persistence access for payroll rows.
type PayrollRepository interface {
	Save(ctx context.Context, payroll *domain.Payroll) error
	GetByEmployee(ctx context.Context, employeeID int64) (*domain.Payroll, error)
}

type payrollRepository struct {
	pool *pgxpool.Pool
}

// NewPayrollRepository returns a Postgres-backed implementation.
func NewPayrollRepository(pool *pgxpool.Pool) PayrollRepository {
	return &payrollRepository{pool: pool}
}

// Save upserts the one payroll row kept per employee in a single
// statement, avoiding the read-then-write race a lookup would open.
func (r *payrollRepository) Save(ctx context.Context, payroll *domain.Payroll) error {
	const query = `
        INSERT INTO payroll (employee_id, basic_salary, allowances, deductions, net_salary)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (employee_id)
        DO UPDATE SET basic_salary=EXCLUDED.basic_salary,
                      allowances=EXCLUDED.allowances,
                      deductions=EXCLUDED.deductions,
                      net_salary=EXCLUDED.net_salary,
                      updated_at=NOW()
        RETURNING id, updated_at`

	return r.pool.QueryRow(ctx, query,
		payroll.EmployeeID,
		payroll.BasicSalary,
		payroll.Allowances,
		payroll.Deductions,
		payroll.NetSalary,
	).Scan(&payroll.ID, &payroll.UpdatedAt)
}

func (r *payrollRepository) GetByEmployee(ctx context.Context, employeeID int64) (*domain.Payroll, error) {
	const query = `
        SELECT id, employee_id, basic_salary, allowances, deductions, net_salary, updated_at
        FROM payroll WHERE employee_id=$1`

	var p domain.Payroll
	if err := r.pool.QueryRow(ctx, query, employeeID).Scan(
		&p.ID,
		&p.EmployeeID,
		&p.BasicSalary,
		&p.Allowances,
		&p.Deductions,
		&p.NetSalary,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
