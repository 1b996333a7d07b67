package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hrms-service/internal/domain"
)

// ErrDuplicateEmail is returned when an insert collides with the unique
// email constraint.
var ErrDuplicateEmail = errors.New("email already registered")

// EmployeeRepository defines persistence access for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	Update(ctx context.Context, employee *domain.Employee) error
	UpdatePasswordHash(ctx context.Context, email, hash string) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository returns a Postgres-backed implementation.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

func (r *employeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	const query = `
        INSERT INTO employees (first_name, last_name, email, password_hash, department, position, salary)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		employee.FirstName,
		employee.LastName,
		employee.Email,
		employee.PasswordHash,
		employee.Department,
		employee.Position,
		employee.Salary,
	).Scan(&employee.ID, &employee.CreatedAt, &employee.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateEmail
	}
	return err
}

func (r *employeeRepository) Update(ctx context.Context, employee *domain.Employee) error {
	const query = `
        UPDATE employees
        SET first_name=$1, last_name=$2, email=$3, department=$4, position=$5, salary=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		employee.FirstName,
		employee.LastName,
		employee.Email,
		employee.Department,
		employee.Position,
		employee.Salary,
		employee.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) UpdatePasswordHash(ctx context.Context, email, hash string) error {
	const query = `
        UPDATE employees SET password_hash=$1, updated_at=NOW()
        WHERE email=$2`

	cmd, err := r.pool.Exec(ctx, query, hash, email)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM employees WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	const query = `
        SELECT id, first_name, last_name, email, password_hash, department, position, salary, created_at, updated_at
        FROM employees WHERE id=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	const query = `
        SELECT id, first_name, last_name, email, password_hash, department, position, salary, created_at, updated_at
        FROM employees WHERE email=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	const query = `
        SELECT id, first_name, last_name, email, password_hash, department, position, salary, created_at, updated_at
        FROM employees ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(
			&e.ID,
			&e.FirstName,
			&e.LastName,
			&e.Email,
			&e.PasswordHash,
			&e.Department,
			&e.Position,
			&e.Salary,
			&e.CreatedAt,
			&e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepository) scanOne(row pgx.Row) (*domain.Employee, error) {
	var e domain.Employee
	if err := row.Scan(
		&e.ID,
		&e.FirstName,
		&e.LastName,
		&e.Email,
		&e.PasswordHash,
		&e.Department,
		&e.Position,
		&e.Salary,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}
