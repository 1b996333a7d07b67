package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hrms-service/internal/domain"
)

// TaskRepository defines persistence access for assigned tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Task, error)
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus) error
}

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation.
func NewTaskRepository(pool *pgxpool.Pool) TaskRepository {
	return &taskRepository{pool: pool}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	const query = `
        INSERT INTO tasks (employee_id, title, description, status, due_date)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		task.EmployeeID,
		task.Title,
		task.Description,
		task.Status,
		task.DueDate,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
}

func (r *taskRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Task, error) {
	const query = `
        SELECT id, employee_id, title, description, status, due_date, created_at, updated_at
        FROM tasks WHERE employee_id=$1
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(
			&t.ID,
			&t.EmployeeID,
			&t.Title,
			&t.Description,
			&t.Status,
			&t.DueDate,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	const query = `
        SELECT id, employee_id, title, description, status, due_date, created_at, updated_at
        FROM tasks WHERE id=$1`

	var t domain.Task
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID,
		&t.EmployeeID,
		&t.Title,
		&t.Description,
		&t.Status,
		&t.DueDate,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *taskRepository) UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus) error {
	const query = `UPDATE tasks SET status=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
