package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hrms-service/internal/domain"
)

// HolidayRepository defines persistence access for company holidays.
type HolidayRepository interface {
	Create(ctx context.Context, holiday *domain.Holiday) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Holiday, error)
}

type holidayRepository struct {
	pool *pgxpool.Pool
}

// NewHolidayRepository returns a Postgres-backed implementation.
func NewHolidayRepository(pool *pgxpool.Pool) HolidayRepository {
	return &holidayRepository{pool: pool}
}

func (r *holidayRepository) Create(ctx context.Context, holiday *domain.Holiday) error {
	const query = `
        INSERT INTO holidays (name, date)
        VALUES ($1, $2)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query, holiday.Name, holiday.Date).
		Scan(&holiday.ID, &holiday.CreatedAt)
}

func (r *holidayRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM holidays WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *holidayRepository) List(ctx context.Context) ([]domain.Holiday, error) {
	const query = `
        SELECT id, name, date, created_at
        FROM holidays ORDER BY date`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []domain.Holiday
	for rows.Next() {
		var h domain.Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.Date, &h.CreatedAt); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}
