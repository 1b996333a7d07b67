package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hrms-service/internal/domain"
)

// AttendanceRepository defines persistence access for attendance records.
type AttendanceRepository interface {
	Mark(ctx context.Context, record *domain.Attendance) error
	ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*domain.Attendance, error)
}

type attendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository returns a Postgres-backed implementation.
func NewAttendanceRepository(pool *pgxpool.Pool) AttendanceRepository {
	return &attendanceRepository{pool: pool}
}

// Mark upserts the day's record in a single statement. The unique
// constraint on (employee_id, date) makes concurrent marking safe:
// whichever write lands last wins without ever producing duplicates.
func (r *attendanceRepository) Mark(ctx context.Context, record *domain.Attendance) error {
	const query = `
        INSERT INTO attendance (employee_id, date, status, check_in_time)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (employee_id, date)
        DO UPDATE SET status=EXCLUDED.status, check_in_time=EXCLUDED.check_in_time
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		record.EmployeeID,
		record.Date,
		record.Status,
		record.CheckInTime,
	).Scan(&record.ID)
}

func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Attendance, error) {
	const query = `
        SELECT id, employee_id, date, status, check_in_time
        FROM attendance WHERE employee_id=$1
        ORDER BY date DESC`

	rows, err := r.pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Attendance
	for rows.Next() {
		var a domain.Attendance
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.CheckInTime); err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*domain.Attendance, error) {
	const query = `
        SELECT id, employee_id, date, status, check_in_time
        FROM attendance WHERE employee_id=$1 AND date=$2`

	var a domain.Attendance
	if err := r.pool.QueryRow(ctx, query, employeeID, date).Scan(
		&a.ID,
		&a.EmployeeID,
		&a.Date,
		&a.Status,
		&a.CheckInTime,
	); err != nil {
		return nil, err
	}
	return &a, nil
}
