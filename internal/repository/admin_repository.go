package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hrms-service/internal/domain"
)

// AdminRepository defines persistence access for administrator accounts.
type AdminRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Admin, error)
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	UpdatePasswordHash(ctx context.Context, email, hash string) error
}

type adminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository returns a Postgres-backed implementation.
func NewAdminRepository(pool *pgxpool.Pool) AdminRepository {
	return &adminRepository{pool: pool}
}

func (r *adminRepository) GetByID(ctx context.Context, id int64) (*domain.Admin, error) {
	const query = `
        SELECT id, name, email, password_hash, created_at
        FROM admins WHERE id=$1`

	var a domain.Admin
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Name,
		&a.Email,
		&a.PasswordHash,
		&a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	const query = `
        SELECT id, name, email, password_hash, created_at
        FROM admins WHERE email=$1`

	var a domain.Admin
	if err := r.pool.QueryRow(ctx, query, email).Scan(
		&a.ID,
		&a.Name,
		&a.Email,
		&a.PasswordHash,
		&a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adminRepository) UpdatePasswordHash(ctx context.Context, email, hash string) error {
	const query = `UPDATE admins SET password_hash=$1 WHERE email=$2`

	cmd, err := r.pool.Exec(ctx, query, hash, email)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
