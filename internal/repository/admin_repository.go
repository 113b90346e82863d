package repository

import (
	"context"
	"errors"

	"github.com/brightsite/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AdminRepository defines the persistence interface for the admin account.
type AdminRepository interface {
	// Upsert inserts the admin row for username, or replaces its password
	// hash in place when the username already exists. The row id is
	// preserved across upserts.
	Upsert(ctx context.Context, username, passwordHash string) error

	// FindByUsername returns the admin with the exact username, or
	// ErrNotFound when no such row exists.
	FindByUsername(ctx context.Context, username string) (*model.Admin, error)
}

// PgAdminRepository is the PostgreSQL implementation of AdminRepository.
type PgAdminRepository struct {
	pool *pgxpool.Pool
}

// NewPgAdminRepository creates a PgAdminRepository backed by the given pool.
func NewPgAdminRepository(pool *pgxpool.Pool) *PgAdminRepository {
	return &PgAdminRepository{pool: pool}
}

var _ AdminRepository = (*PgAdminRepository)(nil)

// Upsert performs a single conditional write keyed by the unique constraint
// on username. Under concurrent upserts the last writer wins and uniqueness
// is preserved by the constraint itself.
func (r *PgAdminRepository) Upsert(ctx context.Context, username, passwordHash string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO admins (username, password_hash)
		 VALUES ($1, $2)
		 ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash`,
		username, passwordHash)
	return err
}

// FindByUsername looks up the admin account by exact username match.
func (r *PgAdminRepository) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	var a model.Admin
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash FROM admins WHERE username = $1`,
		username).Scan(&a.ID, &a.Username, &a.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
