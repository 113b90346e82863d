package repository

import (
	"context"
	"errors"

	"github.com/brightsite/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionRepository handles persistence for admin login sessions.
type SessionRepository interface {
	Create(ctx context.Context, s *model.Session) error

	// FindByToken returns the session for the given token, or ErrNotFound.
	FindByToken(ctx context.Context, token string) (*model.Session, error)

	// DeleteByToken removes a session. Deleting an absent token is a no-op.
	DeleteByToken(ctx context.Context, token string) error
}

type pgSessionRepository struct {
	pool *pgxpool.Pool
}

// NewPgSessionRepository returns a PostgreSQL-backed SessionRepository.
func NewPgSessionRepository(pool *pgxpool.Pool) SessionRepository {
	return &pgSessionRepository{pool: pool}
}

func (r *pgSessionRepository) Create(ctx context.Context, s *model.Session) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO sessions (token, admin_id, username, created_at) VALUES ($1, $2, $3, $4)`,
		s.Token, s.AdminID, s.Username, s.CreatedAt)
	return err
}

func (r *pgSessionRepository) FindByToken(ctx context.Context, token string) (*model.Session, error) {
	s := &model.Session{}
	err := r.pool.QueryRow(ctx,
		`SELECT token, admin_id, username, created_at FROM sessions WHERE token = $1`,
		token).Scan(&s.Token, &s.AdminID, &s.Username, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *pgSessionRepository) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	return err
}
