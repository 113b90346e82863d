package repository

import (
	"context"

	"github.com/brightsite/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SubmissionRepository defines the persistence interface for contact-form
// submissions. Submissions are append-only: this service never updates or
// deletes a stored row.
type SubmissionRepository interface {
	// Insert appends a new submission and populates sub.ID from the database.
	Insert(ctx context.Context, sub *model.Submission) error

	// List returns every stored submission, most recent first.
	List(ctx context.Context) ([]*model.Submission, error)

	// Count returns the total number of stored submissions.
	Count(ctx context.Context) (int64, error)
}

// PgSubmissionRepository is the PostgreSQL implementation of SubmissionRepository.
type PgSubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewPgSubmissionRepository creates a PgSubmissionRepository backed by the given pool.
func NewPgSubmissionRepository(pool *pgxpool.Pool) *PgSubmissionRepository {
	return &PgSubmissionRepository{pool: pool}
}

var _ SubmissionRepository = (*PgSubmissionRepository)(nil)

// Insert appends a new submissions row and populates sub.ID from the
// RETURNING clause. CreatedAt is set by the caller at acceptance time.
func (r *PgSubmissionRepository) Insert(ctx context.Context, sub *model.Submission) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO submissions (name, email, phone, message, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		sub.Name, sub.Email, sub.Phone, sub.Message, sub.CreatedAt,
	).Scan(&sub.ID)
}

// List returns all submissions ordered by created_at descending. Ties on
// created_at fall back to insertion order via the id column.
func (r *PgSubmissionRepository) List(ctx context.Context) ([]*model.Submission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, phone, message, created_at
		 FROM submissions
		 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*model.Submission
	for rows.Next() {
		var s model.Submission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Message, &s.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}

// Count returns the total submissions row count.
func (r *PgSubmissionRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM submissions`).Scan(&n)
	return n, err
}
