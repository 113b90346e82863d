package service

import (
	"context"

	"github.com/brightsite/backend/internal/model"
)

// ContactService defines the business logic for contact-form submissions.
type ContactService interface {
	// Submit stores a new submission. CreatedAt is assigned at acceptance
	// time and sub.ID is populated by the implementation.
	Submit(ctx context.Context, sub *model.Submission) error

	// List returns every stored submission, most recent first.
	List(ctx context.Context) ([]*model.Submission, error)

	// Count returns the total number of stored submissions.
	Count(ctx context.Context) (int64, error)
}
