package service

import (
	"context"
	"time"

	"github.com/brightsite/backend/internal/model"
	"github.com/brightsite/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.SubmissionRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.SubmissionRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Submit assigns CreatedAt and persists the submission. The row is immutable
// once stored.
func (s *contactServiceImpl) Submit(ctx context.Context, sub *model.Submission) error {
	sub.CreatedAt = time.Now().UTC()
	return s.repo.Insert(ctx, sub)
}

// List returns all submissions ordered by CreatedAt descending.
func (s *contactServiceImpl) List(ctx context.Context) ([]*model.Submission, error) {
	return s.repo.List(ctx)
}

// Count returns the total submission count.
func (s *contactServiceImpl) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
