package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brightsite/backend/internal/model"
)

// ---------------------------------------------------------------------------
// Mock SubmissionRepository
// ---------------------------------------------------------------------------

type mockSubmissionRepository struct {
	insertFunc func(ctx context.Context, sub *model.Submission) error
	listFunc   func(ctx context.Context) ([]*model.Submission, error)
	countFunc  func(ctx context.Context) (int64, error)
}

func (m *mockSubmissionRepository) Insert(ctx context.Context, sub *model.Submission) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubmissionRepository) List(ctx context.Context) ([]*model.Submission, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockSubmissionRepository) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestContactService_Submit_AssignsCreatedAt(t *testing.T) {
	var stored *model.Submission
	repo := &mockSubmissionRepository{
		insertFunc: func(_ context.Context, sub *model.Submission) error {
			sub.ID = 7
			stored = sub
			return nil
		},
	}
	svc := NewContactService(repo)

	before := time.Now().UTC()
	sub := &model.Submission{Name: "Jo", Email: "jo@x.com", Message: "Hi"}
	if err := svc.Submit(context.Background(), sub); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after := time.Now().UTC()

	if stored == nil {
		t.Fatal("expected Insert to be called")
	}
	if sub.ID != 7 {
		t.Errorf("expected ID=7, got %d", sub.ID)
	}
	if sub.CreatedAt.Before(before) || sub.CreatedAt.After(after) {
		t.Errorf("CreatedAt %v not in [%v, %v]", sub.CreatedAt, before, after)
	}
}

func TestContactService_Submit_PropagatesStorageError(t *testing.T) {
	wantErr := errors.New("disk full")
	repo := &mockSubmissionRepository{
		insertFunc: func(_ context.Context, _ *model.Submission) error {
			return wantErr
		},
	}
	svc := NewContactService(repo)

	err := svc.Submit(context.Background(), &model.Submission{Name: "Jo", Message: "Hi", Email: "jo@x.com"})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected %v, got %v", wantErr, err)
	}
}

func TestContactService_List_PassesThrough(t *testing.T) {
	want := []*model.Submission{{ID: 2}, {ID: 1}}
	repo := &mockSubmissionRepository{
		listFunc: func(_ context.Context) ([]*model.Submission, error) {
			return want, nil
		},
	}
	svc := NewContactService(repo)

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 1 {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestContactService_Count_PassesThrough(t *testing.T) {
	repo := &mockSubmissionRepository{
		countFunc: func(_ context.Context) (int64, error) {
			return 42, nil
		},
	}
	svc := NewContactService(repo)

	n, err := svc.Count(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 42 {
		t.Errorf("expected 42, got %d", n)
	}
}
