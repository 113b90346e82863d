package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestEnsureAdmin_UpsertsVerifiableHash(t *testing.T) {
	var gotUsername, gotHash string
	admins := &mockAdminRepository{
		upsertFunc: func(_ context.Context, username, passwordHash string) error {
			gotUsername = username
			gotHash = passwordHash
			return nil
		},
	}

	if err := EnsureAdmin(context.Background(), admins, "admin", "admin123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotUsername != "admin" {
		t.Errorf("expected username=admin, got %q", gotUsername)
	}
	if gotHash == "admin123" {
		t.Fatal("plaintext password stored")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(gotHash), []byte("admin123")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

// Re-running the bootstrap replaces the hash in place: the store sees one
// upsert per run, keyed by the same username.
func TestEnsureAdmin_RerunOverwritesHash(t *testing.T) {
	hashes := map[string][]string{}
	admins := &mockAdminRepository{
		upsertFunc: func(_ context.Context, username, passwordHash string) error {
			hashes[username] = append(hashes[username], passwordHash)
			return nil
		},
	}

	if err := EnsureAdmin(context.Background(), admins, "alice", "first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := EnsureAdmin(context.Background(), admins, "alice", "second"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := hashes["alice"]
	if len(got) != 2 {
		t.Fatalf("expected 2 upserts for alice, got %d", len(got))
	}
	latest := got[len(got)-1]
	if err := bcrypt.CompareHashAndPassword([]byte(latest), []byte("second")); err != nil {
		t.Errorf("latest hash does not verify against new secret: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(latest), []byte("first")) == nil {
		t.Error("latest hash still verifies against the old secret")
	}
}

func TestEnsureAdmin_PropagatesUpsertError(t *testing.T) {
	wantErr := errors.New("db down")
	admins := &mockAdminRepository{
		upsertFunc: func(_ context.Context, _, _ string) error {
			return wantErr
		},
	}

	if err := EnsureAdmin(context.Background(), admins, "admin", "admin123"); !errors.Is(err, wantErr) {
		t.Errorf("expected %v, got %v", wantErr, err)
	}
}
