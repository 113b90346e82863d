package service

import (
	"context"
	"fmt"

	"github.com/brightsite/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// EnsureAdmin guarantees a known administrator login exists after every
// process start: it hashes the configured secret and upserts the admin row,
// overwriting any previous hash for that username. Runs once at startup.
// Callers log failures and keep serving; there is no other admin-provisioning
// path, so a failed bootstrap means admin login stays unavailable until the
// next successful restart.
func EnsureAdmin(ctx context.Context, admins repository.AdminRepository, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	if err := admins.Upsert(ctx, username, string(hash)); err != nil {
		return fmt.Errorf("upsert admin: %w", err)
	}
	return nil
}
