package service

import (
	"context"
	"errors"

	"github.com/brightsite/backend/internal/model"
	"github.com/brightsite/backend/pkg/auth"
)

// ErrInvalidCredentials is returned for both an unknown username and a wrong
// password, so a caller cannot tell which check failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService manages the admin login state machine: Login moves a caller
// from Anonymous to Authenticated, Logout back. Implements auth.SessionValidator.
type AuthService interface {
	// Login verifies the credentials and, on success, creates a server-held
	// session referenced by an opaque token.
	Login(ctx context.Context, username, password string) (*model.Session, error)

	// Logout destroys the session for the given token. Unknown or absent
	// tokens are a no-op success.
	Logout(ctx context.Context, token string) error

	// ValidateSession resolves a session token to the admin identity.
	ValidateSession(ctx context.Context, token string) (auth.Identity, error)
}
