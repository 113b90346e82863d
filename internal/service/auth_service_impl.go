package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/brightsite/backend/internal/model"
	"github.com/brightsite/backend/internal/repository"
	"github.com/brightsite/backend/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against on the unknown-username path so that lookup
// failures and password mismatches take a similar amount of time.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("brightsite-timing-pad"), bcrypt.DefaultCost)

// authServiceImpl is the production implementation of AuthService.
type authServiceImpl struct {
	admins   repository.AdminRepository
	sessions repository.SessionRepository
}

// NewAuthService creates an AuthService backed by the given repositories.
func NewAuthService(admins repository.AdminRepository, sessions repository.SessionRepository) AuthService {
	return &authServiceImpl{admins: admins, sessions: sessions}
}

var _ auth.SessionValidator = (AuthService)(nil)

// Login looks up the admin by username and verifies the password against the
// stored bcrypt hash. Both failure modes return ErrInvalidCredentials.
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*model.Session, error) {
	admin, err := s.admins.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("find admin: %w", err)
		}
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateSessionToken()
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}
	session := &model.Session{
		Token:     token,
		AdminID:   admin.ID,
		Username:  admin.Username,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	slog.Info("admin logged in", "username", admin.Username)
	return session, nil
}

// Logout removes the session. Idempotent: a token that no longer exists (or
// never did) is a success.
func (s *authServiceImpl) Logout(ctx context.Context, token string) error {
	return s.sessions.DeleteByToken(ctx, token)
}

// ValidateSession resolves a token to the admin identity recorded at login.
// Implements auth.SessionValidator.
func (s *authServiceImpl) ValidateSession(ctx context.Context, token string) (auth.Identity, error) {
	session, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		return auth.Identity{}, err
	}
	return auth.Identity{ID: session.AdminID, Username: session.Username}, nil
}
