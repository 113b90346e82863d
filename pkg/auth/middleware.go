package auth

import (
	"context"
	"encoding/json"
	"net/http"
)

// Identity is the authenticated admin attached to a request context by
// RequireAdmin. Handlers read it instead of any ambient global state.
type Identity struct {
	ID       int64
	Username string
}

// SessionValidator resolves an opaque session token to an admin identity.
// Implemented by service.AuthService.
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (Identity, error)
}

type contextKey string

const identityKey contextKey = "admin_identity"

// IdentityFromContext returns the authenticated admin, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	v, ok := ctx.Value(identityKey).(Identity)
	return v, ok
}

// WithIdentity returns a context carrying the given admin identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// RequireAdmin guards admin-only routes. It validates the session cookie and
// injects the admin identity into the request context; anything less than a
// valid session is rejected with 401 before the guarded handler runs.
func RequireAdmin(validator SessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err != nil || cookie.Value == "" {
				unauthorized(w)
				return
			}

			id, err := validator.ValidateSession(r.Context(), cookie.Value)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := WithIdentity(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "Unauthorized"})
}
