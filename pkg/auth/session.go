package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"os"
	"time"
)

const sessionCookieName = "site_admin_session"

// SessionCookieName returns the name of the admin session cookie.
func SessionCookieName() string {
	return sessionCookieName
}

// GenerateSessionToken returns a new opaque session token: 32 random bytes,
// hex encoded (64 characters). The token carries no meaning; it is only a
// lookup key for the server-side session store.
func GenerateSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// SetSessionCookie stores the session token in an HttpOnly cookie. No MaxAge
// is set: the cookie lives as long as the browser session, matching the
// server-side store which has no expiry policy of its own.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   os.Getenv("ENV") == "production",
	})
}

// ClearSessionCookie removes the session cookie from the browser.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
	})
}
