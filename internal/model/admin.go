package model

// Admin is the single privileged account allowed to view submissions.
// PasswordHash is an opaque bcrypt hash; the plaintext secret is never stored.
type Admin struct {
	ID           int64
	Username     string
	PasswordHash string
}
