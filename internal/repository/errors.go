package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist. Absence of
// an admin or a session is an expected condition, not an I/O failure.
var ErrNotFound = errors.New("not found")
