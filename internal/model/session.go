package model

import "time"

// Session is a server-held record of a successful admin login, referenced by
// an opaque token handed to the browser in a cookie.
type Session struct {
	Token     string
	AdminID   int64
	Username  string
	CreatedAt time.Time
}
