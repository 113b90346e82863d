package model

import "time"

// Submission represents one contact-form entry.
type Submission struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// HasContactMethod reports whether at least one way to reach the sender exists.
func (s *Submission) HasContactMethod() bool {
	return s.Email != "" || s.Phone != ""
}
