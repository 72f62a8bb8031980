package models

import (
	"time"
)

// Session binds an opaque token to a user id on the server side.
type Session struct {
	Token     string    `json:"-" db:"token"`
	UserID    int64     `json:"user_id" db:"user_id"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
