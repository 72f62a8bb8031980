package services

import (
	"context"

	"tulika/internal/domain/models"
)

// AuthService handles registration, credential checks and session lifecycle.
type AuthService interface {
	// Register creates an account. Validation failures (short username or
	// password, taken username) come back as domain.ErrValidation with a
	// user-facing message.
	Register(ctx context.Context, username, password string) (*models.User, error)

	// Login verifies credentials and issues a server-side session.
	// Bad username and bad password are both domain.ErrUnauthorized.
	Login(ctx context.Context, username, password string) (*models.Session, *models.User, error)

	// Logout destroys the session. Unknown tokens are ignored.
	Logout(ctx context.Context, token string) error

	// Identify resolves a session token to its user.
	// Returns domain.ErrUnauthorized for unknown or expired tokens.
	Identify(ctx context.Context, token string) (*models.User, error)
}
