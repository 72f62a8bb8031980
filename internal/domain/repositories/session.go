package repositories

import (
	"context"

	"tulika/internal/domain/models"
)

// SessionRepository stores server-side sessions keyed by opaque token.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error

	// GetByToken returns domain.ErrNotFound for unknown or expired tokens.
	GetByToken(ctx context.Context, token string) (*models.Session, error)

	// Delete removes the session. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes every session past its expiry and returns the
	// number of rows removed.
	DeleteExpired(ctx context.Context) (int64, error)
}
