package repositories

import (
	"context"

	"tulika/internal/domain/models"
)

// UserRepository stores account rows.
type UserRepository interface {
	// Create inserts the user and fills in ID and CreatedAt.
	// Returns domain.ErrConflict if the username is taken.
	Create(ctx context.Context, user *models.User) error

	// GetByUsername returns domain.ErrNotFound if no such user exists.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// GetByID returns domain.ErrNotFound if no such user exists.
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
