package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"tulika/internal/domain"
	"tulika/internal/domain/models"
	"tulika/internal/domain/repositories"
)

// PostgresUserRepository implements the UserRepository interface
type PostgresUserRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(config *RepositoryConfig) repositories.UserRepository {
	return &PostgresUserRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create inserts a new user. Duplicate usernames surface as domain.ErrConflict.
func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, r.tables.Users)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		user.Username,
		user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			return fmt.Errorf("username %q: %w", user.Username, domain.ErrConflict)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// GetByUsername retrieves a user by username
func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, username, password_hash, created_at
		FROM %s
		WHERE username = $1
	`, r.tables.Users)

	var user models.User
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("user %q: %w", username, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}

	return &user, nil
}

// GetByID retrieves a user by id
func (r *PostgresUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, username, password_hash, created_at
		FROM %s
		WHERE id = $1
	`, r.tables.Users)

	var user models.User
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}
