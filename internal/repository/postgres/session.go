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

// PostgresSessionRepository implements the SessionRepository interface
type PostgresSessionRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(config *RepositoryConfig) repositories.SessionRepository {
	return &PostgresSessionRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create inserts a new session row
func (r *PostgresSessionRepository) Create(ctx context.Context, session *models.Session) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (token, user_id, expires_at)
		VALUES ($1, $2, $3)
	`, r.tables.Sessions)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		session.Token,
		session.UserID,
		session.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	return nil
}

// GetByToken retrieves a live session. Expired rows are filtered in the
// query so callers never see them.
func (r *PostgresSessionRepository) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	query := fmt.Sprintf(`
		SELECT token, user_id, expires_at
		FROM %s
		WHERE token = $1 AND expires_at > NOW()
	`, r.tables.Sessions)

	var session models.Session
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, token).Scan(
		&session.Token,
		&session.UserID,
		&session.ExpiresAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("session: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	return &session, nil
}

// Delete removes a session. Unknown tokens are not an error.
func (r *PostgresSessionRepository) Delete(ctx context.Context, token string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE token = $1
	`, r.tables.Sessions)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query, token)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// DeleteExpired removes sessions past their expiry. GetByToken only
// filters them; without this sweep the table grows without bound.
func (r *PostgresSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE expires_at <= NOW()
	`, r.tables.Sessions)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}

	return result.RowsAffected(), nil
}
