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

// PostgresItemRepository implements the ItemRepository interface
type PostgresItemRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewItemRepository creates a new item repository
func NewItemRepository(config *RepositoryConfig) repositories.ItemRepository {
	return &PostgresItemRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create inserts a new item
func (r *PostgresItemRepository) Create(ctx context.Context, item *models.Item) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (owner_id, parent_id, name, kind, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, r.tables.Items)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		item.OwnerID,
		item.ParentID,
		item.Name,
		item.Kind,
		item.Content,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create item: %w", err)
	}

	return nil
}

// GetByID retrieves a full item, content included, scoped by owner
func (r *PostgresItemRepository) GetByID(ctx context.Context, ownerID, id int64) (*models.Item, error) {
	query := fmt.Sprintf(`
		SELECT id, owner_id, parent_id, name, kind, content, created_at, updated_at
		FROM %s
		WHERE id = $1 AND owner_id = $2
	`, r.tables.Items)

	var item models.Item
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id, ownerID).Scan(
		&item.ID,
		&item.OwnerID,
		&item.ParentID,
		&item.Name,
		&item.Kind,
		&item.Content,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get item: %w", err)
	}

	return &item, nil
}

// ListByOwner retrieves content-free summaries of every item the owner has,
// in insertion (id) order
func (r *PostgresItemRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.ItemSummary, error) {
	query := fmt.Sprintf(`
		SELECT id, parent_id, name, kind
		FROM %s
		WHERE owner_id = $1
		ORDER BY id ASC
	`, r.tables.Items)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []models.ItemSummary
	for rows.Next() {
		var item models.ItemSummary
		err := rows.Scan(
			&item.ID,
			&item.ParentID,
			&item.Name,
			&item.Kind,
		)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}

	// Return empty slice instead of nil
	if items == nil {
		items = []models.ItemSummary{}
	}

	return items, nil
}

// UpdateContent sets the content of a file item
func (r *PostgresItemRepository) UpdateContent(ctx context.Context, ownerID, id int64, content string) (int64, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET content = $1, updated_at = NOW()
		WHERE id = $2 AND owner_id = $3 AND kind = 'file'
	`, r.tables.Items)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, content, id, ownerID)
	if err != nil {
		return 0, fmt.Errorf("update content: %w", err)
	}

	return result.RowsAffected(), nil
}

// Rename sets the display name of an item
func (r *PostgresItemRepository) Rename(ctx context.Context, ownerID, id int64, name string) (int64, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, updated_at = NOW()
		WHERE id = $2 AND owner_id = $3
	`, r.tables.Items)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, name, id, ownerID)
	if err != nil {
		return 0, fmt.Errorf("rename item: %w", err)
	}

	return result.RowsAffected(), nil
}

// SetParent reparents an item. nil parentID moves it to root level.
func (r *PostgresItemRepository) SetParent(ctx context.Context, ownerID, id int64, parentID *int64) (int64, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET parent_id = $1, updated_at = NOW()
		WHERE id = $2 AND owner_id = $3
	`, r.tables.Items)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, parentID, id, ownerID)
	if err != nil {
		return 0, fmt.Errorf("move item: %w", err)
	}

	return result.RowsAffected(), nil
}

// Delete removes a single item row
func (r *PostgresItemRepository) Delete(ctx context.Context, ownerID, id int64) (int64, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1 AND owner_id = $2
	`, r.tables.Items)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id, ownerID)
	if err != nil {
		return 0, fmt.Errorf("delete item: %w", err)
	}

	return result.RowsAffected(), nil
}

// DeleteChildren removes items whose parent_id equals parentID. One
// generation only; grandchildren keep their dangling parent_id.
func (r *PostgresItemRepository) DeleteChildren(ctx context.Context, ownerID, parentID int64) (int64, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE parent_id = $1 AND owner_id = $2
	`, r.tables.Items)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, parentID, ownerID)
	if err != nil {
		return 0, fmt.Errorf("delete children: %w", err)
	}

	return result.RowsAffected(), nil
}

// DeleteSubtree removes the item and all of its descendants using a
// recursive CTE
func (r *PostgresItemRepository) DeleteSubtree(ctx context.Context, ownerID, id int64) (int64, error) {
	query := fmt.Sprintf(`
		WITH RECURSIVE subtree AS (
			SELECT id FROM %s WHERE id = $1 AND owner_id = $2
			UNION ALL
			SELECT i.id
			FROM %s i
			JOIN subtree s ON i.parent_id = s.id
			WHERE i.owner_id = $2
		)
		DELETE FROM %s
		WHERE id IN (SELECT id FROM subtree) AND owner_id = $2
	`, r.tables.Items, r.tables.Items, r.tables.Items)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id, ownerID)
	if err != nil {
		return 0, fmt.Errorf("delete subtree: %w", err)
	}

	return result.RowsAffected(), nil
}
