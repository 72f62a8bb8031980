package repositories

import (
	"context"

	"tulika/internal/domain/models"
)

// ItemRepository is the owner-scoped store of items. Every query and
// mutation is filtered by ownerID; an item belonging to another user is
// indistinguishable from a missing one.
//
// Mutations return the number of rows affected. A zero count is not an
// error at this level - the service layer decides whether "matched
// nothing" is reported to the caller.
type ItemRepository interface {
	// Create inserts the item and fills in ID, CreatedAt and UpdatedAt.
	Create(ctx context.Context, item *models.Item) error

	// GetByID returns the full item, including content.
	// Returns domain.ErrNotFound if no row matches id and ownerID.
	GetByID(ctx context.Context, ownerID, id int64) (*models.Item, error)

	// ListByOwner returns content-free summaries of every item the owner
	// has, in insertion (id) order. Never nil.
	ListByOwner(ctx context.Context, ownerID int64) ([]models.ItemSummary, error)

	// UpdateContent sets content on a file item owned by ownerID.
	UpdateContent(ctx context.Context, ownerID, id int64, content string) (int64, error)

	// Rename sets the display name.
	Rename(ctx context.Context, ownerID, id int64, name string) (int64, error)

	// SetParent reparents the item. nil parentID means root level.
	SetParent(ctx context.Context, ownerID, id int64, parentID *int64) (int64, error)

	// Delete removes a single item row.
	Delete(ctx context.Context, ownerID, id int64) (int64, error)

	// DeleteChildren removes every item whose parent_id equals parentID.
	// One generation only; grandchildren are untouched.
	DeleteChildren(ctx context.Context, ownerID, parentID int64) (int64, error)

	// DeleteSubtree removes the item and all of its descendants.
	DeleteSubtree(ctx context.Context, ownerID, id int64) (int64, error)
}
