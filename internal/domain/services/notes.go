package services

import (
	"context"

	"tulika/internal/domain/models"
)

// CascadePolicy controls what deleting a folder does to its descendants.
type CascadePolicy int

const (
	// ShallowCascade deletes the item and its direct children only.
	// Grandchildren survive with a dangling parent_id, matching the
	// behavior clients of the original API observed.
	ShallowCascade CascadePolicy = iota

	// RecursiveCascade deletes the full subtree in one transaction.
	RecursiveCascade
)

// CreateItemRequest is the input for NoteService.Create.
type CreateItemRequest struct {
	Name     string      `json:"name"`
	Kind     models.Kind `json:"kind"`
	ParentID *int64      `json:"parent_id"`
}

// NoteService defines the owner-scoped note store operations.
//
// Mutations on an id that matches nothing the owner has are silent no-ops:
// the call succeeds and nothing changes. Callers that need to know fetch
// the item afterwards.
type NoteService interface {
	// ListAll returns every item of the owner as content-free summaries.
	ListAll(ctx context.Context, ownerID int64) ([]models.ItemSummary, error)

	// GetContent returns the content of a file item. Missing id, foreign
	// owner and folder items all yield domain.ErrNotFound.
	GetContent(ctx context.Context, ownerID, itemID int64) (string, error)

	// Create inserts a new item. A blank name defaults to "Untitled"; new
	// files are seeded with a markdown heading derived from the name.
	Create(ctx context.Context, ownerID int64, req *CreateItemRequest) (*models.Item, error)

	// UpdateContent replaces the content of a file item.
	UpdateContent(ctx context.Context, ownerID, itemID int64, content string) error

	// Rename changes the display name. Blank defaults to "Untitled".
	Rename(ctx context.Context, ownerID, itemID int64, name string) error

	// Move reparents the item. nil means root level. Moves that would make
	// the item its own ancestor are rejected with domain.ErrValidation.
	Move(ctx context.Context, ownerID, itemID int64, parentID *int64) error

	// Delete removes the item and cascades per the configured policy.
	Delete(ctx context.Context, ownerID, itemID int64) error

	// GetTree lists the owner's items and assembles the nested forest.
	GetTree(ctx context.Context, ownerID int64) (models.Forest, error)
}
