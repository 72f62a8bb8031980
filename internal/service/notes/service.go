package notes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"tulika/internal/config"
	"tulika/internal/domain"
	"tulika/internal/domain/models"
	"tulika/internal/domain/repositories"
	"tulika/internal/domain/services"
)

// DefaultItemName is used when a create or rename request carries a blank name.
const DefaultItemName = "Untitled"

type noteService struct {
	itemRepo  repositories.ItemRepository
	txManager repositories.TransactionManager
	cascade   services.CascadePolicy
	logger    *slog.Logger
}

// NewService creates a new note service
func NewService(
	itemRepo repositories.ItemRepository,
	txManager repositories.TransactionManager,
	cascade services.CascadePolicy,
	logger *slog.Logger,
) services.NoteService {
	return &noteService{
		itemRepo:  itemRepo,
		txManager: txManager,
		cascade:   cascade,
		logger:    logger,
	}
}

// ListAll returns every item of the owner as content-free summaries
func (s *noteService) ListAll(ctx context.Context, ownerID int64) ([]models.ItemSummary, error) {
	return s.itemRepo.ListByOwner(ctx, ownerID)
}

// GetContent returns the content of a file item. Folders and foreign or
// missing ids all come back as not found; the store keeps that coarse.
func (s *noteService) GetContent(ctx context.Context, ownerID, itemID int64) (string, error) {
	item, err := s.itemRepo.GetByID(ctx, ownerID, itemID)
	if err != nil {
		return "", err
	}

	if item.Kind != models.KindFile {
		return "", fmt.Errorf("item %d: %w", itemID, domain.ErrNotFound)
	}

	return item.Content, nil
}

// Create inserts a new item for the owner
func (s *noteService) Create(ctx context.Context, ownerID int64, req *services.CreateItemRequest) (*models.Item, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = DefaultItemName
	}

	// New files open on a heading derived from their name
	content := ""
	if req.Kind == models.KindFile {
		content = "# " + name
	}

	item := &models.Item{
		OwnerID:  ownerID,
		ParentID: req.ParentID,
		Name:     name,
		Kind:     req.Kind,
		Content:  content,
	}

	// Parent check and insert share a transaction so the parent cannot be
	// deleted in between.
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if req.ParentID != nil {
			if err := s.validateParent(txCtx, ownerID, *req.ParentID); err != nil {
				return err
			}
		}
		return s.itemRepo.Create(txCtx, item)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("item created",
		"id", item.ID,
		"owner_id", ownerID,
		"kind", item.Kind,
		"parent_id", item.ParentID,
	)

	return item, nil
}

// UpdateContent replaces the content of a file item. An id that matches
// nothing the owner has is a silent no-op; callers observe success.
func (s *noteService) UpdateContent(ctx context.Context, ownerID, itemID int64, content string) error {
	affected, err := s.itemRepo.UpdateContent(ctx, ownerID, itemID, content)
	if err != nil {
		return err
	}

	if affected == 0 {
		s.logger.Debug("update_content matched no rows", "owner_id", ownerID, "item_id", itemID)
	}

	return nil
}

// Rename changes the display name. Blank names default to "Untitled".
func (s *noteService) Rename(ctx context.Context, ownerID, itemID int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultItemName
	}
	if err := validation.Validate(name, validation.Length(1, config.MaxItemNameLength)); err != nil {
		return fmt.Errorf("%w: name: %v", domain.ErrValidation, err)
	}

	affected, err := s.itemRepo.Rename(ctx, ownerID, itemID, name)
	if err != nil {
		return err
	}

	if affected == 0 {
		s.logger.Debug("rename matched no rows", "owner_id", ownerID, "item_id", itemID)
	}

	return nil
}

// Move reparents the item. nil means root level.
func (s *noteService) Move(ctx context.Context, ownerID, itemID int64, parentID *int64) error {
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if parentID != nil {
			if err := s.validateParent(txCtx, ownerID, *parentID); err != nil {
				return err
			}
			if err := s.validateNoCircularReference(txCtx, ownerID, itemID, *parentID); err != nil {
				return err
			}
		}

		affected, err := s.itemRepo.SetParent(txCtx, ownerID, itemID, parentID)
		if err != nil {
			return err
		}
		if affected == 0 {
			s.logger.Debug("move matched no rows", "owner_id", ownerID, "item_id", itemID)
		}
		return nil
	})
	return err
}

// Delete removes the item and cascades per the configured policy
func (s *noteService) Delete(ctx context.Context, ownerID, itemID int64) error {
	if s.cascade == services.RecursiveCascade {
		affected, err := s.itemRepo.DeleteSubtree(ctx, ownerID, itemID)
		if err != nil {
			return err
		}
		s.logger.Info("item subtree deleted", "owner_id", ownerID, "item_id", itemID, "rows", affected)
		return nil
	}

	// Shallow cascade: the item, then its direct children, as two
	// independent statements. Grandchildren orphan with a dangling
	// parent_id; the tree builder drops them from the forest.
	affected, err := s.itemRepo.Delete(ctx, ownerID, itemID)
	if err != nil {
		return err
	}

	children, err := s.itemRepo.DeleteChildren(ctx, ownerID, itemID)
	if err != nil {
		return err
	}

	s.logger.Info("item deleted",
		"owner_id", ownerID,
		"item_id", itemID,
		"rows", affected,
		"children", children,
	)

	return nil
}

// GetTree lists the owner's items and assembles the nested forest
func (s *noteService) GetTree(ctx context.Context, ownerID int64) (models.Forest, error) {
	items, err := s.itemRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return BuildTree(items), nil
}

// validateParent ensures the proposed parent exists, belongs to the owner
// and is a folder. A file cannot be used as a parent.
func (s *noteService) validateParent(ctx context.Context, ownerID, parentID int64) error {
	parent, err := s.itemRepo.GetByID(ctx, ownerID, parentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: parent folder not found", domain.ErrValidation)
		}
		return err
	}

	if parent.Kind != models.KindFolder {
		return fmt.Errorf("%w: parent must be a folder", domain.ErrValidation)
	}

	return nil
}

// validateNoCircularReference ensures moving an item won't make it its own
// ancestor: walk up from the proposed parent and reject if the moved item
// appears on the way to the root.
func (s *noteService) validateNoCircularReference(ctx context.Context, ownerID, itemID, newParentID int64) error {
	if itemID == newParentID {
		return fmt.Errorf("%w: cannot move item into itself", domain.ErrValidation)
	}

	// visited guards the walk against pre-existing cycles in stored data
	visited := make(map[int64]bool)
	currentID := newParentID
	for !visited[currentID] {
		visited[currentID] = true

		current, err := s.itemRepo.GetByID(ctx, ownerID, currentID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Dangling parent link (orphaned by a shallow cascade
				// delete) - treat as having reached the root.
				return nil
			}
			return err
		}

		if current.ParentID == nil {
			return nil
		}

		if *current.ParentID == itemID {
			return fmt.Errorf("%w: cannot move item into its own subtree", domain.ErrValidation)
		}

		currentID = *current.ParentID
	}

	return fmt.Errorf("%w: parent chain contains a cycle", domain.ErrValidation)
}

func validateCreateRequest(req *services.CreateItemRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Length(0, config.MaxItemNameLength)),
		validation.Field(&req.Kind,
			validation.Required,
			validation.In(models.KindFile, models.KindFolder),
		),
	)
}
