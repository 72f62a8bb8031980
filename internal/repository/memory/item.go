// Package memory holds map-backed repository implementations used by tests
// and local experiments. They mirror the Postgres semantics, including
// owner scoping and affected-row counts.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"tulika/internal/domain"
	"tulika/internal/domain/models"
	"tulika/internal/domain/repositories"
)

// ItemRepository is an in-memory ItemRepository.
type ItemRepository struct {
	mu     sync.Mutex
	items  map[int64]*models.Item
	nextID int64
}

// NewItemRepository creates an empty in-memory item repository.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{
		items:  make(map[int64]*models.Item),
		nextID: 1,
	}
}

var _ repositories.ItemRepository = (*ItemRepository)(nil)

func (r *ItemRepository) Create(_ context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	item.ID = r.nextID
	r.nextID++
	item.CreatedAt = now
	item.UpdatedAt = now

	stored := *item
	r.items[item.ID] = &stored
	return nil
}

func (r *ItemRepository) GetByID(_ context.Context, ownerID, id int64) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok || item.OwnerID != ownerID {
		return nil, fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
	}

	copied := *item
	return &copied, nil
}

func (r *ItemRepository) ListByOwner(_ context.Context, ownerID int64) ([]models.ItemSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	summaries := []models.ItemSummary{}
	for _, item := range r.items {
		if item.OwnerID != ownerID {
			continue
		}
		summaries = append(summaries, models.ItemSummary{
			ID:       item.ID,
			ParentID: item.ParentID,
			Name:     item.Name,
			Kind:     item.Kind,
		})
	}

	// Insertion order, like the BIGSERIAL table
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ID < summaries[j].ID })

	return summaries, nil
}

func (r *ItemRepository) UpdateContent(_ context.Context, ownerID, id int64, content string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok || item.OwnerID != ownerID || item.Kind != models.KindFile {
		return 0, nil
	}

	item.Content = content
	item.UpdatedAt = time.Now()
	return 1, nil
}

func (r *ItemRepository) Rename(_ context.Context, ownerID, id int64, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok || item.OwnerID != ownerID {
		return 0, nil
	}

	item.Name = name
	item.UpdatedAt = time.Now()
	return 1, nil
}

func (r *ItemRepository) SetParent(_ context.Context, ownerID, id int64, parentID *int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok || item.OwnerID != ownerID {
		return 0, nil
	}

	item.ParentID = parentID
	item.UpdatedAt = time.Now()
	return 1, nil
}

func (r *ItemRepository) Delete(_ context.Context, ownerID, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok || item.OwnerID != ownerID {
		return 0, nil
	}

	delete(r.items, item.ID)
	return 1, nil
}

func (r *ItemRepository) DeleteChildren(_ context.Context, ownerID, parentID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var affected int64
	for id, item := range r.items {
		if item.OwnerID == ownerID && item.ParentID != nil && *item.ParentID == parentID {
			delete(r.items, id)
			affected++
		}
	}

	return affected, nil
}

func (r *ItemRepository) DeleteSubtree(_ context.Context, ownerID, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	root, ok := r.items[id]
	if !ok || root.OwnerID != ownerID {
		return 0, nil
	}

	// Breadth-first walk over parent links
	doomed := map[int64]bool{id: true}
	frontier := []int64{id}
	for len(frontier) > 0 {
		var next []int64
		for _, item := range r.items {
			if item.OwnerID != ownerID || item.ParentID == nil || doomed[item.ID] {
				continue
			}
			for _, pid := range frontier {
				if *item.ParentID == pid {
					doomed[item.ID] = true
					next = append(next, item.ID)
					break
				}
			}
		}
		frontier = next
	}

	for itemID := range doomed {
		delete(r.items, itemID)
	}

	return int64(len(doomed)), nil
}
