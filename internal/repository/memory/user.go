package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tulika/internal/domain"
	"tulika/internal/domain/models"
	"tulika/internal/domain/repositories"
)

// UserRepository is an in-memory UserRepository.
type UserRepository struct {
	mu     sync.Mutex
	users  map[int64]*models.User
	nextID int64
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[int64]*models.User),
		nextID: 1,
	}
}

var _ repositories.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return fmt.Errorf("username %q: %w", user.Username, domain.ErrConflict)
		}
	}

	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()

	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}

	return nil, fmt.Errorf("user %q: %w", username, domain.ErrNotFound)
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}

	copied := *user
	return &copied, nil
}
