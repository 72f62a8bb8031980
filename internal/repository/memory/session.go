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

// SessionRepository is an in-memory SessionRepository.
type SessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
}

// NewSessionRepository creates an empty in-memory session repository.
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]*models.Session),
	}
}

var _ repositories.SessionRepository = (*SessionRepository)(nil)

func (r *SessionRepository) Create(_ context.Context, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *session
	r.sessions[session.Token] = &stored
	return nil
}

func (r *SessionRepository) GetByToken(_ context.Context, token string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[token]
	if !ok || session.Expired(time.Now()) {
		return nil, fmt.Errorf("session: %w", domain.ErrNotFound)
	}

	copied := *session
	return &copied, nil
}

func (r *SessionRepository) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)
	return nil
}

func (r *SessionRepository) DeleteExpired(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	var affected int64
	for token, session := range r.sessions {
		if session.Expired(now) {
			delete(r.sessions, token)
			affected++
		}
	}

	return affected, nil
}
