package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tulika/internal/config"
	"tulika/internal/domain"
	"tulika/internal/domain/models"
	"tulika/internal/domain/repositories"
	"tulika/internal/domain/services"
)

type authService struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	sessionTTL  time.Duration
	logger      *slog.Logger
}

// NewService creates a new auth service
func NewService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	sessionTTL time.Duration,
	logger *slog.Logger,
) services.AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}

// Register creates an account with a bcrypt password hash. The messages
// here are user-facing and surface verbatim in the response body.
func (s *authService) Register(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)

	if username == "" || password == "" {
		return nil, &domain.ValidationError{Message: "Username and password are required."}
	}
	if len(username) < config.MinUsernameLength {
		return nil, &domain.ValidationError{
			Message: fmt.Sprintf("Username must be at least %d characters long.", config.MinUsernameLength),
		}
	}
	if len(password) < config.MinPasswordLength {
		return nil, &domain.ValidationError{
			Message: fmt.Sprintf("Password must be at least %d characters long.", config.MinPasswordLength),
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, &domain.ValidationError{Message: "Username already exists."}
		}
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID, "username", user.Username)

	return user, nil
}

// Login verifies credentials and issues a server-side session. Unknown
// usernames and wrong passwords are deliberately indistinguishable.
func (s *authService) Login(ctx context.Context, username, password string) (*models.Session, *models.User, error) {
	username = strings.TrimSpace(username)

	if username == "" || password == "" {
		return nil, nil, &domain.ValidationError{Message: "Username and password are required."}
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.ErrUnauthorized
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, domain.ErrUnauthorized
	}

	// Sweep expired rows while we are here; logout is otherwise the only
	// delete path on the sessions table.
	if purged, err := s.sessionRepo.DeleteExpired(ctx); err != nil {
		s.logger.Warn("expired session sweep failed", "error", err)
	} else if purged > 0 {
		s.logger.Debug("expired sessions purged", "count", purged)
	}

	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, nil, err
	}

	s.logger.Info("user logged in", "user_id", user.ID)

	return session, user, nil
}

// Logout destroys the session. Unknown tokens are ignored.
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessionRepo.Delete(ctx, token)
}

// Identify resolves a session token to its user
func (s *authService) Identify(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	return user, nil
}
