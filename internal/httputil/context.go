package httputil

import (
	"context"
	"net/http"

	"tulika/internal/domain/models"
)

// Context key type to avoid collisions
type contextKey string

const userKey contextKey = "user"

// WithUser adds the authenticated user to the request context
func WithUser(r *http.Request, user *models.User) *http.Request {
	ctx := context.WithValue(r.Context(), userKey, user)
	return r.WithContext(ctx)
}

// GetUser retrieves the authenticated user from context, nil if absent
func GetUser(r *http.Request) *models.User {
	user, _ := r.Context().Value(userKey).(*models.User)
	return user
}
