package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"tulika/internal/domain"
	"tulika/internal/domain/services"
	"tulika/internal/httputil"
	"tulika/internal/middleware"
)

// AuthHandler handles the identity/session endpoint group
type AuthHandler struct {
	authService services.AuthService
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService services.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Handle multiplexes the auth actions
// GET|POST /api/auth?action=register|login|logout|status
func (h *AuthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch action(r) {
	case "register":
		h.register(w, r)
	case "login":
		h.login(w, r)
	case "logout":
		h.logout(w, r)
	case "status":
		h.status(w, r)
	default:
		httputil.RespondFailure(w, "Invalid action.")
	}
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	_, err := h.authService.Register(r.Context(), username, password)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			httputil.RespondFailure(w, validationErr.Message)
			return
		}
		h.logger.Error("registration failed", "error", err)
		httputil.RespondFailure(w, "Registration failed. Please try again.")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Registration successful!",
	})
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	session, _, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			httputil.RespondFailure(w, validationErr.Message)
		case errors.Is(err, domain.ErrUnauthorized):
			httputil.RespondFailure(w, "Invalid username or password.")
		default:
			h.logger.Error("login failed", "error", err)
			httputil.RespondFailure(w, "Login failed. Please try again.")
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Login successful!",
	})
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookie); err == nil {
		if err := h.authService.Logout(r.Context(), cookie.Value); err != nil {
			h.logger.Warn("logout failed", "error", err)
		}
	}

	// Expire the cookie regardless
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Logged out successfully.",
	})
}

func (h *AuthHandler) status(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.SessionCookie)
	if err != nil {
		httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"loggedIn": false})
		return
	}

	user, err := h.authService.Identify(r.Context(), cookie.Value)
	if err != nil {
		httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"loggedIn": false})
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"loggedIn": true,
		"username": user.Username,
		"user_id":  user.ID,
	})
}
