package middleware

import (
	"net/http"

	"tulika/internal/domain/services"
	"tulika/internal/httputil"
)

// SessionCookie is the name of the session cookie.
const SessionCookie = "tulika_session"

// RequireSession resolves the session cookie to a user and stores the user
// in the request context. Requests without a live session are rejected with
// 401 before reaching the note store.
func RequireSession(authService services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "User not authenticated.")
				return
			}

			user, err := authService.Identify(r.Context(), cookie.Value)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "User not authenticated.")
				return
			}

			next.ServeHTTP(w, httputil.WithUser(r, user))
		})
	}
}
