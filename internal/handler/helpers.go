package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"tulika/internal/domain"
	"tulika/internal/httputil"
)

// action returns the multiplexed action name, checking the query string
// first and the form body second, like the original API did.
func action(r *http.Request) string {
	if a := r.URL.Query().Get("action"); a != "" {
		return a
	}
	return r.PostFormValue("action")
}

// parseID parses a transport id. An absent id is 0, which matches no row
// and so falls through to the silent no-op path of mutations.
func parseID(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &domain.ValidationError{Message: "invalid id"}
	}
	return id, nil
}

// parseParentID normalizes the many transport spellings of "no parent"
// ("", "0", "null", absent) to nil so everything past the boundary deals
// in a single canonical root marker.
func parseParentID(raw string) (*int64, error) {
	if raw == "" || raw == "0" || raw == "null" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, &domain.ValidationError{Message: "invalid parent_id"}
	}
	if id == 0 {
		return nil, nil
	}
	return &id, nil
}

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, "User not authenticated.")
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// Health is a simple health check endpoint
func Health(w http.ResponseWriter, _ *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now(),
	})
}
