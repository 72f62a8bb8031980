package httputil

import (
	"encoding/json"
	"net/http"
)

// RespondJSON writes a JSON response with the given status code.
// It marshals first so an encoding failure cannot leave a partial body
// behind already-sent headers.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		RespondError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// RespondError writes a JSON error body of the form {"error": detail}.
func RespondError(w http.ResponseWriter, status int, detail string) {
	payload, err := json.Marshal(map[string]string{"error": detail})
	if err != nil {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// RespondFailure writes the soft-failure body the action protocol uses:
// HTTP 200 with {"success": false, "message": ...}. Validation problems
// are reported this way rather than with an error status.
func RespondFailure(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": false,
		"message": message,
	})
}
