package rest

import (
	"net/http"

	"github.com/fortuna/hoops/internal/logging"
	"github.com/goccy/go-json"
)

const msgInternalError = "Internal server error"

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.Warn().Err(err).Msg("encoding response")
	}
}

// respondError writes {"error": message}. Internal details never reach the body.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
