package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/brightpaws/petcrm/internal/session"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	session *session.Session
}

// NewHandlers creates a new Handlers instance
func NewHandlers(sess *session.Session) *Handlers {
	return &Handlers{session: sess}
}

// HealthCheck reports liveness and session identity
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"session_id": h.session.ID,
		"started_at": h.session.CreatedAt.Format(time.RFC3339),
		"customers":  h.session.Data.Count(),
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
