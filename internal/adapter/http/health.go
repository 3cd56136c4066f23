package httpadapter

import (
	"net/http"
	"time"
)

// handleHealth reports service and storage status.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	overall, database := "healthy", "connected"
	if err := h.store.Ping(r.Context()); err != nil {
		status = http.StatusServiceUnavailable
		overall, database = "unhealthy", "disconnected"
	}
	h.writeJSON(w, status, map[string]any{
		"status":    overall,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"services":  map[string]string{"database": database},
	})
}
