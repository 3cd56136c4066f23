package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"lcatv-backend/internal/core/port"
)

// handleAdsForPosition serves the creatives currently active at a display
// position. Selecting them records one impression per returned order; an
// empty list is a normal response, not an error.
func (h *Handler) handleAdsForPosition(w http.ResponseWriter, r *http.Request) {
	ads, err := h.placement.AdsForPosition(r.Context(), chi.URLParam(r, "position"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	if ads == nil {
		ads = []port.PlacementAd{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"ads": ads})
}

// handleAdClick records one click against an order. Unknown orders answer
// 404, malformed ids 400.
func (h *Handler) handleAdClick(w http.ResponseWriter, r *http.Request) {
	if err := h.placement.RecordClick(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Click recorded"})
}
