package httpadapter

import (
	"net/http"

	"lcatv-backend/internal/core/domain"
)

type adSpaceRequest struct {
	Name          string            `json:"name" validate:"required"`
	Position      string            `json:"position" validate:"required"`
	Dimensions    domain.Dimensions `json:"dimensions"`
	PricePerDay   float64           `json:"price_per_day" validate:"required,gt=0"`
	PricePerWeek  float64           `json:"price_per_week" validate:"required,gt=0"`
	PricePerMonth float64           `json:"price_per_month" validate:"required,gt=0"`
}

func (h *Handler) handleCreateAdSpace(w http.ResponseWriter, r *http.Request) {
	var req adSpaceRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	created, err := h.catalog.CreateAdSpace(r.Context(), domain.AdSpace{
		Name:          req.Name,
		Position:      req.Position,
		Dimensions:    req.Dimensions,
		PricePerDay:   req.PricePerDay,
		PricePerWeek:  req.PricePerWeek,
		PricePerMonth: req.PricePerMonth,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toAdSpaceJSON(created))
}

func (h *Handler) handleListAdSpaces(w http.ResponseWriter, r *http.Request) {
	spaces, err := h.catalog.ListAdSpaces(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	out := make([]adSpaceJSON, 0, len(spaces))
	for _, s := range spaces {
		out = append(out, toAdSpaceJSON(s))
	}
	h.writeJSON(w, http.StatusOK, out)
}
