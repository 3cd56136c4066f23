package httpadapter

import (
	"net/http"

	"lcatv-backend/internal/core/domain"
)

type newsRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Priority string `json:"priority" validate:"required"`
	Source   string `json:"source" validate:"required"`
	Category string `json:"category" validate:"required"`
}

func (h *Handler) handleCreateNews(w http.ResponseWriter, r *http.Request) {
	var req newsRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	created, err := h.news.CreateNews(r.Context(), domain.BreakingNews{
		Title:    req.Title,
		Content:  req.Content,
		Priority: req.Priority,
		Source:   req.Source,
		Category: req.Category,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toNewsJSON(created))
}

func (h *Handler) handleListNews(w http.ResponseWriter, r *http.Request) {
	items, err := h.news.ActiveNews(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	out := make([]newsJSON, 0, len(items))
	for _, n := range items {
		out = append(out, toNewsJSON(n))
	}
	h.writeJSON(w, http.StatusOK, out)
}
