package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"lcatv-backend/internal/core/domain"
)

type commentRequest struct {
	Content   string  `json:"content" validate:"required"`
	UserName  string  `json:"user_name"`
	UserEmail *string `json:"user_email" validate:"omitempty,email"`
}

func (h *Handler) handleAddComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	created, err := h.comments.AddComment(r.Context(), domain.Comment{
		VideoID:   chi.URLParam(r, "videoID"),
		Content:   req.Content,
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Commentaire ajouté avec succès",
		"comment": toCommentJSON(created),
	})
}

func (h *Handler) handleListComments(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}
	comments, err := h.comments.ListComments(r.Context(), chi.URLParam(r, "videoID"), limit)
	if err != nil {
		h.respondError(w, err)
		return
	}
	out := make([]commentJSON, 0, len(comments))
	for _, c := range comments {
		out = append(out, toCommentJSON(c))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleLikeComment(w http.ResponseWriter, r *http.Request) {
	likes, err := h.comments.LikeComment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"message": "Like ajouté", "likes": likes})
}
