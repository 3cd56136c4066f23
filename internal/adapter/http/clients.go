package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"lcatv-backend/internal/core/domain"
)

type clientRequest struct {
	CompanyName   string  `json:"company_name" validate:"required"`
	ContactPerson string  `json:"contact_person" validate:"required"`
	Email         string  `json:"email" validate:"required,email"`
	Phone         string  `json:"phone" validate:"required"`
	Address       *string `json:"address"`
}

func (req clientRequest) toDomain() domain.Client {
	return domain.Client{
		CompanyName:   req.CompanyName,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
	}
}

func (h *Handler) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	created, err := h.catalog.CreateClient(r.Context(), req.toDomain())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toClientJSON(created))
}

func (h *Handler) handleListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.catalog.ListClients(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	out := make([]clientJSON, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientJSON(c))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleGetClient(w http.ResponseWriter, r *http.Request) {
	c, err := h.catalog.GetClient(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toClientJSON(*c))
}

func (h *Handler) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	updated, err := h.catalog.UpdateClient(r.Context(), chi.URLParam(r, "id"), req.toDomain())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toClientJSON(*updated))
}

func (h *Handler) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteClient(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Client deleted successfully"})
}
