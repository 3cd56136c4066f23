package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"lcatv-backend/internal/core/port"
)

type orderRequest struct {
	ClientID    string    `json:"client_id" validate:"required"`
	AdSpaceID   string    `json:"ad_space_id" validate:"required"`
	ContentType string    `json:"content_type" validate:"required"`
	ContentURL  *string   `json:"content_url"`
	ContentHTML *string   `json:"content_html"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required"`
}

type orderStatusRequest struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"payment_status"`
}

func (h *Handler) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	order, err := h.orders.CreateOrder(r.Context(), port.CreateOrderReq{
		ClientID:    req.ClientID,
		AdSpaceID:   req.AdSpaceID,
		ContentType: req.ContentType,
		ContentURL:  req.ContentURL,
		ContentHTML: req.ContentHTML,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toOrderJSON(order))
}

func (h *Handler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListOrders(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	out := make([]orderJSON, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderJSON(o))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req orderStatusRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	// empty strings count as absent, matching the dashboard's payloads
	if req.Status != nil && *req.Status == "" {
		req.Status = nil
	}
	if req.PaymentStatus != nil && *req.PaymentStatus == "" {
		req.PaymentStatus = nil
	}
	err := h.orders.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status, req.PaymentStatus)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Order status updated successfully"})
}
