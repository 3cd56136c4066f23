package httpadapter

import "net/http"

func (h *Handler) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analytics.DashboardStats(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) handleRevenueAnalytics(w http.ResponseWriter, r *http.Request) {
	report, err := h.analytics.RevenueReport(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

func (h *Handler) handlePerformanceAnalytics(w http.ResponseWriter, r *http.Request) {
	report, err := h.analytics.PerformanceReport(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}
