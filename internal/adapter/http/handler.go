package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"lcatv-backend/internal/core/port"
)

// Pinger reports storage connectivity for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the inbound HTTP adapter. It holds the usecases behind their
// ports, a structured logger and a shared payload validator, and registers
// every route on a chi.Router.
type Handler struct {
	catalog   port.CatalogUseCase
	orders    port.OrderUseCase
	placement port.PlacementUseCase
	analytics port.AnalyticsUseCase
	news      port.NewsUseCase
	comments  port.CommentUseCase
	store     Pinger

	logger   *slog.Logger
	validate *validator.Validate
	router   chi.Router
}

// Deps bundles the handler's dependencies.
type Deps struct {
	Catalog   port.CatalogUseCase
	Orders    port.OrderUseCase
	Placement port.PlacementUseCase
	Analytics port.AnalyticsUseCase
	News      port.NewsUseCase
	Comments  port.CommentUseCase
	Store     Pinger
	Logger    *slog.Logger
}

// NewHandler creates a handler with all routes configured.
func NewHandler(d Deps) *Handler {
	h := &Handler{
		catalog:   d.Catalog,
		orders:    d.Orders,
		placement: d.Placement,
		analytics: d.Analytics,
		news:      d.News,
		comments:  d.Comments,
		store:     d.Store,
		logger:    d.Logger,
		validate:  validator.New(),
	}

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.handleHealth)

		r.Route("/admin", func(r chi.Router) {
			r.Route("/clients", func(r chi.Router) {
				r.Post("/", h.handleCreateClient)
				r.Get("/", h.handleListClients)
				r.Get("/{id}", h.handleGetClient)
				r.Put("/{id}", h.handleUpdateClient)
				r.Delete("/{id}", h.handleDeleteClient)
			})
			r.Route("/ad-spaces", func(r chi.Router) {
				r.Post("/", h.handleCreateAdSpace)
				r.Get("/", h.handleListAdSpaces)
			})
			r.Route("/ad-orders", func(r chi.Router) {
				r.Post("/", h.handleCreateOrder)
				r.Get("/", h.handleListOrders)
				r.Put("/{id}/status", h.handleUpdateOrderStatus)
			})
			r.Get("/dashboard/stats", h.handleDashboardStats)
			r.Get("/analytics/revenue", h.handleRevenueAnalytics)
			r.Get("/analytics/performance", h.handlePerformanceAnalytics)
		})

		r.Route("/public/ads", func(r chi.Router) {
			r.Get("/{position}", h.handleAdsForPosition)
			r.Post("/{id}/click", h.handleAdClick)
		})

		r.Get("/breaking-news", h.handleListNews)
		r.Post("/breaking-news", h.handleCreateNews)

		r.Post("/videos/{videoID}/comments", h.handleAddComment)
		r.Get("/videos/{videoID}/comments", h.handleListComments)
		r.Put("/comments/{id}/like", h.handleLikeComment)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
