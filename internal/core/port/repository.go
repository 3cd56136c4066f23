package port

import (
	"context"
	"time"

	"lcatv-backend/internal/core/domain"
)

// CatalogRepository persists clients and ad spaces. It is an outbound port
// in hexagonal architecture; implementations translate missing rows into
// ErrNotFound and malformed identifiers into ErrInvalidID.
type CatalogRepository interface {
	CreateClient(ctx context.Context, c domain.Client) (domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	UpdateClient(ctx context.Context, id string, c domain.Client) (*domain.Client, error)
	// DeleteClient removes a client unconditionally. Orders referencing the
	// client are left in place; there is no cascade check.
	DeleteClient(ctx context.Context, id string) error

	CreateAdSpace(ctx context.Context, s domain.AdSpace) (domain.AdSpace, error)
	ListAdSpaces(ctx context.Context) ([]domain.AdSpace, error)
	GetAdSpace(ctx context.Context, id string) (*domain.AdSpace, error)
}

// OrderRepository persists orders and their derived invoices.
type OrderRepository interface {
	// CreateOrderWithInvoice writes the order and its invoice in a single
	// transaction; either both rows exist afterwards or neither does.
	CreateOrderWithInvoice(ctx context.Context, order domain.Order, invoice domain.Invoice) error
	ListOrders(ctx context.Context) ([]domain.Order, error)
	// UpdateOrderStatus applies the requested status fields. When the
	// payment status transitions to paid it stamps the payment date and
	// credits the order amount to the client's total_spent, atomically.
	UpdateOrderStatus(ctx context.Context, req UpdateOrderStatusReq) error
}

// UpdateOrderStatusReq carries a partial status update for an order. Nil
// fields are left untouched. Values are accepted verbatim; there is no
// transition graph.
type UpdateOrderStatusReq struct {
	OrderID       string
	Status        *string
	PaymentStatus *string
	Now           time.Time
}

// PlacementRepository serves the public ad-display surface.
type PlacementRepository interface {
	// ActiveOrdersForPosition returns orders with status "active" whose
	// date range covers now and whose ad space currently sits at the
	// requested position. The order/ad-space join is evaluated at query
	// time, so reassigning an ad space to another position takes effect
	// immediately.
	ActiveOrdersForPosition(ctx context.Context, position string, now time.Time) ([]PlacementCandidate, error)
	// IncrementImpressions adds 1 to the impression counter of each given
	// order with a single atomic update.
	IncrementImpressions(ctx context.Context, orderIDs []string) error
	// IncrementClicks adds 1 to the click counter of the given order.
	IncrementClicks(ctx context.Context, orderID string) error
}

// PlacementCandidate pairs an eligible order with its ad space as joined
// at selection time.
type PlacementCandidate struct {
	Order   domain.Order
	AdSpace domain.AdSpace
}

// AnalyticsRepository aggregates stored orders for the dashboard. All
// methods are read-only.
type AnalyticsRepository interface {
	// DashboardCounts gathers the dashboard headline numbers. monthStart
	// bounds the paid-revenue sum to orders created in the current
	// calendar month.
	DashboardCounts(ctx context.Context, monthStart time.Time) (DashboardStats, error)
	// RevenueInWindow sums total_amount and counts orders created in
	// [from, to) with payment status "paid".
	RevenueInWindow(ctx context.Context, from, to time.Time) (float64, int64, error)
	// PerformanceRows returns active and completed orders joined to their
	// client and ad space names.
	PerformanceRows(ctx context.Context) ([]PerformanceRow, error)
}

// DashboardStats is the headline summary shown on the dashboard.
type DashboardStats struct {
	TotalClients     int64   `json:"total_clients"`
	ActiveOrders     int64   `json:"active_orders"`
	MonthlyRevenue   float64 `json:"monthly_revenue"`
	TotalImpressions int64   `json:"total_impressions"`
	TotalClicks      int64   `json:"total_clicks"`
	PendingPayments  float64 `json:"pending_payments"`
}

// PerformanceRow is one order's raw performance data before CTR is
// derived. Missing clients or ad spaces surface as "Unknown" names rather
// than errors.
type PerformanceRow struct {
	OrderID     string
	ClientName  string
	AdSpaceName string
	Impressions int64
	Clicks      int64
	Amount      float64
	Status      string
}

// NewsRepository persists breaking news items.
type NewsRepository interface {
	CreateNews(ctx context.Context, n domain.BreakingNews) (domain.BreakingNews, error)
	// ListActiveNews returns active items, newest first, at most limit.
	ListActiveNews(ctx context.Context, limit int) ([]domain.BreakingNews, error)
}

// CommentRepository persists video comments.
type CommentRepository interface {
	CreateComment(ctx context.Context, c domain.Comment) (domain.Comment, error)
	// ListComments returns active comments for a video, newest first.
	ListComments(ctx context.Context, videoID string, limit int) ([]domain.Comment, error)
	// LikeComment adds 1 to the like counter atomically and returns the
	// new count.
	LikeComment(ctx context.Context, id string) (int64, error)
}
