package port

import (
	"context"
	"time"

	"lcatv-backend/internal/core/domain"
)

// CatalogUseCase exposes client and ad space management to the dashboard.
type CatalogUseCase interface {
	CreateClient(ctx context.Context, c domain.Client) (domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	UpdateClient(ctx context.Context, id string, c domain.Client) (*domain.Client, error)
	DeleteClient(ctx context.Context, id string) error

	CreateAdSpace(ctx context.Context, s domain.AdSpace) (domain.AdSpace, error)
	ListAdSpaces(ctx context.Context) ([]domain.AdSpace, error)
}

// OrderUseCase exposes the order lifecycle: creation with derived pricing
// and invoice, listing, and status updates.
type OrderUseCase interface {
	// CreateOrder prices the requested window against the ad space's
	// tiers, persists the order together with its invoice and returns the
	// created order. A missing ad space yields ErrNotFound before any
	// write happens.
	CreateOrder(ctx context.Context, req CreateOrderReq) (domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	// UpdateStatus applies the given status fields verbatim. Updating to
	// the current value is a no-op, not an error.
	UpdateStatus(ctx context.Context, orderID string, status, paymentStatus *string) error
}

// CreateOrderReq is the input for booking an ad run. Exactly one of
// ContentURL and ContentHTML is normally set depending on ContentType,
// but that pairing is not cross-validated.
type CreateOrderReq struct {
	ClientID    string
	AdSpaceID   string
	ContentType string
	ContentURL  *string
	ContentHTML *string
	StartDate   time.Time
	EndDate     time.Time
}

// PlacementUseCase is the public ad-serving surface.
type PlacementUseCase interface {
	// AdsForPosition returns the creatives currently eligible for the
	// position and increments each returned order's impression counter by
	// exactly one, every call. Repeated polling inflates impressions;
	// that is the contract. An empty result is not an error.
	AdsForPosition(ctx context.Context, position string) ([]PlacementAd, error)
	// RecordClick increments the order's click counter by one. Clicks are
	// not bounded by prior impressions.
	RecordClick(ctx context.Context, orderID string) error
}

// PlacementAd is one creative selected for display.
type PlacementAd struct {
	OrderID     string         `json:"id"`
	ContentType string         `json:"content_type"`
	ContentURL  *string        `json:"content_url"`
	ContentHTML *string        `json:"content_html"`
	AdSpace     PlacementSpace `json:"ad_space"`
}

// PlacementSpace is the descriptive subset of an ad space sent alongside
// a served creative.
type PlacementSpace struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Position   string            `json:"position"`
	Dimensions domain.Dimensions `json:"dimensions"`
}

// AnalyticsUseCase derives read-only dashboard views.
type AnalyticsUseCase interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	RevenueReport(ctx context.Context) (*RevenueReport, error)
	PerformanceReport(ctx context.Context) (*PerformanceReport, error)
}

// MonthRevenue is one 30-day revenue bucket.
type MonthRevenue struct {
	Month       string  `json:"month"`
	Revenue     float64 `json:"revenue"`
	OrdersCount int64   `json:"orders_count"`
}

// RevenueReport covers the trailing twelve 30-day buckets, oldest first.
type RevenueReport struct {
	MonthlyRevenue        []MonthRevenue `json:"monthly_revenue"`
	TotalRevenue          float64        `json:"total_revenue"`
	AverageMonthlyRevenue float64        `json:"average_monthly_revenue"`
	GrowthRate            float64        `json:"growth_rate"`
}

// OrderPerformance is one order's display-ready performance line. CTR is
// clicks/impressions*100 rounded to two decimals, zero when there are no
// impressions.
type OrderPerformance struct {
	OrderID     string  `json:"order_id"`
	ClientName  string  `json:"client_name"`
	AdSpaceName string  `json:"ad_space_name"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CTR         float64 `json:"ctr"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
}

// PerformanceReport aggregates per-order performance for active and
// completed orders.
type PerformanceReport struct {
	PerformanceData  []OrderPerformance `json:"performance_data"`
	TotalImpressions int64              `json:"total_impressions"`
	TotalClicks      int64              `json:"total_clicks"`
	AverageCTR       float64            `json:"average_ctr"`
}

// NewsUseCase manages breaking news ticker items.
type NewsUseCase interface {
	CreateNews(ctx context.Context, n domain.BreakingNews) (domain.BreakingNews, error)
	ActiveNews(ctx context.Context) ([]domain.BreakingNews, error)
}

// CommentUseCase manages video comments.
type CommentUseCase interface {
	AddComment(ctx context.Context, c domain.Comment) (domain.Comment, error)
	ListComments(ctx context.Context, videoID string, limit int) ([]domain.Comment, error)
	LikeComment(ctx context.Context, commentID string) (int64, error)
}
