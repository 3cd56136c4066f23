package domain

import "time"

// Order statuses. Status updates accept any non-empty value verbatim, so
// these constants enumerate the values the dashboard uses rather than a
// closed set enforced by the backend. There is deliberately no transition
// graph.
const (
	OrderStatusPending   = "pending"
	OrderStatusActive    = "active"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Payment statuses, same convention as order statuses.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusOverdue = "overdue"
)

// Content types carried by an order.
const (
	ContentTypeImage = "image"
	ContentTypeVideo = "video"
	ContentTypeHTML  = "html"
)

// Order is a booked run of creative content in one ad space for a date
// range. TotalAmount is priced once at creation from the ad space's tiers
// and never recomputed. Impressions and Clicks are monotonic counters
// incremented atomically at the storage layer.
type Order struct {
	ID            string
	ClientID      string
	AdSpaceID     string
	ContentType   string
	ContentURL    *string
	ContentHTML   *string
	StartDate     time.Time
	EndDate       time.Time
	DurationDays  int
	TotalAmount   float64
	Status        string
	PaymentStatus string
	PaymentDate   *time.Time
	Impressions   int64
	Clicks        int64
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
