package domain

import "time"

// Known ad space positions on the public site. Positions are stored as
// plain strings; these constants cover the placements the frontend renders.
const (
	PositionHeader  = "header"
	PositionSidebar = "sidebar"
	PositionFooter  = "footer"
	PositionBanner  = "banner"
	PositionPopup   = "popup"
	PositionVideo   = "video"
)

// Dimensions describes the pixel size of an ad space.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// AdSpace is a bookable placement with three price tiers. Prices are read
// once at order creation; editing them does not touch existing orders.
type AdSpace struct {
	ID            string
	Name          string
	Position      string
	Dimensions    Dimensions
	PricePerDay   float64
	PricePerWeek  float64
	PricePerMonth float64
	IsActive      bool
	CreatedAt     time.Time
}
