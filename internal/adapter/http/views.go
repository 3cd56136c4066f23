package httpadapter

import (
	"time"

	"lcatv-backend/internal/core/domain"
)

// JSON views of the domain records. Field names follow the wire format the
// dashboard and mobile app already consume.

type clientJSON struct {
	ID            string     `json:"id"`
	CompanyName   string     `json:"company_name"`
	ContactPerson string     `json:"contact_person"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Address       *string    `json:"address"`
	IsActive      bool       `json:"is_active"`
	TotalSpent    float64    `json:"total_spent"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

func toClientJSON(c domain.Client) clientJSON {
	return clientJSON{
		ID:            c.ID,
		CompanyName:   c.CompanyName,
		ContactPerson: c.ContactPerson,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		IsActive:      c.IsActive,
		TotalSpent:    c.TotalSpent,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

type adSpaceJSON struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Position      string            `json:"position"`
	Dimensions    domain.Dimensions `json:"dimensions"`
	PricePerDay   float64           `json:"price_per_day"`
	PricePerWeek  float64           `json:"price_per_week"`
	PricePerMonth float64           `json:"price_per_month"`
	IsActive      bool              `json:"is_active"`
	CreatedAt     time.Time         `json:"created_at"`
}

func toAdSpaceJSON(s domain.AdSpace) adSpaceJSON {
	return adSpaceJSON{
		ID:            s.ID,
		Name:          s.Name,
		Position:      s.Position,
		Dimensions:    s.Dimensions,
		PricePerDay:   s.PricePerDay,
		PricePerWeek:  s.PricePerWeek,
		PricePerMonth: s.PricePerMonth,
		IsActive:      s.IsActive,
		CreatedAt:     s.CreatedAt,
	}
}

type orderJSON struct {
	ID            string     `json:"id"`
	ClientID      string     `json:"client_id"`
	AdSpaceID     string     `json:"ad_space_id"`
	ContentType   string     `json:"content_type"`
	ContentURL    *string    `json:"content_url"`
	ContentHTML   *string    `json:"content_html"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       time.Time  `json:"end_date"`
	DurationDays  int        `json:"duration_days"`
	TotalAmount   float64    `json:"total_amount"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"payment_status"`
	PaymentDate   *time.Time `json:"payment_date,omitempty"`
	Impressions   int64      `json:"impressions"`
	Clicks        int64      `json:"clicks"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

func toOrderJSON(o domain.Order) orderJSON {
	return orderJSON{
		ID:            o.ID,
		ClientID:      o.ClientID,
		AdSpaceID:     o.AdSpaceID,
		ContentType:   o.ContentType,
		ContentURL:    o.ContentURL,
		ContentHTML:   o.ContentHTML,
		StartDate:     o.StartDate,
		EndDate:       o.EndDate,
		DurationDays:  o.DurationDays,
		TotalAmount:   o.TotalAmount,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		PaymentDate:   o.PaymentDate,
		Impressions:   o.Impressions,
		Clicks:        o.Clicks,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

type newsJSON struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Priority  string    `json:"priority"`
	Source    string    `json:"source"`
	Category  string    `json:"category"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func toNewsJSON(n domain.BreakingNews) newsJSON {
	return newsJSON{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Priority:  n.Priority,
		Source:    n.Source,
		Category:  n.Category,
		IsActive:  n.IsActive,
		CreatedAt: n.CreatedAt,
	}
}

type commentJSON struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"video_id"`
	Content   string    `json:"content"`
	UserName  string    `json:"user_name"`
	Likes     int64     `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}

func toCommentJSON(c domain.Comment) commentJSON {
	return commentJSON{
		ID:        c.ID,
		VideoID:   c.VideoID,
		Content:   c.Content,
		UserName:  c.UserName,
		Likes:     c.Likes,
		CreatedAt: c.CreatedAt,
	}
}
