package domain

import "time"

// Client is an advertiser account managed from the sales dashboard.
// TotalSpent accumulates the total_amount of its orders as they are paid.
type Client struct {
	ID            string
	CompanyName   string
	ContactPerson string
	Email         string
	Phone         string
	Address       *string
	IsActive      bool
	TotalSpent    float64
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
