package domain

import "time"

// Breaking news priorities used by the ticker on the public site.
const (
	NewsPriorityUrgent    = "urgent"
	NewsPriorityImportant = "important"
	NewsPriorityNormal    = "normal"
)

// BreakingNews is a ticker item shown on the public site and mobile app.
type BreakingNews struct {
	ID        string
	Title     string
	Content   string
	Priority  string
	Source    string
	Category  string
	IsActive  bool
	CreatedAt time.Time
}
