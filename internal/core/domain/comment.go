package domain

import "time"

// AnonymousUserName is used when a commenter does not give a name.
const AnonymousUserName = "Utilisateur Anonyme"

// Comment is a viewer comment on a video. VideoID is the platform video
// identifier and is treated as an opaque string. Likes is a monotonic
// counter incremented atomically at the storage layer.
type Comment struct {
	ID        string
	VideoID   string
	Content   string
	UserName  string
	UserEmail *string
	Likes     int64
	IsActive  bool
	CreatedAt time.Time
}
