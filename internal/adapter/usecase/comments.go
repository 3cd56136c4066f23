package usecase

import (
	"context"
	"time"

	"lcatv-backend/internal/core/domain"
	"lcatv-backend/internal/core/port"
)

// defaultCommentLimit bounds a comment listing when the caller gives no
// usable limit.
const defaultCommentLimit = 50

// CommentService implements port.CommentUseCase.
type CommentService struct {
	repo port.CommentRepository
	now  func() time.Time
}

// NewCommentService creates the comment service.
func NewCommentService(repo port.CommentRepository) *CommentService {
	return &CommentService{repo: repo, now: time.Now}
}

// AddComment stores a viewer comment. Anonymous comments get a default
// display name; likes start at zero.
func (s *CommentService) AddComment(ctx context.Context, c domain.Comment) (domain.Comment, error) {
	if c.UserName == "" {
		c.UserName = domain.AnonymousUserName
	}
	c.Likes = 0
	c.IsActive = true
	c.CreatedAt = s.now().UTC()
	return s.repo.CreateComment(ctx, c)
}

// ListComments returns active comments for a video, newest first.
func (s *CommentService) ListComments(ctx context.Context, videoID string, limit int) ([]domain.Comment, error) {
	if limit <= 0 {
		limit = defaultCommentLimit
	}
	return s.repo.ListComments(ctx, videoID, limit)
}

// LikeComment adds one like and returns the new count.
func (s *CommentService) LikeComment(ctx context.Context, commentID string) (int64, error) {
	return s.repo.LikeComment(ctx, commentID)
}
