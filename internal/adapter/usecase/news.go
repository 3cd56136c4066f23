package usecase

import (
	"context"
	"time"

	"lcatv-backend/internal/core/domain"
	"lcatv-backend/internal/core/port"
)

// activeNewsLimit caps the ticker feed on the public site.
const activeNewsLimit = 10

// NewsService implements port.NewsUseCase.
type NewsService struct {
	repo port.NewsRepository
	now  func() time.Time
}

// NewNewsService creates the breaking news service.
func NewNewsService(repo port.NewsRepository) *NewsService {
	return &NewsService{repo: repo, now: time.Now}
}

// CreateNews stores a new ticker item, active by default.
func (s *NewsService) CreateNews(ctx context.Context, n domain.BreakingNews) (domain.BreakingNews, error) {
	n.IsActive = true
	n.CreatedAt = s.now().UTC()
	return s.repo.CreateNews(ctx, n)
}

// ActiveNews returns the newest active items for the ticker.
func (s *NewsService) ActiveNews(ctx context.Context) ([]domain.BreakingNews, error) {
	return s.repo.ListActiveNews(ctx, activeNewsLimit)
}
