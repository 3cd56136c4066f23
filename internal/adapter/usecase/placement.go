package usecase

import (
	"context"
	"time"

	"lcatv-backend/internal/core/port"
)

// PlacementService implements port.PlacementUseCase, the public ad-serving
// surface.
type PlacementService struct {
	repo port.PlacementRepository
	now  func() time.Time
}

// NewPlacementService creates the placement service.
func NewPlacementService(repo port.PlacementRepository) *PlacementService {
	return &PlacementService{repo: repo, now: time.Now}
}

// AdsForPosition returns the creatives eligible for the position right now
// and increments each returned order's impression counter by exactly one.
// The increment happens once per call, not per unique viewer; repeated
// polling inflates the counter and that is the contract.
func (s *PlacementService) AdsForPosition(ctx context.Context, position string) ([]port.PlacementAd, error) {
	candidates, err := s.repo.ActiveOrdersForPosition(ctx, position, s.now().UTC())
	if err != nil {
		return nil, err
	}

	ads := make([]port.PlacementAd, 0, len(candidates))
	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.Order.ID)
		ads = append(ads, port.PlacementAd{
			OrderID:     c.Order.ID,
			ContentType: c.Order.ContentType,
			ContentURL:  c.Order.ContentURL,
			ContentHTML: c.Order.ContentHTML,
			AdSpace: port.PlacementSpace{
				ID:         c.AdSpace.ID,
				Name:       c.AdSpace.Name,
				Position:   c.AdSpace.Position,
				Dimensions: c.AdSpace.Dimensions,
			},
		})
	}

	if err = s.repo.IncrementImpressions(ctx, ids); err != nil {
		return nil, err
	}
	return ads, nil
}

// RecordClick increments the order's click counter by one. There is no
// idempotency key and no check against prior impressions.
func (s *PlacementService) RecordClick(ctx context.Context, orderID string) error {
	return s.repo.IncrementClicks(ctx, orderID)
}
