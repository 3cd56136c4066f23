package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lcatv-backend/internal/core/domain"
	"lcatv-backend/internal/core/port"
)

func newPlacementFixture(now time.Time) (*PlacementService, *fakePlacement) {
	repo := newFakePlacement()
	svc := NewPlacementService(repo)
	svc.now = func() time.Time { return now }
	return svc, repo
}

func addOrder(repo *fakePlacement, position, status string, start, end time.Time) string {
	spaceID := uuid.NewString()
	repo.spaces[spaceID] = domain.AdSpace{
		ID:       spaceID,
		Name:     position + " space",
		Position: position,
	}
	orderID := uuid.NewString()
	url := "https://example.com/creative.png"
	repo.orders[orderID] = &domain.Order{
		ID:          orderID,
		AdSpaceID:   spaceID,
		ContentType: domain.ContentTypeImage,
		ContentURL:  &url,
		Status:      status,
		StartDate:   start,
		EndDate:     end,
	}
	return orderID
}

func TestAdsForPositionIncrementsPerCall(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc, repo := newPlacementFixture(now)
	orderID := addOrder(repo, domain.PositionHeader, domain.OrderStatusActive,
		now.AddDate(0, 0, -1), now.AddDate(0, 0, 10))

	// N calls record exactly N impressions; polling is not deduplicated
	const n = 5
	for i := 0; i < n; i++ {
		ads, err := svc.AdsForPosition(context.Background(), domain.PositionHeader)
		require.NoError(t, err)
		require.Len(t, ads, 1)
		assert.Equal(t, orderID, ads[0].OrderID)
	}
	assert.Equal(t, int64(n), repo.orders[orderID].Impressions)
}

func TestAdsForPositionPendingOrderInvisible(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc, repo := newPlacementFixture(now)
	orderID := addOrder(repo, domain.PositionHeader, domain.OrderStatusPending,
		now.AddDate(0, 0, -1), now.AddDate(0, 0, 10))

	ads, err := svc.AdsForPosition(context.Background(), domain.PositionHeader)
	require.NoError(t, err)
	assert.Empty(t, ads)
	// no impression is recorded for an order that was not served
	assert.Zero(t, repo.orders[orderID].Impressions)
}

func TestAdsForPositionOutsideDateRange(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc, repo := newPlacementFixture(now)
	addOrder(repo, domain.PositionHeader, domain.OrderStatusActive,
		now.AddDate(0, 0, 1), now.AddDate(0, 0, 10))

	ads, err := svc.AdsForPosition(context.Background(), domain.PositionHeader)
	require.NoError(t, err)
	assert.Empty(t, ads)
}

func TestAdsForPositionWrongPosition(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc, repo := newPlacementFixture(now)
	addOrder(repo, domain.PositionSidebar, domain.OrderStatusActive,
		now.AddDate(0, 0, -1), now.AddDate(0, 0, 10))

	ads, err := svc.AdsForPosition(context.Background(), domain.PositionHeader)
	require.NoError(t, err)
	assert.Empty(t, ads)
}

func TestRecordClickUnbounded(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc, repo := newPlacementFixture(now)
	orderID := addOrder(repo, domain.PositionHeader, domain.OrderStatusActive,
		now.AddDate(0, 0, -1), now.AddDate(0, 0, 10))

	// clicks accumulate with no impression prerequisite and no upper bound
	const n = 7
	for i := 0; i < n; i++ {
		require.NoError(t, svc.RecordClick(context.Background(), orderID))
	}
	assert.Equal(t, int64(n), repo.orders[orderID].Clicks)
	assert.Zero(t, repo.orders[orderID].Impressions)
}

func TestRecordClickUnknownOrder(t *testing.T) {
	svc, _ := newPlacementFixture(time.Now())
	err := svc.RecordClick(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, port.ErrNotFound)
}
