package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"

	"lcatv-backend/internal/core/port"
)

// ActiveOrdersForPosition returns active orders whose run covers now and
// whose ad space currently sits at the requested position. The join is
// evaluated here at query time on purpose: reassigning an ad space to a
// different position immediately changes which orders match.
func (r *SalesRepository) ActiveOrdersForPosition(ctx context.Context, position string, now time.Time) ([]port.PlacementCandidate, error) {
	rows, err := r.pool.Query(ctx, `SELECT
		o.id::text, o.client_id::text, o.ad_space_id::text, o.content_type,
		o.content_url, o.content_html, o.start_date, o.end_date, o.duration_days,
		o.total_amount, o.status, o.payment_status, o.payment_date,
		o.impressions, o.clicks, o.created_at, o.updated_at,
		s.id::text, s.name, s.position, s.dimensions, s.price_per_day,
		s.price_per_week, s.price_per_month, s.is_active, s.created_at
		FROM ad_orders o
		JOIN ad_spaces s ON s.id = o.ad_space_id
		WHERE o.status = 'active'
		  AND o.start_date <= $2
		  AND o.end_date >= $2
		  AND s.position = $1`, position, now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.PlacementCandidate, error) {
		var (
			c       port.PlacementCandidate
			dimsRaw []byte
		)
		err := row.Scan(
			&c.Order.ID,
			&c.Order.ClientID,
			&c.Order.AdSpaceID,
			&c.Order.ContentType,
			&c.Order.ContentURL,
			&c.Order.ContentHTML,
			&c.Order.StartDate,
			&c.Order.EndDate,
			&c.Order.DurationDays,
			&c.Order.TotalAmount,
			&c.Order.Status,
			&c.Order.PaymentStatus,
			&c.Order.PaymentDate,
			&c.Order.Impressions,
			&c.Order.Clicks,
			&c.Order.CreatedAt,
			&c.Order.UpdatedAt,
			&c.AdSpace.ID,
			&c.AdSpace.Name,
			&c.AdSpace.Position,
			&dimsRaw,
			&c.AdSpace.PricePerDay,
			&c.AdSpace.PricePerWeek,
			&c.AdSpace.PricePerMonth,
			&c.AdSpace.IsActive,
			&c.AdSpace.CreatedAt,
		)
		if err != nil {
			return c, err
		}
		if err = json.Unmarshal(dimsRaw, &c.AdSpace.Dimensions); err != nil {
			return c, err
		}
		return c, nil
	})
}

// IncrementImpressions adds one impression to each given order in a single
// atomic statement. Counters are never updated read-modify-write in
// application code.
func (r *SalesRepository) IncrementImpressions(ctx context.Context, orderIDs []string) error {
	if len(orderIDs) == 0 {
		return nil
	}
	_, err := r.pool.Exec(ctx,
		`UPDATE ad_orders SET impressions = impressions + 1 WHERE id = ANY($1::uuid[])`,
		orderIDs)
	return err
}

// IncrementClicks adds one click to the given order atomically.
func (r *SalesRepository) IncrementClicks(ctx context.Context, orderID string) error {
	id, err := parseID(orderID)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE ad_orders SET clicks = clicks + 1 WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}
