package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"lcatv-backend/internal/core/port"
)

// DashboardCounts gathers the dashboard headline numbers. monthStart
// bounds the paid-revenue sum to orders created in the current calendar
// month.
func (r *SalesRepository) DashboardCounts(ctx context.Context, monthStart time.Time) (port.DashboardStats, error) {
	var stats port.DashboardStats

	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM clients`).Scan(&stats.TotalClients)
	if err != nil {
		return stats, err
	}

	err = r.pool.QueryRow(ctx, `SELECT count(*) FROM ad_orders WHERE status = 'active'`).
		Scan(&stats.ActiveOrders)
	if err != nil {
		return stats, err
	}

	err = r.pool.QueryRow(ctx, `SELECT COALESCE(sum(total_amount), 0) FROM ad_orders
		WHERE created_at >= $1 AND payment_status = 'paid'`, monthStart).
		Scan(&stats.MonthlyRevenue)
	if err != nil {
		return stats, err
	}

	err = r.pool.QueryRow(ctx, `SELECT COALESCE(sum(impressions), 0), COALESCE(sum(clicks), 0)
		FROM ad_orders`).
		Scan(&stats.TotalImpressions, &stats.TotalClicks)
	if err != nil {
		return stats, err
	}

	err = r.pool.QueryRow(ctx, `SELECT COALESCE(sum(total_amount), 0) FROM ad_orders
		WHERE payment_status = 'pending'`).
		Scan(&stats.PendingPayments)
	if err != nil {
		return stats, err
	}

	return stats, nil
}

// RevenueInWindow sums paid order amounts created in [from, to).
func (r *SalesRepository) RevenueInWindow(ctx context.Context, from, to time.Time) (float64, int64, error) {
	var (
		revenue float64
		count   int64
	)
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(sum(total_amount), 0), count(*)
		FROM ad_orders
		WHERE created_at >= $1 AND created_at < $2 AND payment_status = 'paid'`,
		from, to).Scan(&revenue, &count)
	if err != nil {
		return 0, 0, err
	}
	return revenue, count, nil
}

// PerformanceRows returns active and completed orders joined to client and
// ad space display names. Orders whose client or ad space was deleted keep
// showing up with an "Unknown" name.
func (r *SalesRepository) PerformanceRows(ctx context.Context) ([]port.PerformanceRow, error) {
	rows, err := r.pool.Query(ctx, `SELECT
		o.id::text,
		COALESCE(c.company_name, 'Unknown'),
		COALESCE(s.name, 'Unknown'),
		o.impressions, o.clicks, o.total_amount, o.status
		FROM ad_orders o
		LEFT JOIN clients c ON c.id = o.client_id
		LEFT JOIN ad_spaces s ON s.id = o.ad_space_id
		WHERE o.status IN ('active', 'completed')
		ORDER BY o.created_at`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.PerformanceRow, error) {
		var p port.PerformanceRow
		err := row.Scan(&p.OrderID, &p.ClientName, &p.AdSpaceName,
			&p.Impressions, &p.Clicks, &p.Amount, &p.Status)
		return p, err
	})
}
