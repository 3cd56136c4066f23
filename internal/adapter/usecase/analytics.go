package usecase

import (
	"context"
	"math"
	"time"

	"lcatv-backend/internal/core/port"
)

const revenueMonths = 12

// AnalyticsService implements port.AnalyticsUseCase, the read-only
// dashboard views derived from stored orders.
type AnalyticsService struct {
	repo port.AnalyticsRepository
	now  func() time.Time
}

// NewAnalyticsService creates the analytics service.
func NewAnalyticsService(repo port.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo, now: time.Now}
}

// DashboardStats returns the dashboard headline numbers. Monthly revenue
// counts paid orders created since the first day of the current calendar
// month.
func (s *AnalyticsService) DashboardStats(ctx context.Context) (*port.DashboardStats, error) {
	now := s.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	stats, err := s.repo.DashboardCounts(ctx, monthStart)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// RevenueReport sums paid orders over twelve 30-day buckets walked
// backward from the first day of the current month, oldest first. The
// buckets are an approximation of calendar months and drift accordingly;
// that matches the dashboard's historical behaviour. The growth rate
// compares the two most recent buckets.
func (s *AnalyticsService) RevenueReport(ctx context.Context) (*port.RevenueReport, error) {
	now := s.now().UTC()
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	report := &port.RevenueReport{
		MonthlyRevenue: make([]port.MonthRevenue, 0, revenueMonths),
	}
	for i := revenueMonths - 1; i >= 0; i-- {
		start := anchor.AddDate(0, 0, -30*i)
		end := start.AddDate(0, 0, 30)
		revenue, count, err := s.repo.RevenueInWindow(ctx, start, end)
		if err != nil {
			return nil, err
		}
		report.MonthlyRevenue = append(report.MonthlyRevenue, port.MonthRevenue{
			Month:       start.Format("January 2006"),
			Revenue:     revenue,
			OrdersCount: count,
		})
		report.TotalRevenue += revenue
	}
	report.AverageMonthlyRevenue = report.TotalRevenue / revenueMonths

	last := report.MonthlyRevenue[revenueMonths-1].Revenue
	prev := report.MonthlyRevenue[revenueMonths-2].Revenue
	if prev > 0 {
		report.GrowthRate = round2((last - prev) / prev * 100)
	}
	return report, nil
}

// PerformanceReport lists active and completed orders with their CTR.
// CTR is display-only: rounded to two decimals here, never persisted.
func (s *AnalyticsService) PerformanceReport(ctx context.Context) (*port.PerformanceReport, error) {
	rows, err := s.repo.PerformanceRows(ctx)
	if err != nil {
		return nil, err
	}

	report := &port.PerformanceReport{
		PerformanceData: make([]port.OrderPerformance, 0, len(rows)),
	}
	var ctrSum float64
	for _, row := range rows {
		var ctr float64
		if row.Impressions > 0 {
			ctr = round2(float64(row.Clicks) / float64(row.Impressions) * 100)
		}
		ctrSum += ctr
		report.TotalImpressions += row.Impressions
		report.TotalClicks += row.Clicks
		report.PerformanceData = append(report.PerformanceData, port.OrderPerformance{
			OrderID:     row.OrderID,
			ClientName:  row.ClientName,
			AdSpaceName: row.AdSpaceName,
			Impressions: row.Impressions,
			Clicks:      row.Clicks,
			CTR:         ctr,
			Amount:      row.Amount,
			Status:      row.Status,
		})
	}
	if len(rows) > 0 {
		report.AverageCTR = ctrSum / float64(len(rows))
	}
	return report, nil
}

// round2 rounds x to 2 decimal places.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
