package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"lcatv-backend/internal/core/domain"
)

// Seed inserts demo clients, ad spaces and orders for local development.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	positions := []string{domain.PositionHeader, domain.PositionSidebar, domain.PositionBanner}
	widths := []int{728, 300, 970}
	heights := []int{90, 250, 250}

	var clientIDs, spaceIDs []string
	for i := 1; i <= 3; i++ {
		id := uuid.NewString()
		_, err := db.Exec(ctx, `INSERT INTO clients
			(id, company_name, contact_person, email, phone, address, is_active, total_spent, created_at)
			VALUES ($1,$2,$3,$4,$5,$6,true,0,now()) ON CONFLICT DO NOTHING`,
			id, fmt.Sprintf("Demo Company %d", i), fmt.Sprintf("Contact %d", i),
			fmt.Sprintf("contact%d@example.com", i), fmt.Sprintf("+226 70 00 00 0%d", i),
			"Ouagadougou")
		if err != nil {
			return err
		}
		clientIDs = append(clientIDs, id)
	}

	for i, pos := range positions {
		id := uuid.NewString()
		dims := fmt.Sprintf(`{"width":%d,"height":%d}`, widths[i], heights[i])
		_, err := db.Exec(ctx, `INSERT INTO ad_spaces
			(id, name, position, dimensions, price_per_day, price_per_week, price_per_month, is_active, created_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,true,now()) ON CONFLICT DO NOTHING`,
			id, fmt.Sprintf("%s %dx%d", pos, widths[i], heights[i]), pos, dims,
			5000.0, 30000.0, 100000.0)
		if err != nil {
			return err
		}
		spaceIDs = append(spaceIDs, id)
	}

	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		orderID := uuid.NewString()
		clientID := clientIDs[r.Intn(len(clientIDs))]
		spaceID := spaceIDs[r.Intn(len(spaceIDs))]
		start := now.AddDate(0, 0, -1)
		end := now.AddDate(0, 0, 4+r.Intn(40))
		days := domain.DurationDays(start, end)
		amount := domain.PriceFor(domain.AdSpace{
			PricePerDay: 5000, PricePerWeek: 30000, PricePerMonth: 100000,
		}, days)
		url := fmt.Sprintf("https://example.com/creative/%d.png", i+1)
		_, err := db.Exec(ctx, `INSERT INTO ad_orders
			(id, client_id, ad_space_id, content_type, content_url, start_date, end_date,
			 duration_days, total_amount, status, payment_status, impressions, clicks, created_at)
			VALUES ($1,$2,$3,'image',$4,$5,$6,$7,$8,'active','pending',0,0,now())
			ON CONFLICT DO NOTHING`,
			orderID, clientID, spaceID, url, start, end, days, amount)
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `INSERT INTO invoices
			(order_id, client_id, invoice_number, amount, tax_amount, total_amount,
			 issue_date, due_date, status, created_at)
			VALUES ($1,$2,$3,$4,$5,$6,now(),now() + interval '30 days','pending',now())
			ON CONFLICT DO NOTHING`,
			orderID, clientID, fmt.Sprintf("INV-%s-%s", now.Format("20060102"), orderID),
			amount, amount*domain.VATRate, amount*(1+domain.VATRate))
		if err != nil {
			return err
		}
	}
	return nil
}
