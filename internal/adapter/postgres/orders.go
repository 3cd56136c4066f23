package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"lcatv-backend/internal/core/domain"
	"lcatv-backend/internal/core/port"
)

const orderColumns = `id::text, client_id::text, ad_space_id::text, content_type,
	content_url, content_html, start_date, end_date, duration_days, total_amount,
	status, payment_status, payment_date, impressions, clicks, created_at, updated_at`

func scanOrder(row pgx.Row) (domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID,
		&o.ClientID,
		&o.AdSpaceID,
		&o.ContentType,
		&o.ContentURL,
		&o.ContentHTML,
		&o.StartDate,
		&o.EndDate,
		&o.DurationDays,
		&o.TotalAmount,
		&o.Status,
		&o.PaymentStatus,
		&o.PaymentDate,
		&o.Impressions,
		&o.Clicks,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

// CreateOrderWithInvoice writes the order and its derived invoice in one
// transaction. The order id is assigned by the caller so the invoice
// number can embed it before anything is persisted.
func (r *SalesRepository) CreateOrderWithInvoice(ctx context.Context, order domain.Order, invoice domain.Invoice) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `INSERT INTO ad_orders
		(id, client_id, ad_space_id, content_type, content_url, content_html,
		 start_date, end_date, duration_days, total_amount, status, payment_status,
		 impressions, clicks, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,0,0,$13)`,
		order.ID, order.ClientID, order.AdSpaceID, order.ContentType,
		order.ContentURL, order.ContentHTML, order.StartDate, order.EndDate,
		order.DurationDays, order.TotalAmount, order.Status, order.PaymentStatus,
		order.CreatedAt)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `INSERT INTO invoices
		(order_id, client_id, invoice_number, amount, tax_amount, total_amount,
		 issue_date, due_date, status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		invoice.OrderID, invoice.ClientID, invoice.InvoiceNumber, invoice.Amount,
		invoice.TaxAmount, invoice.TotalAmount, invoice.IssueDate, invoice.DueDate,
		invoice.Status, invoice.CreatedAt)
	return err
}

// ListOrders returns all orders, unfiltered.
func (r *SalesRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+orderColumns+` FROM ad_orders ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Order, error) {
		return scanOrder(row)
	})
}

// UpdateOrderStatus applies a partial status update inside a transaction.
// The order row is locked so the paid transition credits the client's
// total_spent exactly once even under concurrent updates.
func (r *SalesRepository) UpdateOrderStatus(ctx context.Context, req port.UpdateOrderStatusReq) (err error) {
	id, err := parseID(req.OrderID)
	if err != nil {
		return err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var (
		prevPayment string
		clientID    string
		totalAmount float64
	)
	err = tx.QueryRow(ctx, `SELECT payment_status, client_id::text, total_amount
		FROM ad_orders WHERE id = $1 FOR UPDATE`, id).
		Scan(&prevPayment, &clientID, &totalAmount)
	if errors.Is(err, pgx.ErrNoRows) {
		err = port.ErrNotFound
		return err
	}
	if err != nil {
		return err
	}

	if req.Status != nil {
		if _, err = tx.Exec(ctx, `UPDATE ad_orders SET status = $2, updated_at = $3 WHERE id = $1`,
			id, *req.Status, req.Now); err != nil {
			return err
		}
	}
	if req.PaymentStatus != nil {
		if _, err = tx.Exec(ctx, `UPDATE ad_orders SET payment_status = $2, updated_at = $3 WHERE id = $1`,
			id, *req.PaymentStatus, req.Now); err != nil {
			return err
		}
		if *req.PaymentStatus == domain.PaymentStatusPaid {
			if _, err = tx.Exec(ctx, `UPDATE ad_orders SET payment_date = $2 WHERE id = $1`,
				id, req.Now); err != nil {
				return err
			}
			// credit the client only on the transition into paid
			if prevPayment != domain.PaymentStatusPaid {
				if _, err = tx.Exec(ctx, `UPDATE clients SET total_spent = total_spent + $2 WHERE id = $1`,
					clientID, totalAmount); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
