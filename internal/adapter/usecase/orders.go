package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lcatv-backend/internal/core/domain"
	"lcatv-backend/internal/core/port"
)

// OrderService implements port.OrderUseCase: pricing at creation time, the
// derived invoice, and later status updates.
type OrderService struct {
	catalog port.CatalogRepository
	orders  port.OrderRepository
	now     func() time.Time
}

// NewOrderService creates the order service.
func NewOrderService(catalog port.CatalogRepository, orders port.OrderRepository) *OrderService {
	return &OrderService{catalog: catalog, orders: orders, now: time.Now}
}

// CreateOrder prices the requested window against the ad space's current
// tiers and persists the order together with its invoice. The amount is
// computed once here and never recomputed from later price edits. A
// missing ad space fails the whole operation before any write.
func (s *OrderService) CreateOrder(ctx context.Context, req port.CreateOrderReq) (domain.Order, error) {
	if _, err := uuid.Parse(req.ClientID); err != nil {
		return domain.Order{}, port.ErrInvalidID
	}

	space, err := s.catalog.GetAdSpace(ctx, req.AdSpaceID)
	if err != nil {
		return domain.Order{}, err
	}

	now := s.now().UTC()
	days := domain.DurationDays(req.StartDate, req.EndDate)

	order := domain.Order{
		// The id is assigned up front so the invoice number can embed it.
		ID:            uuid.NewString(),
		ClientID:      req.ClientID,
		AdSpaceID:     space.ID,
		ContentType:   req.ContentType,
		ContentURL:    req.ContentURL,
		ContentHTML:   req.ContentHTML,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		DurationDays:  days,
		TotalAmount:   domain.PriceFor(*space, days),
		Status:        domain.OrderStatusPending,
		PaymentStatus: domain.PaymentStatusPending,
		CreatedAt:     now,
	}
	invoice := domain.NewInvoice(order, now)

	if err = s.orders.CreateOrderWithInvoice(ctx, order, invoice); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

// ListOrders returns every order, unfiltered and unpaginated.
func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.ListOrders(ctx)
}

// UpdateStatus applies the requested status fields verbatim. No transition
// graph is enforced; repeating the same status is a no-op rather than an
// error. The paid transition stamps the payment date and credits the
// client's total_spent at the storage layer.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status, paymentStatus *string) error {
	return s.orders.UpdateOrderStatus(ctx, port.UpdateOrderStatusReq{
		OrderID:       orderID,
		Status:        status,
		PaymentStatus: paymentStatus,
		Now:           s.now().UTC(),
	})
}
