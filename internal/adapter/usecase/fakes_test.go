package usecase

import (
	"context"
	"time"

	"lcatv-backend/internal/core/domain"
	"lcatv-backend/internal/core/port"
)

// In-memory fakes for the outbound ports. They keep the same observable
// semantics as the postgres adapter: missing records map to
// port.ErrNotFound and counter updates are per-call increments.

type fakeCatalog struct {
	clients map[string]domain.Client
	spaces  map[string]domain.AdSpace
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		clients: map[string]domain.Client{},
		spaces:  map[string]domain.AdSpace{},
	}
}

func (f *fakeCatalog) CreateClient(_ context.Context, c domain.Client) (domain.Client, error) {
	f.clients[c.ID] = c
	return c, nil
}

func (f *fakeCatalog) ListClients(context.Context) ([]domain.Client, error) {
	out := make([]domain.Client, 0, len(f.clients))
	for _, c := range f.clients {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCatalog) GetClient(_ context.Context, id string) (*domain.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, port.ErrNotFound
	}
	return &c, nil
}

func (f *fakeCatalog) UpdateClient(_ context.Context, id string, c domain.Client) (*domain.Client, error) {
	if _, ok := f.clients[id]; !ok {
		return nil, port.ErrNotFound
	}
	c.ID = id
	f.clients[id] = c
	return &c, nil
}

func (f *fakeCatalog) DeleteClient(_ context.Context, id string) error {
	if _, ok := f.clients[id]; !ok {
		return port.ErrNotFound
	}
	delete(f.clients, id)
	return nil
}

func (f *fakeCatalog) CreateAdSpace(_ context.Context, s domain.AdSpace) (domain.AdSpace, error) {
	f.spaces[s.ID] = s
	return s, nil
}

func (f *fakeCatalog) ListAdSpaces(context.Context) ([]domain.AdSpace, error) {
	out := make([]domain.AdSpace, 0, len(f.spaces))
	for _, s := range f.spaces {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeCatalog) GetAdSpace(_ context.Context, id string) (*domain.AdSpace, error) {
	s, ok := f.spaces[id]
	if !ok {
		return nil, port.ErrNotFound
	}
	return &s, nil
}

type createdPair struct {
	order   domain.Order
	invoice domain.Invoice
}

type fakeOrders struct {
	created   []createdPair
	createErr error
	updates   []port.UpdateOrderStatusReq
	updateErr error

	// when set, paid transitions credit the client like the SQL adapter
	catalog *fakeCatalog
}

func (f *fakeOrders) CreateOrderWithInvoice(_ context.Context, o domain.Order, inv domain.Invoice) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, createdPair{order: o, invoice: inv})
	return nil
}

func (f *fakeOrders) ListOrders(context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(f.created))
	for _, p := range f.created {
		out = append(out, p.order)
	}
	return out, nil
}

// UpdateOrderStatus mirrors the SQL adapter: missing orders map to
// ErrNotFound, the paid transition stamps the payment date, and the client
// is credited only when the previous payment status was not already paid.
func (f *fakeOrders) UpdateOrderStatus(_ context.Context, req port.UpdateOrderStatusReq) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.created {
		o := &f.created[i].order
		if o.ID != req.OrderID {
			continue
		}
		f.updates = append(f.updates, req)
		if req.Status != nil {
			o.Status = *req.Status
		}
		if req.PaymentStatus != nil {
			prev := o.PaymentStatus
			o.PaymentStatus = *req.PaymentStatus
			if *req.PaymentStatus == domain.PaymentStatusPaid {
				paid := req.Now
				o.PaymentDate = &paid
				if prev != domain.PaymentStatusPaid && f.catalog != nil {
					c := f.catalog.clients[o.ClientID]
					c.TotalSpent += o.TotalAmount
					f.catalog.clients[o.ClientID] = c
				}
			}
		}
		return nil
	}
	return port.ErrNotFound
}

// fakePlacement mirrors the SQL eligibility rules in memory: an order is
// served when its status is active, its run covers now, and its ad space
// currently sits at the requested position.
type fakePlacement struct {
	orders map[string]*domain.Order
	spaces map[string]domain.AdSpace
}

func newFakePlacement() *fakePlacement {
	return &fakePlacement{
		orders: map[string]*domain.Order{},
		spaces: map[string]domain.AdSpace{},
	}
}

func (f *fakePlacement) ActiveOrdersForPosition(_ context.Context, position string, now time.Time) ([]port.PlacementCandidate, error) {
	var out []port.PlacementCandidate
	for _, o := range f.orders {
		space, ok := f.spaces[o.AdSpaceID]
		if !ok || space.Position != position {
			continue
		}
		if o.Status != domain.OrderStatusActive {
			continue
		}
		if now.Before(o.StartDate) || now.After(o.EndDate) {
			continue
		}
		out = append(out, port.PlacementCandidate{Order: *o, AdSpace: space})
	}
	return out, nil
}

func (f *fakePlacement) IncrementImpressions(_ context.Context, orderIDs []string) error {
	for _, id := range orderIDs {
		if o, ok := f.orders[id]; ok {
			o.Impressions++
		}
	}
	return nil
}

func (f *fakePlacement) IncrementClicks(_ context.Context, orderID string) error {
	o, ok := f.orders[orderID]
	if !ok {
		return port.ErrNotFound
	}
	o.Clicks++
	return nil
}

type fakeAnalytics struct {
	stats    port.DashboardStats
	statsErr error

	// revenue per bucket start, keyed by RFC3339 of the bucket start
	revenue map[string]float64
	counts  map[string]int64

	rows []port.PerformanceRow
}

func (f *fakeAnalytics) DashboardCounts(_ context.Context, _ time.Time) (port.DashboardStats, error) {
	return f.stats, f.statsErr
}

func (f *fakeAnalytics) RevenueInWindow(_ context.Context, from, _ time.Time) (float64, int64, error) {
	key := from.Format(time.RFC3339)
	return f.revenue[key], f.counts[key], nil
}

func (f *fakeAnalytics) PerformanceRows(context.Context) ([]port.PerformanceRow, error) {
	return f.rows, nil
}
