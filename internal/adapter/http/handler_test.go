package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lcatv-backend/internal/core/domain"
	"lcatv-backend/internal/core/port"
)

// Partial stubs: the embedded interface covers the methods a test does not
// exercise.

type stubCatalog struct {
	port.CatalogUseCase
	createClient func(ctx context.Context, c domain.Client) (domain.Client, error)
	getClient    func(ctx context.Context, id string) (*domain.Client, error)
	deleteClient func(ctx context.Context, id string) error
}

func (s *stubCatalog) CreateClient(ctx context.Context, c domain.Client) (domain.Client, error) {
	return s.createClient(ctx, c)
}

func (s *stubCatalog) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	return s.getClient(ctx, id)
}

func (s *stubCatalog) DeleteClient(ctx context.Context, id string) error {
	return s.deleteClient(ctx, id)
}

type stubOrders struct {
	port.OrderUseCase
	create func(ctx context.Context, req port.CreateOrderReq) (domain.Order, error)
}

func (s *stubOrders) CreateOrder(ctx context.Context, req port.CreateOrderReq) (domain.Order, error) {
	return s.create(ctx, req)
}

type stubPlacement struct {
	ads   func(ctx context.Context, position string) ([]port.PlacementAd, error)
	click func(ctx context.Context, orderID string) error
}

func (s *stubPlacement) AdsForPosition(ctx context.Context, position string) ([]port.PlacementAd, error) {
	return s.ads(ctx, position)
}

func (s *stubPlacement) RecordClick(ctx context.Context, orderID string) error {
	return s.click(ctx, orderID)
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

func newTestHandler(d Deps) *Handler {
	if d.Logger == nil {
		d.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if d.Store == nil {
		d.Store = stubPinger{}
	}
	return NewHandler(d)
}

func doRequest(h *Handler, method, path, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func TestCreateClientOK(t *testing.T) {
	h := newTestHandler(Deps{Catalog: &stubCatalog{
		createClient: func(_ context.Context, c domain.Client) (domain.Client, error) {
			c.ID = "id-1"
			c.IsActive = true
			c.CreatedAt = time.Now().UTC()
			return c, nil
		},
	}})

	rec := doRequest(h, http.MethodPost, "/api/admin/clients/",
		`{"company_name":"Acme","contact_person":"Jo","email":"jo@acme.com","phone":"+226 70"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "id-1", got["id"])
	assert.Equal(t, "Acme", got["company_name"])
	assert.Equal(t, true, got["is_active"])
}

func TestCreateClientValidation(t *testing.T) {
	h := newTestHandler(Deps{Catalog: &stubCatalog{}})

	rec := doRequest(h, http.MethodPost, "/api/admin/clients/",
		`{"company_name":"Acme"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var got struct {
		Detail string            `json:"detail"`
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "validation failed", got.Detail)
	assert.Contains(t, got.Errors, "Email")
}

func TestCreateClientBadJSON(t *testing.T) {
	h := newTestHandler(Deps{Catalog: &stubCatalog{}})
	rec := doRequest(h, http.MethodPost, "/api/admin/clients/", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetClientErrors(t *testing.T) {
	h := newTestHandler(Deps{Catalog: &stubCatalog{
		getClient: func(_ context.Context, id string) (*domain.Client, error) {
			if id == "bad" {
				return nil, port.ErrInvalidID
			}
			return nil, port.ErrNotFound
		},
	}})

	rec := doRequest(h, http.MethodGet, "/api/admin/clients/bad", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(h, http.MethodGet, "/api/admin/clients/00000000-0000-0000-0000-000000000000", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteClientUnconditional(t *testing.T) {
	deleted := ""
	h := newTestHandler(Deps{Catalog: &stubCatalog{
		deleteClient: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}})

	rec := doRequest(h, http.MethodDelete, "/api/admin/clients/some-id", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "some-id", deleted)
}

func TestCreateOrderMapsPayload(t *testing.T) {
	var captured port.CreateOrderReq
	h := newTestHandler(Deps{Orders: &stubOrders{
		create: func(_ context.Context, req port.CreateOrderReq) (domain.Order, error) {
			captured = req
			return domain.Order{
				ID:            "o1",
				TotalAmount:   25000,
				Status:        domain.OrderStatusPending,
				PaymentStatus: domain.PaymentStatusPending,
			}, nil
		},
	}})

	rec := doRequest(h, http.MethodPost, "/api/admin/ad-orders/",
		`{"client_id":"c1","ad_space_id":"s1","content_type":"image",
		  "content_url":"https://x/y.png",
		  "start_date":"2025-07-01T00:00:00Z","end_date":"2025-07-06T00:00:00Z"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "c1", captured.ClientID)
	assert.Equal(t, "s1", captured.AdSpaceID)
	require.NotNil(t, captured.ContentURL)
	assert.Equal(t, "https://x/y.png", *captured.ContentURL)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "pending", got["status"])
	assert.Equal(t, 25000.0, got["total_amount"])
}

func TestCreateOrderAdSpaceNotFound(t *testing.T) {
	h := newTestHandler(Deps{Orders: &stubOrders{
		create: func(context.Context, port.CreateOrderReq) (domain.Order, error) {
			return domain.Order{}, port.ErrNotFound
		},
	}})

	rec := doRequest(h, http.MethodPost, "/api/admin/ad-orders/",
		`{"client_id":"c1","ad_space_id":"s1","content_type":"image",
		  "start_date":"2025-07-01T00:00:00Z","end_date":"2025-07-06T00:00:00Z"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdsForPositionEnvelope(t *testing.T) {
	h := newTestHandler(Deps{Placement: &stubPlacement{
		ads: func(_ context.Context, position string) ([]port.PlacementAd, error) {
			assert.Equal(t, "header", position)
			return nil, nil
		},
	}})

	rec := doRequest(h, http.MethodGet, "/api/public/ads/header", "")
	require.Equal(t, http.StatusOK, rec.Code)
	// empty result is a normal response with an empty list, not an error
	assert.JSONEq(t, `{"ads":[]}`, rec.Body.String())
}

func TestAdClick(t *testing.T) {
	clicked := ""
	h := newTestHandler(Deps{Placement: &stubPlacement{
		click: func(_ context.Context, orderID string) error {
			clicked = orderID
			return nil
		},
	}})

	rec := doRequest(h, http.MethodPost, "/api/public/ads/o1/click", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "o1", clicked)
	assert.JSONEq(t, `{"message":"Click recorded"}`, rec.Body.String())
}

func TestAdClickUnknown(t *testing.T) {
	h := newTestHandler(Deps{Placement: &stubPlacement{
		click: func(context.Context, string) error { return port.ErrNotFound },
	}})
	rec := doRequest(h, http.MethodPost, "/api/public/ads/o1/click", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	h := newTestHandler(Deps{})
	rec := doRequest(h, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "healthy", got["status"])
}
