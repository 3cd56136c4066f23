package usecase

import (
	"context"
	"time"

	"lcatv-backend/internal/core/domain"
	"lcatv-backend/internal/core/port"
)

// CatalogService implements port.CatalogUseCase. Clients and ad spaces are
// plain records; the service only stamps creation metadata.
type CatalogService struct {
	repo port.CatalogRepository
	now  func() time.Time
}

// NewCatalogService creates the catalog service.
func NewCatalogService(repo port.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo, now: time.Now}
}

// CreateClient stores a new client. New clients start active with nothing
// spent.
func (s *CatalogService) CreateClient(ctx context.Context, c domain.Client) (domain.Client, error) {
	c.IsActive = true
	c.TotalSpent = 0
	c.CreatedAt = s.now().UTC()
	return s.repo.CreateClient(ctx, c)
}

// ListClients returns all clients.
func (s *CatalogService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.repo.ListClients(ctx)
}

// GetClient returns a client by id.
func (s *CatalogService) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	return s.repo.GetClient(ctx, id)
}

// UpdateClient replaces the client's contact fields.
func (s *CatalogService) UpdateClient(ctx context.Context, id string, c domain.Client) (*domain.Client, error) {
	return s.repo.UpdateClient(ctx, id, c)
}

// DeleteClient removes a client unconditionally, even when orders still
// reference it.
func (s *CatalogService) DeleteClient(ctx context.Context, id string) error {
	return s.repo.DeleteClient(ctx, id)
}

// CreateAdSpace stores a new ad space. Prices on the space only affect
// orders created afterwards.
func (s *CatalogService) CreateAdSpace(ctx context.Context, sp domain.AdSpace) (domain.AdSpace, error) {
	sp.IsActive = true
	sp.CreatedAt = s.now().UTC()
	return s.repo.CreateAdSpace(ctx, sp)
}

// ListAdSpaces returns all ad spaces.
func (s *CatalogService) ListAdSpaces(ctx context.Context) ([]domain.AdSpace, error) {
	return s.repo.ListAdSpaces(ctx)
}
