package postgres

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"lcatv-backend/internal/core/port"
)

// SalesRepository implements the catalog, order, placement and analytics
// ports on top of PostgreSQL via pgxpool. Identifiers are uuid columns
// exposed to the rest of the application as opaque strings.
type SalesRepository struct {
	pool *pgxpool.Pool
}

// NewSalesRepository returns a new repository instance.
func NewSalesRepository(pool *pgxpool.Pool) *SalesRepository {
	return &SalesRepository{pool: pool}
}

// parseID validates an identifier string. A malformed value maps to
// port.ErrInvalidID so handlers can answer 400 instead of 500.
func parseID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", port.ErrInvalidID
	}
	return u.String(), nil
}
