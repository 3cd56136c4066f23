package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"lcatv-backend/internal/core/domain"
	"lcatv-backend/internal/core/port"
)

const adSpaceColumns = `id::text, name, position, dimensions, price_per_day,
	price_per_week, price_per_month, is_active, created_at`

func scanAdSpace(row pgx.Row) (domain.AdSpace, error) {
	var (
		s       domain.AdSpace
		dimsRaw []byte
	)
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Position,
		&dimsRaw,
		&s.PricePerDay,
		&s.PricePerWeek,
		&s.PricePerMonth,
		&s.IsActive,
		&s.CreatedAt,
	)
	if err != nil {
		return s, err
	}
	if err = json.Unmarshal(dimsRaw, &s.Dimensions); err != nil {
		return s, err
	}
	return s, nil
}

// CreateAdSpace inserts a new ad space and returns it with its generated id.
func (r *SalesRepository) CreateAdSpace(ctx context.Context, s domain.AdSpace) (domain.AdSpace, error) {
	dims, err := json.Marshal(s.Dimensions)
	if err != nil {
		return domain.AdSpace{}, err
	}
	row := r.pool.QueryRow(ctx, `INSERT INTO ad_spaces
		(name, position, dimensions, price_per_day, price_per_week, price_per_month, is_active, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING `+adSpaceColumns,
		s.Name, s.Position, dims, s.PricePerDay, s.PricePerWeek, s.PricePerMonth, s.IsActive, s.CreatedAt)
	return scanAdSpace(row)
}

// ListAdSpaces returns all ad spaces, unfiltered.
func (r *SalesRepository) ListAdSpaces(ctx context.Context) ([]domain.AdSpace, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+adSpaceColumns+` FROM ad_spaces ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdSpace, error) {
		return scanAdSpace(row)
	})
}

// GetAdSpace returns an ad space by id.
func (r *SalesRepository) GetAdSpace(ctx context.Context, id string) (*domain.AdSpace, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}
	s, err := scanAdSpace(r.pool.QueryRow(ctx, `SELECT `+adSpaceColumns+` FROM ad_spaces WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
