package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"lcatv-backend/internal/core/domain"
	"lcatv-backend/internal/core/port"
)

const clientColumns = `id::text, company_name, contact_person, email, phone, address,
	is_active, total_spent, created_at, updated_at`

func scanClient(row pgx.Row) (domain.Client, error) {
	var c domain.Client
	err := row.Scan(
		&c.ID,
		&c.CompanyName,
		&c.ContactPerson,
		&c.Email,
		&c.Phone,
		&c.Address,
		&c.IsActive,
		&c.TotalSpent,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// CreateClient inserts a new client and returns it with its generated id.
func (r *SalesRepository) CreateClient(ctx context.Context, c domain.Client) (domain.Client, error) {
	row := r.pool.QueryRow(ctx, `INSERT INTO clients
		(company_name, contact_person, email, phone, address, is_active, total_spent, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING `+clientColumns,
		c.CompanyName, c.ContactPerson, c.Email, c.Phone, c.Address, c.IsActive, c.TotalSpent, c.CreatedAt)
	return scanClient(row)
}

// ListClients returns all clients, unfiltered.
func (r *SalesRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Client, error) {
		return scanClient(row)
	})
}

// GetClient returns a client by id.
func (r *SalesRepository) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}
	c, err := scanClient(r.pool.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateClient replaces the client's editable fields and returns the
// updated record. TotalSpent and IsActive are not touched here.
func (r *SalesRepository) UpdateClient(ctx context.Context, id string, c domain.Client) (*domain.Client, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}
	row := r.pool.QueryRow(ctx, `UPDATE clients SET
		company_name = $2, contact_person = $3, email = $4, phone = $5, address = $6, updated_at = now()
		WHERE id = $1
		RETURNING `+clientColumns,
		id, c.CompanyName, c.ContactPerson, c.Email, c.Phone, c.Address)
	updated, err := scanClient(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteClient removes a client unconditionally. Existing orders keep
// their client_id; there is no cascade check.
func (r *SalesRepository) DeleteClient(ctx context.Context, id string) error {
	id, err := parseID(id)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}
