package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lcatv-backend/internal/core/domain"
)

// NewsRepository implements port.NewsRepository on PostgreSQL.
type NewsRepository struct {
	pool *pgxpool.Pool
}

// NewNewsRepository returns a new repository instance.
func NewNewsRepository(pool *pgxpool.Pool) *NewsRepository {
	return &NewsRepository{pool: pool}
}

const newsColumns = `id::text, title, content, priority, source, category, is_active, created_at`

func scanNews(row pgx.Row) (domain.BreakingNews, error) {
	var n domain.BreakingNews
	err := row.Scan(&n.ID, &n.Title, &n.Content, &n.Priority, &n.Source,
		&n.Category, &n.IsActive, &n.CreatedAt)
	return n, err
}

// CreateNews inserts a breaking news item and returns it with its id.
func (r *NewsRepository) CreateNews(ctx context.Context, n domain.BreakingNews) (domain.BreakingNews, error) {
	row := r.pool.QueryRow(ctx, `INSERT INTO breaking_news
		(title, content, priority, source, category, is_active, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING `+newsColumns,
		n.Title, n.Content, n.Priority, n.Source, n.Category, n.IsActive, n.CreatedAt)
	return scanNews(row)
}

// ListActiveNews returns active items, newest first, at most limit.
func (r *NewsRepository) ListActiveNews(ctx context.Context, limit int) ([]domain.BreakingNews, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+newsColumns+` FROM breaking_news
		WHERE is_active ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BreakingNews, error) {
		return scanNews(row)
	})
}
