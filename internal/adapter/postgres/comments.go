package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lcatv-backend/internal/core/domain"
	"lcatv-backend/internal/core/port"
)

// CommentRepository implements port.CommentRepository on PostgreSQL.
type CommentRepository struct {
	pool *pgxpool.Pool
}

// NewCommentRepository returns a new repository instance.
func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

const commentColumns = `id::text, video_id, content, user_name, user_email, likes, is_active, created_at`

func scanComment(row pgx.Row) (domain.Comment, error) {
	var c domain.Comment
	err := row.Scan(&c.ID, &c.VideoID, &c.Content, &c.UserName, &c.UserEmail,
		&c.Likes, &c.IsActive, &c.CreatedAt)
	return c, err
}

// CreateComment inserts a comment and returns it with its generated id.
func (r *CommentRepository) CreateComment(ctx context.Context, c domain.Comment) (domain.Comment, error) {
	row := r.pool.QueryRow(ctx, `INSERT INTO comments
		(video_id, content, user_name, user_email, likes, is_active, created_at)
		VALUES ($1,$2,$3,$4,0,$5,$6)
		RETURNING `+commentColumns,
		c.VideoID, c.Content, c.UserName, c.UserEmail, c.IsActive, c.CreatedAt)
	return scanComment(row)
}

// ListComments returns active comments for a video, newest first.
func (r *CommentRepository) ListComments(ctx context.Context, videoID string, limit int) ([]domain.Comment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+commentColumns+` FROM comments
		WHERE video_id = $1 AND is_active
		ORDER BY created_at DESC LIMIT $2`, videoID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Comment, error) {
		return scanComment(row)
	})
}

// LikeComment adds one like atomically and returns the new count.
func (r *CommentRepository) LikeComment(ctx context.Context, id string) (int64, error) {
	id, err := parseID(id)
	if err != nil {
		return 0, err
	}
	var likes int64
	err = r.pool.QueryRow(ctx,
		`UPDATE comments SET likes = likes + 1 WHERE id = $1 RETURNING likes`, id).
		Scan(&likes)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, port.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return likes, nil
}
