package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/liyedanpdx/WEB602-Project-2/internal/model"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts a new blog post. Used by the seed command.
func (r *postRepository) Create(ctx context.Context, p *model.Post) error {
	query := `
		INSERT INTO blog (title, description, image_url, date, content, author, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, like_count, created_at, updated_at
	`

	row := r.db.QueryRowxContext(ctx, query,
		p.Title,
		p.Description,
		p.ImageURL,
		p.Date,
		p.Content,
		p.Author,
	)

	err := row.Scan(&p.ID, &p.LikeCount, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// GetByID retrieves a single post.
func (r *postRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	query := `
		SELECT id, title, description, image_url, date, content, author, like_count, created_at, updated_at
		FROM blog
		WHERE id = $1
	`

	var p model.Post
	err := r.db.GetContext(ctx, &p, query, id)
	if err == sql.ErrNoRows {
		return nil, model.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &p, nil
}

// List returns all blog posts, oldest first to match publication order.
func (r *postRepository) List(ctx context.Context) ([]model.Post, error) {
	query := `
		SELECT id, title, description, image_url, date, content, author, like_count, created_at, updated_at
		FROM blog
		ORDER BY id
	`

	var posts []model.Post
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

// Exists checks if a post exists.
func (r *postRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM blog WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("check post exists: %w", err)
	}
	return exists, nil
}

// AdjustLikeCount applies delta to like_count in one atomic update,
// flooring at zero so a stray decrement can never drive the counter
// negative, and returns the new value.
func (r *postRepository) AdjustLikeCount(ctx context.Context, postID int64, delta int) (int, error) {
	query := `
		UPDATE blog
		SET like_count = GREATEST(like_count + $2, 0), updated_at = NOW()
		WHERE id = $1
		RETURNING like_count
	`

	var likeCount int
	err := r.db.GetContext(ctx, &likeCount, query, postID, delta)
	if err == sql.ErrNoRows {
		return 0, model.ErrPostNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to adjust like count: %w", err)
	}

	return likeCount, nil
}
