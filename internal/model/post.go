package model

import "time"

// Post represents a blog post. The table keeps the original collection
// name, "blog".
type Post struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	Date        string    `db:"date" json:"date"`
	Content     string    `db:"content" json:"content"`
	Author      string    `db:"author" json:"author"`
	LikeCount   int       `db:"like_count" json:"likes"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`

	// IsLiked is resolved per viewer, not stored.
	IsLiked bool `db:"-" json:"isLiked"`
}

// ToggleLikeResult is the outcome of flipping a user's like on a post.
type ToggleLikeResult struct {
	Likes   int  `json:"likes"`
	IsLiked bool `json:"isLiked"`
}
