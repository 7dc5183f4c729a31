package repository

import (
	"context"

	"github.com/liyedanpdx/WEB602-Project-2/internal/model"
)

// UserRepository persists user registrations and their like lists.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]model.User, error)

	// AddLike inserts postID into the user's like list with set
	// semantics: it reports false, nil when the id was already present
	// and nothing changed.
	AddLike(ctx context.Context, userID, postID int64) (bool, error)

	// RemoveLike deletes postID from the user's like list. Removing an
	// absent id is a no-op; the bool reports whether a removal happened.
	RemoveLike(ctx context.Context, userID, postID int64) (bool, error)
}

// PostRepository persists blog posts and their like counters.
type PostRepository interface {
	Create(ctx context.Context, p *model.Post) error
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	List(ctx context.Context) ([]model.Post, error)
	Exists(ctx context.Context, id int64) (bool, error)

	// AdjustLikeCount atomically applies delta to a post's like counter,
	// flooring the result at zero, and returns the new value.
	AdjustLikeCount(ctx context.Context, postID int64, delta int) (int, error)
}
