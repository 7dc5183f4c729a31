package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/liyedanpdx/WEB602-Project-2/internal/model"
)

// userRepository implements UserRepository using sqlx
type userRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user. Unique violations on username or email are
// mapped to the matching sentinel error so the caller can surface them as
// form errors rather than a 500.
func (r *userRepository) Create(ctx context.Context, u *model.User) error {
	query := `
		INSERT INTO registration (username, email, phone, password_hashed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, like_list, created_at, updated_at
	`

	row := r.db.QueryRowxContext(ctx, query,
		u.Username,
		u.Email,
		u.Phone,
		u.PasswordHashed,
	)

	err := row.Scan(&u.ID, &u.LikeList, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			// Unique violation; the constraint name tells us which field.
			if pqErr.Constraint == "registration_email_key" {
				return model.ErrEmailExists
			}
			return model.ErrUsernameExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by their ID
func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `
		SELECT id, username, email, phone, password_hashed, like_list, created_at, updated_at
		FROM registration
		WHERE id = $1
	`

	var u model.User
	err := r.db.GetContext(ctx, &u, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &u, nil
}

// GetByUsername retrieves a user by their username
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `
		SELECT id, username, email, phone, password_hashed, like_list, created_at, updated_at
		FROM registration
		WHERE username = $1
	`

	var u model.User
	err := r.db.GetContext(ctx, &u, query, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return &u, nil
}

// ExistsByUsername checks if a username is already taken
func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM registration WHERE username = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, username)
	if err != nil {
		return false, fmt.Errorf("failed to check username existence: %w", err)
	}

	return exists, nil
}

// ExistsByEmail checks if an email is already registered
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM registration WHERE email = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, email)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}

	return exists, nil
}

// List returns all registered users, newest first. Used by the
// administrative registrations view.
func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	query := `
		SELECT id, username, email, phone, password_hashed, like_list, created_at, updated_at
		FROM registration
		ORDER BY created_at DESC, id DESC
	`

	var users []model.User
	err := r.db.SelectContext(ctx, &users, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// AddLike appends postID to like_list only when it is not already
// present, keeping the array a set in a single atomic row update.
func (r *userRepository) AddLike(ctx context.Context, userID, postID int64) (bool, error) {
	query := `
		UPDATE registration
		SET like_list = array_append(like_list, $2), updated_at = NOW()
		WHERE id = $1 AND NOT ($2 = ANY(like_list))
	`

	result, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		return false, fmt.Errorf("failed to add like: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("get rows affected: %w", err)
	}
	return rows > 0, nil
}

// RemoveLike deletes postID from like_list. The WHERE guard makes the
// row count reflect whether anything was actually removed.
func (r *userRepository) RemoveLike(ctx context.Context, userID, postID int64) (bool, error) {
	query := `
		UPDATE registration
		SET like_list = array_remove(like_list, $2), updated_at = NOW()
		WHERE id = $1 AND $2 = ANY(like_list)
	`

	result, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		return false, fmt.Errorf("failed to remove like: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("get rows affected: %w", err)
	}
	return rows > 0, nil
}
