package model

import (
	"time"

	"github.com/lib/pq"
)

// User represents a registered user. The table keeps the original
// application's collection name, "registration".
type User struct {
	ID             int64         `db:"id" json:"id"`
	Username       string        `db:"username" json:"username"`
	Email          string        `db:"email" json:"email"`
	Phone          string        `db:"phone" json:"phone"`
	PasswordHashed string        `db:"password_hashed" json:"-"` // "-" hides from JSON output
	LikeList       pq.Int64Array `db:"like_list" json:"-"`
	CreatedAt      time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at" json:"updated_at"`
}

// HasLiked reports whether postID is in the user's like list.
func (u *User) HasLiked(postID int64) bool {
	for _, id := range u.LikeList {
		if id == postID {
			return true
		}
	}
	return false
}

// RegisterRequest carries the registration form fields.
type RegisterRequest struct {
	Username string
	Email    string
	Phone    string
	Password string
}

// LoginRequest carries the login form fields.
type LoginRequest struct {
	Username string
	Password string
}
