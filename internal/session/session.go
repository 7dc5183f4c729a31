// Package session holds server-side login state bound to a browser
// cookie. The cookie carries only a signed session id; everything else
// lives in the store and can be revoked at any time.
package session

import (
	"context"
	"errors"
	"time"
)

// Session binds a cookie to exactly one user. It references the user by
// id only; a deleted user leaves a stray session that simply fails the
// user lookup at guard time.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrNotFound is returned when a session id is unknown or expired.
var ErrNotFound = errors.New("session not found")

// Store persists sessions with a TTL. Implementations must expire
// entries on their own; Touch restarts the TTL ("rolling" expiry).
type Store interface {
	Save(ctx context.Context, sess *Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*Session, error)
	Touch(ctx context.Context, id string, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}
