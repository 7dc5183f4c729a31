package session

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the session cookie set on successful login.
const CookieName = "sid"

// Manager issues, resolves, and destroys sessions. The cookie value is
// the session id wrapped in an HS256 JWT signed with the session secret,
// so a tampered cookie is rejected before any store lookup.
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewManager(store Store, secret string, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
		secure: secure,
	}
}

// Issue creates a new session for the user and returns the signed
// cookie value.
func (m *Manager) Issue(ctx context.Context, userID int64) (string, error) {
	sess := &Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	if err := m.store.Save(ctx, sess, m.ttl); err != nil {
		return "", err
	}

	return m.sign(sess.ID)
}

// Resolve verifies the cookie signature, looks the session up, and
// restarts its TTL. Any failure reports ErrNotFound; the guard treats
// every failure mode the same way.
func (m *Manager) Resolve(ctx context.Context, cookieValue string) (*Session, error) {
	id, err := m.verify(cookieValue)
	if err != nil {
		return nil, ErrNotFound
	}

	sess, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// Rolling expiry: activity restarts the clock. A failed refresh is
	// not fatal for this request.
	_ = m.store.Touch(ctx, id, m.ttl)

	return sess, nil
}

// Destroy removes the session behind the cookie. Unknown, expired, and
// malformed cookies are all fine: logging out twice is not an error.
func (m *Manager) Destroy(ctx context.Context, cookieValue string) error {
	id, err := m.verify(cookieValue)
	if err != nil {
		return nil
	}
	return m.store.Delete(ctx, id)
}

// NewCookie builds the session cookie for a signed value.
func (m *Manager) NewCookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredCookie builds a cookie that clears the session on the browser.
func (m *Manager) ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (m *Manager) sign(id string) (string, error) {
	claims := jwt.MapClaims{
		"sid": id,
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *Manager) verify(cookieValue string) (string, error) {
	token, err := jwt.Parse(cookieValue, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}

	id, ok := claims["sid"].(string)
	if !ok || id == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return id, nil
}
