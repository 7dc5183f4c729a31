package middleware

import (
	"context"
	"net/http"

	"github.com/liyedanpdx/WEB602-Project-2/internal/model"
	"github.com/liyedanpdx/WEB602-Project-2/internal/service"
	"github.com/liyedanpdx/WEB602-Project-2/internal/session"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const userKey contextKey = "user"

// RequireAuth is the authentication guard. It resolves the session
// cookie to a user exactly once and stores the user on the context;
// handlers downstream never re-derive it. Anonymous requests are
// redirected to the login form (302, not a 401) regardless of whether
// they wanted a page or the JSON API.
func RequireAuth(auth *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			user, err := auth.ResolveUser(r.Context(), cookie.Value)
			if err != nil {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFrom returns the authenticated user placed on the context by
// RequireAuth. ok is false on routes outside the guard.
func UserFrom(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok
}
