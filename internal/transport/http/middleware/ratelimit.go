package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Policy is one route category's rate limit: at most Max requests per
// Window per client.
type Policy struct {
	Max    int
	Window time.Duration
}

const limitedKey contextKey = "rate_limited"

// RateLimit enforces a fixed-window counter in Redis, keyed by client
// IP. A limited request is not rejected here: the handler sees the flag
// via Limited and renders the inline "too many attempts" message, so
// throttling looks like any other form error to the user.
//
// Fail-open on a nil client or Redis errors: losing throttling is
// better than losing logins.
func RateLimit(rdb *redis.Client, name string, policy Policy, logger *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rdb == nil || policy.Max <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			key := fmt.Sprintf("rl:%s:ip:%s", name, clientIP(r))

			cnt, err := rdb.Incr(r.Context(), key).Result()
			if err != nil {
				logger.WithError(err).Warn("rate limiter unavailable, failing open")
				next.ServeHTTP(w, r)
				return
			}
			if cnt == 1 {
				rdb.Expire(r.Context(), key, policy.Window)
			}

			if cnt > int64(policy.Max) {
				ctx := context.WithValue(r.Context(), limitedKey, true)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Limited reports whether the rate limiter flagged this request.
func Limited(ctx context.Context) bool {
	limited, _ := ctx.Value(limitedKey).(bool)
	return limited
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
