package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/securebase/user-api/internal/api/metrics"
)

// RateLimitStore abstracts the fixed-window counter (Redis in production).
type RateLimitStore interface {
	Incr(ctx context.Context, bucket string, window time.Duration) (int64, error)
}

// RateLimit rejects requests once a client IP exceeds max requests within
// the window. Store failures fail open: losing rate limiting is preferable
// to taking login down with Redis.
func RateLimit(store RateLimitStore, max int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			n, err := store.Incr(c.Request().Context(), c.RealIP(), window)
			if err != nil {
				return next(c)
			}
			if n > int64(max) {
				metrics.RateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
