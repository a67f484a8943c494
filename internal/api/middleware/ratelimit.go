package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/photographerlagbe/marketplace-api/internal/api/metrics"
)

// Allower is the slice of the redis limiter the middleware needs.
type Allower interface {
	Allow(ctx context.Context, id string) (bool, error)
}

// RateLimit applies a blanket per-IP request budget. A limiter failure fails
// open: losing redis should not take the API down with it.
func RateLimit(limiter Allower, logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				logger.Warn().Err(err).Msg("rate limiter unavailable")
				return next(c)
			}
			if !ok {
				metrics.RateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
