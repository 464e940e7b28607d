package gateway

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/commerce-system/internal/api/metrics"
)

// Allower is the decision side of a rate limiter.
type Allower interface {
	Allow(ctx context.Context, key string) bool
}

// RateLimit rejects callers that exceed their request budget. Requests are
// keyed by client IP.
func RateLimit(limiter Allower) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.Request().Context(), c.RealIP()) {
				metrics.GatewayRejectionsTotal.WithLabelValues("rate_limited").Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
