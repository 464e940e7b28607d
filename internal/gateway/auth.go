package gateway

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/commerce-system/internal/api/metrics"
	"github.com/shoplite/commerce-system/internal/core/ports"
	"github.com/shoplite/commerce-system/internal/core/token"
)

// ForwardedUserHeader carries the authenticated username to downstream
// services. The gateway strips any caller-supplied value before setting it.
const ForwardedUserHeader = "X-Auth-Username"

// Auth is the gateway's token filter. Paths matching a public prefix pass
// through untouched; everything else needs a valid bearer token, whose
// subject is forwarded downstream as a header.
func Auth(auth ports.AuthService, codec *token.Codec, publicPrefixes []string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, prefix := range publicPrefixes {
				if strings.HasPrefix(path, prefix) {
					return next(c)
				}
			}

			c.Request().Header.Del(ForwardedUserHeader)

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.GatewayRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.GatewayRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			raw := parts[1]
			if !auth.ValidateToken(raw) {
				metrics.GatewayRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			username, err := codec.Subject(raw)
			if err != nil {
				metrics.GatewayRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Request().Header.Set(ForwardedUserHeader, username)
			return next(c)
		}
	}
}
