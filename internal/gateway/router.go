package gateway

import (
	"fmt"
	"net/url"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/shoplite/commerce-system/internal/api"
	"github.com/shoplite/commerce-system/internal/api/handler"
	"github.com/shoplite/commerce-system/internal/core/ports"
	"github.com/shoplite/commerce-system/internal/core/token"
)

// Peer maps a path prefix to the record service that owns it.
type Peer struct {
	Prefix string
	URL    string
}

// publicPrefixes are reachable without a token: the login endpoints plus
// the gateway's own probes.
var publicPrefixes = []string{
	"/api/authenticate",
	"/health",
	"/metrics",
	"/swagger",
}

// NewRouter builds the gateway: authentication endpoints served locally,
// everything else token-checked, rate-limited and proxied to the owning
// record service.
func NewRouter(
	log zerolog.Logger,
	authService ports.AuthService,
	codec *token.Codec,
	limiter Allower,
	rdb *redis.Client,
	peers []Peer,
) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("gateway"))
	e.Use(RateLimit(limiter))
	e.Use(Auth(authService, codec, publicPrefixes))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(log)

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(nil, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	ah := handler.NewAuthHandler(authService)
	e.POST("/api/authenticate", ah.Authenticate)
	e.GET("/api/authenticate/jwt/:token", ah.ValidateToken)

	for _, peer := range peers {
		target, err := url.Parse(peer.URL)
		if err != nil {
			return nil, fmt.Errorf("parse peer url %q: %w", peer.URL, err)
		}
		// The proxy forwards the request path untouched, so the target
		// must be the service root, not its /api base.
		target.Path = ""

		g := e.Group(peer.Prefix)
		g.Use(echomiddleware.Proxy(echomiddleware.NewRoundRobinBalancer([]*echomiddleware.ProxyTarget{
			{URL: target},
		})))

		log.Info().Str("prefix", peer.Prefix).Str("target", target.String()).Msg("gateway route registered")
	}

	return e, nil
}
