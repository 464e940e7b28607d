package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shoplite/commerce-system/internal/core/service"
	"github.com/shoplite/commerce-system/internal/core/token"
	"github.com/shoplite/commerce-system/internal/gateway"
	"github.com/shoplite/commerce-system/internal/infrastructure/config"
	redisdb "github.com/shoplite/commerce-system/internal/infrastructure/db/redis"
	"github.com/shoplite/commerce-system/internal/infrastructure/httpclient"
	"github.com/shoplite/commerce-system/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Service: "gateway",
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	limiter := redisdb.NewLimiter(rdb, cfg.Gateway.RateLimit, cfg.Gateway.RateWindow, log)

	codec := token.NewCodec(cfg.JWTSecret, cfg.TokenTTL)
	credentialStore := httpclient.NewCredentialClient(cfg.Peers.UserServiceURL)
	authService := service.NewAuthService(credentialStore, codec, log)

	peers := []gateway.Peer{
		{Prefix: "/api/users", URL: cfg.Peers.UserServiceURL},
		{Prefix: "/api/credentials", URL: cfg.Peers.UserServiceURL},
		{Prefix: "/api/addresses", URL: cfg.Peers.UserServiceURL},
		{Prefix: "/api/verification-tokens", URL: cfg.Peers.UserServiceURL},
		{Prefix: "/api/products", URL: cfg.Peers.ProductServiceURL},
		{Prefix: "/api/categories", URL: cfg.Peers.ProductServiceURL},
		{Prefix: "/api/orders", URL: cfg.Peers.OrderServiceURL},
		{Prefix: "/api/carts", URL: cfg.Peers.OrderServiceURL},
		{Prefix: "/api/payments", URL: cfg.Peers.PaymentServiceURL},
		{Prefix: "/api/favourites", URL: cfg.Peers.FavouriteServiceURL},
		{Prefix: "/api/shippings", URL: cfg.Peers.ShippingServiceURL},
	}

	e, err := gateway.NewRouter(log, authService, codec, limiter, rdb, peers)
	if err != nil {
		log.Fatal().Err(err).Msg("router build failed")
	}

	go func() {
		if err := e.Start(":" + cfg.Gateway.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Gateway.Port).Msg("gateway listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("gateway stopped")
}
