package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shoplite/commerce-system/internal/api"
	"github.com/shoplite/commerce-system/internal/core/service"
	"github.com/shoplite/commerce-system/internal/infrastructure/config"
	mongodb "github.com/shoplite/commerce-system/internal/infrastructure/db/mongo"
	"github.com/shoplite/commerce-system/internal/infrastructure/httpclient"
	"github.com/shoplite/commerce-system/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Service: "shipping-service",
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	orderItemRepo := mongodb.NewOrderItemRepository(db)
	productLookup := httpclient.NewProductClient(cfg.Peers.ProductServiceURL)
	orderLookup := httpclient.NewOrderClient(cfg.Peers.OrderServiceURL)

	orderItemService := service.NewOrderItemService(orderItemRepo, productLookup, orderLookup, service.DeleteVerify, log)

	e := api.NewShippingRouter(log, db, orderItemService)

	go func() {
		if err := e.Start(":" + cfg.Services.ShippingPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Services.ShippingPort).Msg("shipping service listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("shipping service stopped")
}
