// Package main runs the Freelaverse web gateway: the HTTP edge that serves
// the client and professional areas, proxies the marketplace backend, and
// relays realtime payment updates from the backend's payment hub.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/freelaverse/web-gateway/internal/api"
	"github.com/freelaverse/web-gateway/internal/api/session"
	"github.com/freelaverse/web-gateway/internal/core/ports"
	"github.com/freelaverse/web-gateway/internal/core/service"
	"github.com/freelaverse/web-gateway/internal/infrastructure/backend"
	redisdb "github.com/freelaverse/web-gateway/internal/infrastructure/db/redis"
	"github.com/freelaverse/web-gateway/internal/infrastructure/queue"
	"github.com/freelaverse/web-gateway/internal/infrastructure/realtime"
	"github.com/freelaverse/web-gateway/internal/pkg/config"
	"github.com/freelaverse/web-gateway/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Redis is optional: without it the resend cooldown and the area cache
	// degrade gracefully, so a failed connection only logs a warning.
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, cooldowns and area cache disabled")
		rdb = nil
	}

	backendClient := backend.NewClient(
		cfg.Backend.BaseURL,
		time.Duration(cfg.Backend.RequestTimeout)*time.Second,
		log,
	)

	// Payment updates flow hub → dispatcher → tracker. The dispatcher shards
	// by email so updates for one user are applied in arrival order.
	tracker := service.NewPaymentTracker()
	dispatcher := queue.NewDispatcher(4, tracker, log)
	dispatcher.Start(ctx)

	hubURL := realtime.HubURL(cfg.Backend.BaseURL, cfg.Backend.HubPath)
	hub := realtime.NewHubClient(hubURL, dispatcher, log)
	defer hub.Close()

	// Interface-typed so an absent Redis stays a nil interface, which the
	// services treat as "feature disabled".
	var cooldowns ports.CooldownKeeper
	var areaCache ports.AreaCache
	if rdb != nil {
		cooldowns = redisdb.NewCooldownKeeper(rdb)
		areaCache = redisdb.NewAreaCache(rdb)
	}

	deps := api.Deps{
		Auth:         service.NewAuthService(backendClient, cooldowns, time.Duration(cfg.Session.ResendCooldown)*time.Second, log),
		Registration: service.NewRegistrationService(backendClient, log),
		Feed:         service.NewFeedService(backendClient, log),
		Orders:       service.NewOrderService(backendClient, log),
		Accounts:     service.NewAccountService(backendClient, log),
		Payments:     service.NewPaymentService(backendClient, hub, tracker, log),
		Catalog:      service.NewCatalogService(backendClient, areaCache, log),
		Store:        session.NewStore(time.Duration(cfg.Session.CookieMaxAge) * time.Second),
		Redis:        rdb,
		Logger:       log,
	}

	e := api.NewRouter(deps)

	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.Backend.BaseURL).Str("hub", hubURL).Msg("gateway listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if rdb != nil {
		_ = rdb.Close()
	}
}
