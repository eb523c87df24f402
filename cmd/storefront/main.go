// Command storefront runs the furniture shop gateway: it terminates browser
// sessions, proxies catalog and order traffic to the commerce backend, and
// keeps carts, credentials and wishlists on this side of the fence.
//
// @title        Furniture Storefront Gateway
// @version      1.0
// @description  Session-aware gateway in front of the furniture commerce API.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/api"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/service"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/infrastructure/backend"
	mongodb "github.com/aravindhandhana31-ship-it/furniture-frontend/internal/infrastructure/db/mongo"
	redisdb "github.com/aravindhandhana31-ship-it/furniture-frontend/internal/infrastructure/db/redis"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/pkg/config"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/pkg/logger"
)

func main() {
	_ = godotenv.Load() // silently ignore if .env doesn't exist

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Stores ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	// --- Backend adapter ---
	client := backend.New(backend.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.BackendTimeout,
		Logger:  log,
	})

	// --- Services ---
	credentials := redisdb.NewCredentialStore(rdb, cfg.CredentialTTL)
	sessions := service.NewSessionManager(credentials, client, log)
	go sessions.Sweep(ctx, 5*time.Minute, cfg.SessionIdleTTL)
	catalog := service.NewCatalog(client, redisdb.NewCatalogCache(rdb), cfg.CatalogCacheTTL, cfg.ImageBaseURL, log)
	checkout := service.NewCheckout(client, log)
	wishlist := service.NewWishlist(mongodb.NewWishlistRepository(db), log)

	e := api.NewRouter(api.Dependencies{
		Sessions: sessions,
		Catalog:  catalog,
		Checkout: checkout,
		Wishlist: wishlist,
		Orders:   client,
		Mongo:    db,
		Redis:    rdb,
		Logger:   log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.APIBaseURL).Msg("storefront gateway listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
