// Copyright (c) 2026 Featherworks. All rights reserved.

// Command api is the entry point for the Aviary HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Initialize the blob store (S3 or in-memory fallback).
//  7. Wire HTTP handlers and warm the catalog snapshots.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/featherworks/aviary/internal/admin"
	"github.com/featherworks/aviary/internal/api"
	"github.com/featherworks/aviary/internal/cart"
	"github.com/featherworks/aviary/internal/catalog"
	"github.com/featherworks/aviary/internal/catalog/apparel"
	"github.com/featherworks/aviary/internal/catalog/article"
	"github.com/featherworks/aviary/internal/catalog/book"
	"github.com/featherworks/aviary/internal/catalog/species"
	"github.com/featherworks/aviary/internal/orders"
	"github.com/featherworks/aviary/internal/platform/blob"
	"github.com/featherworks/aviary/internal/platform/config"
	"github.com/featherworks/aviary/internal/platform/constants"
	"github.com/featherworks/aviary/internal/platform/migration"
	pgstore "github.com/featherworks/aviary/internal/platform/postgres"
	redisstore "github.com/featherworks/aviary/internal/platform/redis"
	"github.com/featherworks/aviary/internal/preview"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[Aviary] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Blob Store ─────────────────────────────────────────────────────
	var blobs blob.Store
	if cfg.S3Bucket != "" {
		s3Store, err := blob.NewS3(startupCtx, blob.S3Config{
			Bucket:        cfg.S3Bucket,
			Region:        cfg.S3Region,
			Endpoint:      cfg.S3Endpoint,
			PublicBaseURL: cfg.S3PublicURL,
		}, log)
		must(log, err, "initialize s3 blob store")
		blobs = s3Store
	} else {
		log.Warn("no S3 bucket configured, using in-memory blob store")
		blobs = blob.NewMemory("/uploads")
	}

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	speciesService := species.NewService(species.NewPostgresRepository(pool), log)
	articleService := article.NewService(article.NewPostgresRepository(pool), log)
	bookService := book.NewService(book.NewPostgresRepository(pool), log)
	apparelService := apparel.NewService(apparel.NewPostgresRepository(pool), log)
	ordersService := orders.NewService(orders.NewPostgresRepository(pool), log)

	catalogStore := catalog.NewStore(speciesService, articleService, bookService, apparelService, log)
	catalogStore.Load(startupCtx)

	cartService := cart.NewService(cart.NewRedisStore(rdb), log)
	previewService := preview.NewService(nil, log)

	registry := admin.NewRegistry(
		speciesService, articleService, bookService, apparelService,
		ordersService, catalogStore, log,
	)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Catalog:   catalog.NewHandler(catalogStore),
		Cart:      cart.NewHandler(cartService),
		Orders:    orders.NewHandler(ordersService),
		Preview:   preview.NewHandler(previewService),
		Admin:     admin.NewHandler(registry, admin.NewSessions(), blobs),
	}

	server := api.NewServer(startupCtx, cfg, log, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
