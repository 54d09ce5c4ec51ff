// Package main is the entry point for the I Am Feeling API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"iamfeeling/internal/cache"
	"iamfeeling/internal/config"
	"iamfeeling/internal/database"
	"iamfeeling/internal/handlers"
	"iamfeeling/internal/middleware"
	"iamfeeling/internal/router"
	"iamfeeling/internal/store"
	"iamfeeling/internal/token"
)

func main() {
	// Structured logger — debug level so request logs show in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Ensure the admin account exists (no-op if already present).
	if err := database.SeedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		slog.Error("failed to seed admin account", "error", err)
		os.Exit(1)
	}

	// Seed development content (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.SeedDevContent(db); err != nil {
			slog.Error("failed to seed development content", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (Redis-compatible cache).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Projection cache for the public feelings endpoints.
	feelingsCache := cache.NewFeelingsCache(valkeyClient, cache.DefaultFeelingsTTL)

	// Initialize data stores.
	adminStore := store.NewAdminStore(db)
	suraStore := store.NewSuraStore(db)
	verseStore := store.NewVerseStore(db)
	duaStore := store.NewDuaStore(db)
	feelingStore := store.NewFeelingStore(db)

	// Token manager and authentication middleware.
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTTTL)
	authn := middleware.NewAuthenticator(tokens, adminStore)

	// Create handler groups with their dependencies.
	authHandlers := handlers.NewAuth(adminStore, tokens)
	adminHandlers := handlers.NewAdmin(suraStore, verseStore, duaStore, feelingStore, feelingsCache)
	publicHandlers := handlers.NewPublic(feelingStore, suraStore, verseStore, duaStore, feelingsCache)

	// Set up the Chi router with all middleware and routes.
	r := router.New(cfg.Origins(), authn, authHandlers, adminHandlers, publicHandlers)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
