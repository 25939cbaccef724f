// Package main is the entry point for the webbuilder API server.
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

	"webbuilder/internal/cache"
	"webbuilder/internal/config"
	"webbuilder/internal/database"
	"webbuilder/internal/export"
	"webbuilder/internal/handlers"
	"webbuilder/internal/ledger"
	"webbuilder/internal/payments"
	"webbuilder/internal/router"
	"webbuilder/internal/session"
	"webbuilder/internal/store"
)

func main() {
	// Structured logger — text output, debug level in development.
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
		"export_cost", cfg.ExportCost,
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

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db, cfg.WelcomeBonus); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (Redis-compatible cache + session store).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Initialize session store backed by Valkey.
	// In non-development environments, mark session cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	// Initialize data stores and the credit ledger.
	userStore := store.NewUserStore(db)
	projectStore := store.NewProjectStore(db)
	exportStore := store.NewExportStore(db)
	creditLedger := ledger.New(db)

	// Preview bundles are cached in Valkey keyed by project save time.
	previewCache := cache.NewPreviewCache(valkeyClient, cache.DefaultPreviewTTL)

	// The export orchestrator ties generation, the debit, and the export
	// record into one commit.
	orchestrator := export.New(db, projectStore, exportStore, creditLedger, previewCache, cfg.ExportCost)

	// Payment gateway — simulated outside production.
	var gateway payments.Gateway = payments.SimulatedGateway{}

	// Create handler groups with their dependencies.
	authHandlers := handlers.NewAuth(sessionStore, userStore, creditLedger, cfg.WelcomeBonus)
	projectHandlers := handlers.NewProjects(projectStore, exportStore)
	exportHandlers := handlers.NewExport(orchestrator)
	creditHandlers := handlers.NewCredits(creditLedger, gateway)

	// Set up the Chi router with all middleware and routes.
	r := router.New(sessionStore, authHandlers, projectHandlers, exportHandlers, creditHandlers)

	// Create the HTTP server with sensible timeouts. WriteTimeout covers
	// streaming a full export archive on a slow connection.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
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
