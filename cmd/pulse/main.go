package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/djcade32/stock-pulse/internal/analyze"
	"github.com/djcade32/stock-pulse/internal/api"
	"github.com/djcade32/stock-pulse/internal/config"
	"github.com/djcade32/stock-pulse/internal/database"
	"github.com/djcade32/stock-pulse/internal/ensure"
	"github.com/djcade32/stock-pulse/internal/marketdata"
	"github.com/djcade32/stock-pulse/internal/store"
	"github.com/djcade32/stock-pulse/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/pulse.local.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting pulse",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"instance_id", cfg.Instance.ID,
		"vendor_url", cfg.Vendor.RestURL,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Connect to database
	logger.Info("connecting to database",
		"host", cfg.Database.Postgres.Host,
		"port", cfg.Database.Postgres.Port,
		"database", cfg.Database.Postgres.Name,
	)

	pool, err := database.Connect(ctx, cfg.Database.Postgres)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Create vendor API client
	vendorClient := api.NewClient(
		cfg.Vendor.RestURL,
		cfg.Vendor.APIToken,
		api.WithLogger(logger),
		api.WithTimeout(cfg.Vendor.Timeout),
		api.WithRetries(cfg.Vendor.MaxRetries, time.Second),
	)

	// Cached market-data accessors
	md := marketdata.New(marketdata.Config{
		QuoteTTL:   cfg.Cache.QuoteTTL,
		LogoTTL:    cfg.Cache.LogoTTL,
		SymbolsTTL: cfg.Cache.SymbolsTTL,
	}, vendorClient, logger)
	md.StartSweepers(ctx, cfg.Cache.SweepInterval)

	// Persistence and per-ticker analyzer
	st := store.New(pool, logger)
	analyzer := analyze.New(analyze.Config{
		Lookback: cfg.Ensure.Lookback,
	}, vendorClient, st, logger)

	// Batch orchestrator
	orchestrator := ensure.New(ensure.Config{
		Concurrency: cfg.Ensure.Concurrency,
		SoftTimeout: cfg.Ensure.SoftTimeout,
	}, analyzer, logger)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: newHandler(pool, md, st, orchestrator, analyzer, logger),
	}

	go func() {
		logger.Info("starting http server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("http server error", "error", err)
		}
	}()

	logger.Info("pulse running",
		"instance_id", cfg.Instance.ID,
		"health_url", fmt.Sprintf("http://localhost:%d/health", cfg.Server.Port),
	)

	// Wait for shutdown
	<-ctx.Done()

	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	server.Shutdown(shutdownCtx)

	logger.Info("pulse stopped")
}
