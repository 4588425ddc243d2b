// Package main implements the entry point for the case tracking service:
// an HTTP API over the relational case store, with an idempotent schema
// initializer run once after the startup connection succeeds.
package main

import (
	"context"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/lawdept/justice-api/internal/config"
	"github.com/lawdept/justice-api/internal/platform/logger"
	"github.com/lawdept/justice-api/internal/platform/postgres"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("caseserver failed: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return err
	}

	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database", cfg.Database.Name)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The startup connection retries on a fixed interval; per-request
	// queries are never retried.
	policy := postgres.RetryPolicy{
		Interval:    cfg.Database.RetryInterval,
		MaxAttempts: cfg.Database.MaxAttempts,
	}

	db, err := postgres.Connect(ctx, cfg.Database.DSN(), policy, appLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("failed to close database", slog.String("error", err.Error()))
		}
	}()

	// Table creation failure is deliberately non-fatal: the process keeps
	// serving and queries surface errors at the store layer.
	if err := postgres.EnsureSchema(ctx, db, appLogger); err != nil {
		appLogger.Warn("continuing without schema initialization")
	}

	router := newRouter(db, cfg, appLogger)

	return serve(ctx, router, cfg.Server.Port, appLogger)
}
