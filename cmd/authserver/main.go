// Package main implements the entry point for the auth service: a stateless
// credential API (signup and login) over the MongoDB user store.
package main

import (
	"context"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/lawdept/justice-api/internal/config"
	"github.com/lawdept/justice-api/internal/platform/logger"
	"github.com/lawdept/justice-api/internal/platform/mongodb"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("authserver failed: %v", err)
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
		"log_level", cfg.Server.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// An unreachable store is logged once, not retried: the process keeps
	// serving and requests fail at the store layer until the store returns.
	client, err := mongodb.Connect(ctx, cfg.Mongo.URI)
	if err != nil {
		appLogger.Error("mongodb connection failed", slog.String("error", err.Error()))
		if client == nil {
			return err
		}
	} else {
		appLogger.Info("connected to mongodb")
	}
	defer func() {
		if err := mongodb.Disconnect(client); err != nil {
			appLogger.Error("failed to disconnect mongodb", slog.String("error", err.Error()))
		}
	}()

	router := newRouter(ctx, client, cfg, appLogger)

	return serve(ctx, router, cfg.Server.Port, appLogger)
}
