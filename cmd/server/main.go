package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"sales-dashboard/internal/config"
	"sales-dashboard/internal/database"
	"sales-dashboard/internal/logging"
	"sales-dashboard/internal/repositories"
	"sales-dashboard/internal/server"
	"sales-dashboard/internal/services"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.Logger)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	repo := repositories.NewSalesTransactionRepository(db.DB)
	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	sales := services.NewSalesService(repo, metrics, cfg.Sales, logger)

	srv := server.New(cfg, server.Dependencies{
		Sales:      sales,
		Health:     db,
		Registerer: prometheus.DefaultRegisterer,
		Gatherer:   prometheus.DefaultGatherer,
		Logger:     logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv.RunBackground(ctx)

	graceful := server.NewGracefulServer(srv.HTTPServer(), logger, cfg.Server.ShutdownTimeout)
	graceful.RegisterShutdownHook(func(ctx context.Context) error {
		logger.Info("closing database pool")
		return db.Close()
	})

	logger.Info("starting sales dashboard API",
		"address", cfg.Address(),
		"environment", cfg.Server.Environment,
		"db_driver", cfg.Database.Driver,
	)
	if err := graceful.Run(ctx); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped gracefully")
}
