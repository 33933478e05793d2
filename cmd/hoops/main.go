package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fortuna/hoops/internal/api/rest"
	"github.com/fortuna/hoops/internal/config"
	"github.com/fortuna/hoops/internal/logging"
	"github.com/fortuna/hoops/internal/metrics"
	"github.com/fortuna/hoops/internal/store"
)

const (
	serviceName    = "hoops"
	serviceVersion = "2.0.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid configuration")
	}

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	logging.Info().Str("service", serviceName).Str("version", serviceVersion).Msg("Starting basketball stats API")

	// The pool is sized once here and never adjusted
	db, err := store.NewDatabase(cfg.DSN(), cfg.PoolSize)
	if err != nil {
		logging.Fatal().Err(err).Str("host", cfg.DBHost).Str("database", cfg.DBName).Msg("Failed to create connection pool")
	}
	defer db.Close()

	if err := metrics.RegisterDBStats(db.DB(), cfg.DBName); err != nil {
		logging.Warn().Err(err).Msg("Pool metrics unavailable")
	}

	logging.Info().Int("pool_size", cfg.PoolSize).Str("host", cfg.DBHost).Msg("Connected to database pool")

	server := rest.NewServer(cfg.HTTPPort, db, serviceVersion)
	serverErr := make(chan error, 1)
	go func() {
		logging.Info().Str("port", cfg.HTTPPort).Msg("REST API server listening")
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logging.Info().Str("signal", sig.String()).Msg("Shutting down")
	case err := <-serverErr:
		logging.Error().Err(err).Msg("REST server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("REST API server shutdown error")
	}

	logging.Info().Msg("Stopped")
}
