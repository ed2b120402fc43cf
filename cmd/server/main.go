// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

// Package main is the entry point for the FocusNest server application.
//
// FocusNest is a self-hosted survey analytics platform. It loads a fixed
// social-media usage survey, compares classification and regression
// models on it, segments respondents into personas with k-means, mines
// association rules between binary answers, and scores uploaded
// respondent files against a trained subscription model.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. Dataset: Load the canonical survey CSV into the in-memory snapshot store
//  3. DuckDB Mirror (optional): Mirror the dataset for SQL-backed summaries
//  4. Run Archive (optional): Open the Badger store for finished analysis runs
//  5. Model Registry: Register the shipped classifiers and regressors
//  6. Supervisor Tree: Suture v4 process supervision
//  7. HTTP Server: Chi router with middleware stack and Swagger documentation
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables (see internal/config for the full mapping)
//   - Config file (config.yaml)
//   - Built-in defaults
//
// Core environment variables:
//
//	HTTP_PORT=3858                   # HTTP server port
//	DATASET_PATH=/data/survey.csv    # Canonical survey dataset
//	DATASET_TARGET_COLUMN=willing_to_subscribe
//	DUCKDB_ENABLED=true              # DuckDB mirror for SQL summaries
//	RUNSTORE_ENABLED=true            # Badger archive for finished runs
//	LOG_LEVEL=info                   # trace, debug, info, warn, error
//	LOG_FORMAT=json                  # json or console
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (shutdown timeout)
//   - Closes the run archive and DuckDB mirror
//   - Reports any services that failed to stop
//
// # Example Usage
//
// Development:
//
//	export DATASET_PATH=./testdata/survey.csv
//	export LOG_FORMAT=console
//	go run ./cmd/server
//
// Production:
//
//	export DATASET_PATH=/data/survey.csv
//	export ENVIRONMENT=production
//	export CORS_ORIGINS=https://focusnest.example.com
//	./focusnest
//
// # API Documentation
//
// Swagger documentation is available at /swagger/index.html when the
// server is running.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/focusnest/docs" // Import generated swagger docs
	"github.com/tomtom215/focusnest/internal/analytics"
	"github.com/tomtom215/focusnest/internal/api"
	"github.com/tomtom215/focusnest/internal/cluster"
	"github.com/tomtom215/focusnest/internal/config"
	"github.com/tomtom215/focusnest/internal/database"
	"github.com/tomtom215/focusnest/internal/dataset"
	"github.com/tomtom215/focusnest/internal/logging"
	"github.com/tomtom215/focusnest/internal/mining"
	runstore "github.com/tomtom215/focusnest/internal/store"
	"github.com/tomtom215/focusnest/internal/supervisor"
	"github.com/tomtom215/focusnest/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Msg("Starting FocusNest with supervisor tree")

	logging.Info().
		Str("dataset_path", cfg.Dataset.Path).
		Str("target", cfg.Dataset.TargetColumn).
		Str("environment", cfg.Server.Environment).
		Bool("database_enabled", cfg.Database.Enabled).
		Bool("store_enabled", cfg.Store.Enabled).
		Msg("Configuration loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The dataset is the canonical input for every analysis; refusing to
	// start without it beats serving 503s until someone notices.
	store := dataset.NewStore(cfg.Dataset)
	table, err := store.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load dataset")
	}

	// Optional DuckDB mirror for SQL-backed dataset summaries
	var mirror *database.DB
	if cfg.Database.Enabled {
		mirror, err = database.New(&cfg.Database)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize DuckDB mirror")
		}
		defer func() {
			if err := mirror.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing DuckDB mirror")
			}
		}()
		if err := mirror.Rebuild(ctx, table); err != nil {
			logging.Fatal().Err(err).Msg("Failed to mirror dataset into DuckDB")
		}
		logging.Info().Str("path", cfg.Database.Path).Msg("DuckDB mirror initialized")
	} else {
		logging.Info().Msg("DuckDB mirror disabled (DUCKDB_ENABLED=false)")
	}

	// Optional Badger archive for finished analysis runs
	var archive *runstore.Archive
	if cfg.Store.Enabled {
		archive, err = runstore.Open(cfg.Store)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to open run archive")
		}
		defer func() {
			if err := archive.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing run archive")
			}
		}()
		logging.Info().
			Str("path", cfg.Store.Path).
			Dur("retention", cfg.Store.Retention).
			Msg("Run archive opened")
	} else {
		logging.Info().Msg("Run archive disabled (RUNSTORE_ENABLED=false)")
	}

	engine := analytics.NewEngine(cfg.Analysis)
	if err := registerAlgorithms(engine); err != nil {
		logging.Fatal().Err(err).Msg("Failed to register models")
	}
	logging.Info().
		Strs("classifiers", engine.ClassifierNames()).
		Strs("regressors", engine.RegressorNames()).
		Msg("Model registry populated")

	profiler := cluster.NewProfiler(cfg.Analysis)
	miner := mining.NewMiner(cfg.Analysis)

	handler := api.NewHandler(cfg, store, engine, profiler, miner, mirror, archive)
	middleware := api.NewMiddleware(cfg.Security)

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	router := api.NewRouter(handler, middleware)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// === SUPERVISOR TREE ===

	treeConfig := supervisor.DefaultTreeConfig()
	treeConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree, err := supervisor.NewTree(logging.NewSlogLogger(), treeConfig)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build supervisor tree")
	}

	// Data layer services
	if archive != nil {
		tree.AddDataService(services.NewArchiveGCService(archive, cfg.Store.GCInterval))
		logging.Info().Dur("interval", cfg.Store.GCInterval).Msg("Archive GC service added")
	}

	// API layer services
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// === START SUPERVISOR TREE ===

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
