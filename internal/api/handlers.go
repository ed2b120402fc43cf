// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package api

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/focusnest/internal/analytics"
	"github.com/tomtom215/focusnest/internal/cache"
	"github.com/tomtom215/focusnest/internal/cluster"
	"github.com/tomtom215/focusnest/internal/config"
	"github.com/tomtom215/focusnest/internal/database"
	"github.com/tomtom215/focusnest/internal/dataset"
	"github.com/tomtom215/focusnest/internal/logging"
	"github.com/tomtom215/focusnest/internal/mining"
	runstore "github.com/tomtom215/focusnest/internal/store"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files by endpoint group:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_health.go: Health and readiness probes
//   - handlers_dataset.go: Dataset inspection, reload, upload, features
//   - handlers_analysis.go: Classification, clustering, association, regression
//   - handlers_predict.go: Prediction on uploaded files and CSV export
//   - handlers_runs.go: Run archive listing and retrieval
//
// The mirror and archive are optional; handlers report the affected
// endpoints as unavailable when either is nil instead of failing startup.
type Handler struct {
	config    *config.Config
	store     *dataset.Store
	engine    *analytics.Engine
	profiler  *cluster.Profiler
	miner     *mining.Miner
	mirror    *database.DB
	archive   *runstore.Archive
	cache     *cache.Cache
	logger    zerolog.Logger
	startTime time.Time

	predMu         sync.Mutex
	lastPrediction *predictionExport
}

// NewHandler creates the API handler. The result cache is sized and aged
// from the cache configuration; everything else is injected.
//
// Example:
//
//	handler := api.NewHandler(cfg, store, engine, profiler, miner, mirror, archive)
//	router := api.NewRouter(handler, api.NewMiddleware(cfg.Security))
//	http.ListenAndServe(cfg.Addr(), router.SetupChi())
func NewHandler(
	cfg *config.Config,
	store *dataset.Store,
	engine *analytics.Engine,
	profiler *cluster.Profiler,
	miner *mining.Miner,
	mirror *database.DB,
	archive *runstore.Archive,
) *Handler {
	return &Handler{
		config:    cfg,
		store:     store,
		engine:    engine,
		profiler:  profiler,
		miner:     miner,
		mirror:    mirror,
		archive:   archive,
		cache:     cache.New(cfg.Cache.TTL, cfg.Cache.MaxEntries),
		logger:    logging.WithComponent("api"),
		startTime: time.Now(),
	}
}

// ClearCache invalidates all cached analysis results. Dataset replacement
// calls this so no stale result outlives the table it was computed on.
func (h *Handler) ClearCache() {
	h.cache.Clear()
	h.logger.Info().Msg("Analysis cache cleared")
}
