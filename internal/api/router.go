// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Router wires handlers and middleware into the Chi route tree.
type Router struct {
	handler *Handler
	mw      *Middleware
}

// NewRouter creates a Router for the given handler set.
func NewRouter(handler *Handler, mw *Middleware) *Router {
	return &Router{handler: handler, mw: mw}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	// Applied to ALL routes in order
	r.Use(RequestIDWithLogging())  // Add X-Request-ID header with logging context
	r.Use(chimiddleware.RealIP)    // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer) // Recover from panics
	r.Use(router.mw.CORS())        // CORS must be global to handle OPTIONS preflight

	// ========================
	// Health Endpoints
	// ========================
	// Permissive rate limiting (1000/min) so monitors can poll freely
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.mw.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	// ========================
	// Core API Endpoints
	// ========================
	// One mount with per-group rate limits; nested groups instead of
	// sibling mounts so GET /dataset is not shadowed by the write routes.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(metricsMiddleware)

		// Read endpoints - default rate limit
		r.Group(func(r chi.Router) {
			r.Use(router.mw.RateLimit())

			r.Get("/dataset", router.handler.Dataset)
			r.Get("/dataset/summary", router.handler.DatasetSummary)
			r.Get("/features", router.handler.Features)
			r.Get("/runs", router.handler.RunsList)
			r.Get("/runs/{id}", router.handler.RunGet)
			r.Get("/predict/export", router.handler.PredictExport)
		})

		// Dataset replacement - strict rate limiting (10/min), swaps touch
		// the mirror and clear the result cache
		r.Group(func(r chi.Router) {
			r.Use(router.mw.RateLimitUpload())

			r.Post("/dataset/reload", router.handler.DatasetReload)
			r.Post("/dataset/upload", router.handler.DatasetUpload)
		})

		// Analysis endpoints - moderate rate limiting (30/min), compute heavy
		r.Group(func(r chi.Router) {
			r.Use(router.mw.RateLimitAnalysis())

			r.Post("/analysis/classification", router.handler.Classification)
			r.Post("/analysis/clustering", router.handler.Clustering)
			r.Post("/analysis/association", router.handler.Association)
			r.Post("/analysis/regression", router.handler.Regression)
			r.Post("/predict", router.handler.Predict)
		})
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
