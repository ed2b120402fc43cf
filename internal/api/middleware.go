// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/focusnest/internal/config"
	"github.com/tomtom215/focusnest/internal/logging"
	"github.com/tomtom215/focusnest/internal/metrics"
)

// Middleware builds the Chi middleware stack from the security
// configuration: CORS, per-group rate limits, and security headers.
type Middleware struct {
	cfg  config.SecurityConfig
	cors func(http.Handler) http.Handler
}

// NewMiddleware creates the middleware factory. The CORS handler is built
// once; rate limiters are built per route group so each group keeps its
// own counters.
func NewMiddleware(cfg config.SecurityConfig) *Middleware {
	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           86400,
	})

	return &Middleware{
		cfg:  cfg,
		cors: corsHandler,
	}
}

// CORS returns the Chi-compatible CORS middleware.
func (m *Middleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimit returns an IP-keyed limiter using the configured default
// budget. With rate limiting disabled it is a no-op.
func (m *Middleware) RateLimit() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitConfig{
		Requests: m.cfg.RateLimitReqs,
		Window:   m.cfg.RateLimitWindow,
	})
}

// RateLimitConfig defines the budget for one route group.
type RateLimitConfig struct {
	// Requests allowed per Window per client IP
	Requests int
	Window   time.Duration
}

// Per-group rate limit budgets. Analyses recompute over the whole dataset
// on a cache miss and uploads replace it, so both get tighter budgets
// than reads; health stays permissive for monitoring probes.
var (
	// RateLimitAnalysis bounds classification, clustering, association,
	// regression, and prediction runs.
	RateLimitAnalysis = RateLimitConfig{Requests: 30, Window: time.Minute}

	// RateLimitUpload bounds dataset replacement (reload and upload).
	RateLimitUpload = RateLimitConfig{Requests: 10, Window: time.Minute}

	// RateLimitHealth keeps health probes cheap to call from monitors.
	RateLimitHealth = RateLimitConfig{Requests: 1000, Window: time.Minute}
)

// RateLimitCustom returns an IP-keyed limiter for one budget. Exceeding
// the budget produces the standard error envelope with a 429.
func (m *Middleware) RateLimitCustom(rl RateLimitConfig) func(http.Handler) http.Handler {
	if m.cfg.RateLimitDisabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		rl.Requests,
		rl.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			respondError(w, http.StatusTooManyRequests, ErrCodeRateLimit,
				"Rate limit exceeded, retry later", nil)
		}),
	)
}

// RateLimitAnalysis returns the limiter for analysis endpoints.
func (m *Middleware) RateLimitAnalysis() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitAnalysis)
}

// RateLimitUpload returns the limiter for dataset replacement endpoints.
func (m *Middleware) RateLimitUpload() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitUpload)
}

// RateLimitHealth returns the limiter for health endpoints.
func (m *Middleware) RateLimitHealth() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitHealth)
}

// APISecurityHeaders adds security headers to API responses. HSTS is set
// only when the request arrived over TLS or a TLS-terminating proxy.
func APISecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestIDWithLogging propagates X-Request-ID and binds a request-scoped
// logger into the context, so every log line inside a handler carries the
// request ID without threading it by hand.
func RequestIDWithLogging() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = logging.GenerateRequestID()
			}

			ctx := logging.ContextWithRequestID(r.Context(), requestID)
			ctx = logging.ContextWithLogger(ctx, logging.With().
				Str("request_id", requestID).
				Logger())

			w.Header().Set("X-Request-ID", requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// metricsMiddleware records request count, latency, and in-flight gauge
// per route pattern. The Chi pattern is resolved after the handler runs,
// once URL params are bound, so /api/v1/runs/{id} stays one series
// instead of one per ID.
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		ww := &statusResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(ww, r)

		pattern := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			pattern = rctx.RoutePattern()
		}
		metrics.RecordAPIRequest(r.Method, pattern, strconv.Itoa(ww.statusCode), time.Since(start))
	})
}

// statusResponseWriter wraps http.ResponseWriter to capture the status code.
type statusResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code and calls the underlying WriteHeader.
func (w *statusResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}
