// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tomtom215/focusnest/internal/config"
)

// okHandler is a minimal terminal handler for middleware chains.
var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

// ============================================================================
// Security Headers
// ============================================================================

func TestAPISecurityHeaders_PlainHTTP(t *testing.T) {
	handler := APISecurityHeaders()(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dataset", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	tests := []struct {
		header string
		want   string
	}{
		{"X-Content-Type-Options", "nosniff"},
		{"X-Frame-Options", "DENY"},
		{"Referrer-Policy", "strict-origin-when-cross-origin"},
	}
	for _, tt := range tests {
		if got := rec.Header().Get(tt.header); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.header, got, tt.want)
		}
	}
	if got := rec.Header().Get("Strict-Transport-Security"); got != "" {
		t.Errorf("Strict-Transport-Security = %q on plain HTTP, want unset", got)
	}
}

func TestAPISecurityHeaders_BehindTLSProxy(t *testing.T) {
	handler := APISecurityHeaders()(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dataset", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Strict-Transport-Security"); got == "" {
		t.Error("Strict-Transport-Security unset behind a TLS-terminating proxy")
	}
}

// ============================================================================
// Request ID
// ============================================================================

func TestRequestIDWithLogging_GeneratesID(t *testing.T) {
	handler := RequestIDWithLogging()(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got == "" {
		t.Error("X-Request-ID was not generated")
	}
}

func TestRequestIDWithLogging_PropagatesID(t *testing.T) {
	handler := RequestIDWithLogging()(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("X-Request-ID", "upstream-trace-7")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "upstream-trace-7" {
		t.Errorf("X-Request-ID = %q, want upstream-trace-7", got)
	}
}

// ============================================================================
// Rate Limiting
// ============================================================================

func TestRateLimitCustom_EnforcesBudget(t *testing.T) {
	mw := NewMiddleware(config.SecurityConfig{
		RateLimitReqs:   1000,
		RateLimitWindow: time.Minute,
		CORSOrigins:     []string{"*"},
	})
	handler := mw.RateLimitCustom(RateLimitConfig{Requests: 2, Window: time.Minute})(okHandler)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dataset", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want %d", i+1, rec.Code, http.StatusOK)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dataset", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	requireError(t, rec, http.StatusTooManyRequests, ErrCodeRateLimit)
}

func TestRateLimitCustom_Disabled(t *testing.T) {
	mw := NewMiddleware(config.SecurityConfig{
		RateLimitDisabled: true,
		CORSOrigins:       []string{"*"},
	})
	handler := mw.RateLimitCustom(RateLimitConfig{Requests: 1, Window: time.Minute})(okHandler)

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dataset", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d with limiting disabled, want %d", i+1, rec.Code, http.StatusOK)
		}
	}
}

// ============================================================================
// CORS
// ============================================================================

func TestCORS_Preflight(t *testing.T) {
	mw := NewMiddleware(config.SecurityConfig{
		RateLimitReqs:   1000,
		RateLimitWindow: time.Minute,
		CORSOrigins:     []string{"*"},
	})
	handler := mw.CORS()(okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/analysis/classification", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}
