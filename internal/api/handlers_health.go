// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/focusnest/internal/models"
)

// Version is the reported service version, overridden at build time via
// -ldflags "-X github.com/tomtom215/focusnest/internal/api.Version=...".
var Version = "dev"

// Health handles health check requests
//
// @Summary Get system health status
// @Description Returns health status including dataset state, analytical mirror connectivity, run archive connectivity, and uptime. Disabled components report connected=false without degrading status.
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Health status retrieved successfully"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	table, loaded := h.store.Current()

	mirrorConnected := h.mirror != nil && h.mirror.Ping(r.Context()) == nil
	archiveConnected := h.archive != nil

	// Disabled components never degrade status; a configured but
	// unreachable mirror does.
	status := "ok"
	if !loaded {
		status = "degraded"
	} else if h.config.Database.Enabled && !mirrorConnected {
		status = "degraded"
	}

	health := models.HealthStatus{
		Status:            status,
		Version:           Version,
		DatasetLoaded:     loaded,
		DatabaseConnected: mirrorConnected,
		StoreConnected:    archiveConnected,
		UptimeSeconds:     time.Since(h.startTime).Seconds(),
	}
	if loaded {
		health.DatasetRows = table.Rows()
		loadedAt := table.LoadedAt()
		health.DatasetLoadedAt = &loadedAt
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style)
//
// @Summary Liveness probe
// @Description Returns 200 OK if the process is alive, regardless of external dependencies.
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
//
// @Summary Readiness probe
// @Description Returns 200 when the service can run analyses, meaning a dataset is loaded. Returns 503 before the first successful load.
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse "Service is ready"
// @Failure 503 {object} models.APIResponse "Dataset not loaded yet"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	table, loaded := h.store.Current()
	if !loaded {
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status: "error",
			Metadata: models.Metadata{
				Timestamp: time.Now(),
			},
			Error: &models.APIError{
				Code:    ErrCodeDatasetError,
				Message: "Dataset not loaded yet",
			},
		})
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"ready": true,
			"rows":  table.Rows(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
