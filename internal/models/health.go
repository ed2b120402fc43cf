// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package models

import (
	"time"
)

// HealthStatus represents the health check response.
//
// Status is "ok" when a dataset is loaded and every enabled component is
// reachable, "degraded" otherwise. Disabled components report as connected
// false without degrading status.
type HealthStatus struct {
	Status            string     `json:"status"`
	Version           string     `json:"version"`
	DatasetLoaded     bool       `json:"dataset_loaded"`
	DatasetRows       int        `json:"dataset_rows"`
	DatasetLoadedAt   *time.Time `json:"dataset_loaded_at,omitempty"`
	DatabaseConnected bool       `json:"database_connected"`
	StoreConnected    bool       `json:"store_connected"`
	UptimeSeconds     float64    `json:"uptime_seconds"`
}
