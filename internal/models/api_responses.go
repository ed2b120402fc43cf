// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
// It provides consistent structure for both successful and error responses, with metadata
// for observability and caching information.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"model": "logreg", "metrics": {...}},
//	  "metadata": {
//	    "timestamp": "2026-08-20T12:00:00Z",
//	    "compute_time_ms": 45,
//	    "cached": false
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "SCHEMA_MISMATCH",
//	    "message": "prediction rows are missing trained columns",
//	    "details": {"missing_columns": ["daily_minutes"]}
//	  },
//	  "metadata": {"timestamp": "2026-08-20T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability and performance tracking.
//
// Fields:
//   - Timestamp: Server time when response was generated (RFC3339 format)
//   - ComputeTimeMS: Analysis execution time in milliseconds (0 if cached)
//   - Cached: Whether response was served from cache (omitted if false)
//   - RunID: Identifier of the archived run, when the endpoint records one
type Metadata struct {
	Timestamp     time.Time `json:"timestamp"`
	ComputeTimeMS int64     `json:"compute_time_ms,omitempty"`
	Cached        bool      `json:"cached,omitempty"`
	RunID         string    `json:"run_id,omitempty"`
}

// APIError represents an error response with structured error details.
// Provides consistent error format across all API endpoints for better client handling.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid request parameters
//   - DEGENERATE_INPUT: Dataset cannot support the requested analysis
//   - SCHEMA_MISMATCH: Prediction rows lack columns the model was trained on
//   - INVALID_COLUMN_SELECTION: Requested columns unusable for the analysis
//   - NOT_FOUND: Resource doesn't exist
//   - DATASET_ERROR: Dataset loading or parsing failure
//   - INTERNAL_ERROR: Unexpected server failure
//   - RATE_LIMIT_EXCEEDED: Too many requests
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// PaginationInfo contains offset-based pagination metadata for run listings.
// Run archives are small and bounded by retention, so offset pagination is
// sufficient; no cursor machinery is needed.
type PaginationInfo struct {
	Limit      int  `json:"limit"`
	Offset     int  `json:"offset"`
	HasMore    bool `json:"has_more"`
	TotalCount int  `json:"total_count"`
}
