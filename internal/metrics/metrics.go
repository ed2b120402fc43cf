// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - Analysis runs (classification, clustering, association, regression)
// - Dataset loads and reloads
// - Analysis result cache efficiency
// - Run archive writes and value-log GC
// - DuckDB mirror queries
// - API endpoint latency and throughput

var (
	// Analysis Metrics
	AnalysisRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_runs_total",
			Help: "Total number of analysis runs",
		},
		[]string{"kind", "status"}, // status: "ok", "error", "cached"
	)

	AnalysisDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analysis_duration_seconds",
			Help:    "Duration of completed analysis runs in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 15, 60}, // forest fits on wide feature sets can take a while
		},
		[]string{"kind"},
	)

	// Dataset Metrics
	DatasetRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_rows",
			Help: "Number of rows in the active dataset",
		},
	)

	DatasetColumns = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_columns",
			Help: "Number of columns in the active dataset",
		},
	)

	DatasetReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_reloads_total",
			Help: "Total number of dataset load attempts",
		},
		[]string{"status"}, // "ok", "error"
	)

	DatasetLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dataset_load_duration_seconds",
			Help:    "Duration of dataset parsing and profiling in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Prediction Metrics
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "predictions_total",
			Help: "Total number of prediction requests",
		},
		[]string{"status"},
	)

	PredictionBatchRows = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "prediction_batch_rows",
			Help:    "Number of rows per prediction request",
			Buckets: []float64{1, 5, 10, 50, 100, 500, 1000, 5000},
		},
	)

	// Analysis Cache Metrics
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analysis_cache_hits_total",
			Help: "Total number of analysis cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analysis_cache_misses_total",
			Help: "Total number of analysis cache misses",
		},
	)

	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "analysis_cache_entries",
			Help: "Current number of cached analysis results",
		},
	)

	// Run Archive Metrics
	RunsArchived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "runs_archived_total",
			Help: "Total number of analysis runs written to the archive",
		},
		[]string{"kind"},
	)

	ArchiveGCCycles = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "archive_gc_cycles_total",
			Help: "Total number of archive value-log GC cycles",
		},
	)

	// DuckDB Mirror Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB mirror operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // "rebuild", "summary"
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB mirror errors",
		},
		[]string{"operation"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAnalysis records a freshly computed analysis run. Cached responses
// go through RecordAnalysisCached instead, so the duration histogram only
// holds real compute time.
func RecordAnalysis(kind string, duration time.Duration, err error) {
	if err != nil {
		AnalysisRunsTotal.WithLabelValues(kind, "error").Inc()
		return
	}
	AnalysisRunsTotal.WithLabelValues(kind, "ok").Inc()
	AnalysisDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordAnalysisCached records a run served from the analysis cache.
func RecordAnalysisCached(kind string) {
	AnalysisRunsTotal.WithLabelValues(kind, "cached").Inc()
}

// RecordDatasetLoad records a dataset load or reload attempt.
func RecordDatasetLoad(rows, columns int, duration time.Duration, err error) {
	if err != nil {
		DatasetReloads.WithLabelValues("error").Inc()
		return
	}
	DatasetReloads.WithLabelValues("ok").Inc()
	DatasetLoadDuration.Observe(duration.Seconds())
	DatasetRows.Set(float64(rows))
	DatasetColumns.Set(float64(columns))
}

// RecordPrediction records a prediction request and its batch size.
func RecordPrediction(rows int, err error) {
	if err != nil {
		PredictionsTotal.WithLabelValues("error").Inc()
		return
	}
	PredictionsTotal.WithLabelValues("ok").Inc()
	PredictionBatchRows.Observe(float64(rows))
}

// RecordCacheLookup records an analysis cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		CacheHits.Inc()
	} else {
		CacheMisses.Inc()
	}
}

// RecordArchiveSave records a run written to the archive.
func RecordArchiveSave(kind string) {
	RunsArchived.WithLabelValues(kind).Inc()
}

// RecordArchiveGC records one archive value-log GC cycle.
func RecordArchiveGC() {
	ArchiveGCCycles.Inc()
}

// RecordMirrorQuery records a DuckDB mirror operation.
func RecordMirrorQuery(operation string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
