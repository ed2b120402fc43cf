// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

/*
Package metrics provides Prometheus metrics collection and export for observability.

All metrics are registered on the default registry via promauto and exposed
at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8087/metrics

# Available Metrics

Analysis Metrics:
  - analysis_runs_total: Analysis runs (counter)
    Labels: kind (classification, clustering, association, regression),
    status (ok, error, cached)
  - analysis_duration_seconds: Compute time of completed runs (histogram)
    Labels: kind

Dataset Metrics:
  - dataset_rows, dataset_columns: Shape of the active dataset (gauges)
  - dataset_reloads_total: Load attempts (counter), Labels: status
  - dataset_load_duration_seconds: Parse and profile time (histogram)

Prediction Metrics:
  - predictions_total: Prediction requests (counter), Labels: status
  - prediction_batch_rows: Rows per request (histogram)

Cache Metrics:
  - analysis_cache_hits_total / analysis_cache_misses_total (counters)
  - analysis_cache_entries: Current cached results (gauge)

Archive Metrics:
  - runs_archived_total: Runs persisted to Badger (counter), Labels: kind
  - archive_gc_cycles_total: Value-log GC cycles (counter)

DuckDB Mirror Metrics:
  - duckdb_query_duration_seconds: Mirror operations (histogram)
    Labels: operation (rebuild, summary)
  - duckdb_query_errors_total: Failed mirror operations (counter)

API Metrics:
  - api_requests_total: Requests (counter), Labels: method, endpoint, status_code
  - api_request_duration_seconds: Latency (histogram), Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)

# Usage Example

Recording an analysis run:

	start := time.Now()
	result, err := evaluator.Run(ctx, table, params)
	metrics.RecordAnalysis("classification", time.Since(start), err)

Example PromQL queries:

	# Analysis run rate by kind
	rate(analysis_runs_total[5m])

	# p95 classification latency
	histogram_quantile(0.95, rate(analysis_duration_seconds_bucket{kind="classification"}[5m]))

	# Cache hit rate
	sum(rate(analysis_cache_hits_total[5m])) / (sum(rate(analysis_cache_hits_total[5m])) + sum(rate(analysis_cache_misses_total[5m])))

# Cardinality

Endpoint labels use the route pattern, never raw paths, and run IDs or
column names never appear as label values. The kind label is bounded by the
four analysis kinds.

All recording helpers are safe for concurrent use; the Prometheus client
handles synchronization internally.
*/
package metrics
