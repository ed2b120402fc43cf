// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

// Package api exposes the survey analytics pipeline over HTTP.
//
// # Overview
//
// The package wires Chi routes to the analysis engines: dataset inspection
// and replacement, feature selection, classifier and regressor evaluation,
// k-means persona clustering, association rule mining, and prediction on
// uploaded respondent files. Every analysis endpoint follows the same
// lifecycle:
//
//  1. Decode and validate the request body (go-playground/validator).
//  2. Take the current dataset snapshot from the dataset store.
//  3. Check the result cache keyed on run kind, dataset fingerprint, and
//     the full parameter set.
//  4. On a miss, run the analysis, archive the finished run in Badger,
//     and cache the result.
//
// Responses use the envelope in models.APIResponse: a status string, the
// payload, metadata (timestamp, compute time, cache flag, run ID), and a
// structured error with a machine-readable code. Degenerate inputs and
// schema mismatches map to 422; bad column selections and validation
// failures map to 400. Analyses that produce no output, such as a mining
// run where no rule clears the thresholds, still return 200 with an
// explicit empty marker in the payload.
//
// # Routing
//
// Router.SetupChi builds the full route tree: health probes, Prometheus
// metrics, Swagger UI, dataset endpoints under /api/v1/dataset, analysis
// endpoints under /api/v1/analysis, prediction endpoints under
// /api/v1/predict, and the run archive under /api/v1/runs. Rate limits
// are applied per group; uploads and analyses get tighter budgets than
// reads.
//
// # Concurrency
//
// Handlers are safe for concurrent use. The dataset store hands out
// immutable snapshots, so an upload or reload mid-analysis never mutates
// the table an in-flight run is reading. The last prediction kept for
// CSV export is guarded by its own mutex.
package api
