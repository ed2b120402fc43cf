// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

// Package main provides the FocusNest HTTP server
//
// FocusNest API serves survey analytics over a fixed social-media usage
// dataset: classification and regression model comparison, k-means
// persona clustering, association rule mining, and batch prediction.
//
// @title FocusNest API
// @version 1.0
// @description Survey analytics and subscription modeling platform
// @description
// @description ## Features
// @description
// @description - **Model Comparison**: Five classifiers and four regressors evaluated per request with macro-averaged metrics
// @description - **Persona Clustering**: Seeded k-means++ respondent segmentation with per-cluster profiles
// @description - **Association Mining**: Apriori rule discovery over binary survey answers
// @description - **Batch Prediction**: CSV/XLSX upload scored against a cached trained model, with CSV export
// @description - **Run Archive**: Finished analyses persisted in Badger and listable by kind
// @description
// @description ## Determinism
// @description
// @description Every stochastic step (splits, shuffles, centroid seeding, forests) derives from
// @description the request seed, so identical requests return identical results. Repeated identical
// @description requests are served from a short-lived cache and marked `"cached": true`.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address, with tighter
// @description per-class limits on analysis and upload routes.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message",
// @description     "details": {}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-08-22T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/focusnest/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:3858
// @BasePath /api/v1
// @schemes http
//
// @tag.name Health
// @tag.description Liveness and readiness probes for orchestration
//
// @tag.name Dataset
// @tag.description Canonical dataset inspection, reload, and replacement
//
// @tag.name Analysis
// @tag.description Classification, regression, clustering, and association mining runs
//
// @tag.name Prediction
// @tag.description Batch prediction on uploaded respondent files and CSV export
//
// @tag.name Runs
// @tag.description Archived analysis runs, listable by kind and fetchable by ID
package main
