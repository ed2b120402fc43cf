// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

// Package logging provides centralized zerolog-based structured logging for FocusNest.
//
// The package provides:
//   - Zero-allocation structured logging via zerolog
//   - JSON output format for production (machine-parseable)
//   - Console output format for development (human-readable)
//   - Request-ID propagation through context for HTTP handlers
//   - slog adapter for Suture v4 integration
//
// See logger.go for initialization and the package-level logging helpers,
// context.go for request-ID plumbing, and slog_adapter.go for the
// slog.Handler bridge used by the supervisor tree.
package logging
