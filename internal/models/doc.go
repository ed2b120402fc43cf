// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

// Package models defines the shared data structures of the FocusNest API:
// the response envelope, error format, request DTOs with validation tags,
// dataset descriptions, and archived run records.
//
// Analysis result payloads (evaluation reports, cluster profiles, mined
// rules) are defined by their producing packages; models only carries the
// shapes that cross multiple layers (API, cache, archive).
package models
