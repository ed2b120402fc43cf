// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

// Package services adapts FocusNest components to the suture.Service
// interface. Each wrapper translates a component's own lifecycle into the
// single blocking Serve(ctx) call suture supervises: start the component,
// wait for cancellation, stop it cleanly. Wrappers depend on small local
// interfaces rather than concrete types so tests can drive them with
// fakes.
package services
