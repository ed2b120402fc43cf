// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

/*
Package cache provides thread-safe in-memory caching with TTL support.

The cache sits between the HTTP layer and the analysis pipeline: finished
analysis results are stored under a key derived from the run kind, the
dataset fingerprint, and the run parameters, so a repeated request with
identical parameters is served without refitting any model. The pipeline
itself never touches the cache.

# Overview

The cache provides:
  - Thread-safe concurrent access (sync.RWMutex)
  - Time-to-live (TTL) expiration with lazy checks on Get
  - A background sweep so abandoned keys do not accumulate
  - A capacity cap that evicts the soonest-expiring entry first
  - Hit/miss/eviction counters for the stats endpoint

# Cache Keys

Keys are built with Key, which hashes the parameters over their JSON form
and embeds the dataset fingerprint:

	key := cache.Key("classification", table.Fingerprint(), params)

Two requests with equal parameter structs land on the same key; any change
to the dataset shifts every key, so results can never be served across a
reload even before the explicit Clear.

# Usage

	results := cache.New(5*time.Minute, 256)

	if hit, ok := results.Get(key); ok {
	    return hit.(*analytics.ClassificationReport), true
	}
	report, err := engine.EvaluateClassification(table, params)
	if err == nil {
	    results.Set(key, report)
	}

# Invalidation

Three paths remove entries:

 1. TTL expiry, checked lazily on Get and swept in the background
 2. Capacity eviction, dropping the soonest-expiring entry on insert
 3. Clear, called whenever the dataset is reloaded or replaced

The reload path is the load-bearing one: every cached result was computed
from the previous table, so the HTTP layer clears the cache wholesale as
part of swapping datasets.

# Limitations

The cache is deliberately small:
  - No persistence (in-memory only)
  - No distributed mode (single instance)
  - Capacity eviction approximates oldest-first via expiry order

These fit the deployment: one process, a bounded survey dataset, and
results that are cheap to recompute after a restart.
*/
package cache
