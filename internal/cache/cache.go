// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
)

// sweepEvery is how often the background sweep drops expired entries.
const sweepEvery = 5 * time.Minute

// Entry is one cached analysis result with its expiry.
type Entry struct {
	Data      any
	ExpiresAt time.Time
}

// Cache is a thread-safe TTL cache for finished analysis runs. The pipeline
// itself never reads it: only the HTTP layer checks it before re-running a
// computation, and a dataset reload or upload clears it wholesale, so stale
// results cannot outlive the table they were computed from.
type Cache struct {
	mu         sync.RWMutex
	entries    map[string]Entry
	ttl        time.Duration
	maxEntries int

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
	lastSweep atomic.Int64
}

// Stats is a point-in-time snapshot of the cache counters.
type Stats struct {
	Hits      int64     `json:"hits"`
	Misses    int64     `json:"misses"`
	Evictions int64     `json:"evictions"`
	Keys      int64     `json:"keys"`
	LastSweep time.Time `json:"last_sweep"`
}

// New creates a cache whose entries expire after ttl and starts the
// background sweep. maxEntries caps how many entries are held at once;
// zero or negative means unbounded. The sweep goroutine runs for the life
// of the process; caches are created once at startup, not per request.
//
//	results := cache.New(10*time.Minute, 256)
//	key := cache.Key("clustering", table.Fingerprint(), params)
//	if hit, ok := results.Get(key); ok {
//		return hit.(*cluster.Assignment), true
//	}
func New(ttl time.Duration, maxEntries int) *Cache {
	c := &Cache{
		entries:    make(map[string]Entry),
		ttl:        ttl,
		maxEntries: maxEntries,
	}
	c.lastSweep.Store(time.Now().UnixNano())
	go c.sweepLoop()
	return c
}

// Get returns the entry for key if present and unexpired. An expired entry
// is evicted on the spot and reported as a miss.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	if time.Now().After(entry.ExpiresAt) {
		c.mu.Lock()
		// Only drop the entry seen above; a concurrent Set may have
		// refreshed the key in the meantime.
		if current, still := c.entries[key]; still && current.ExpiresAt.Equal(entry.ExpiresAt) {
			delete(c.entries, key)
			c.evictions.Add(1)
		}
		c.mu.Unlock()
		c.misses.Add(1)
		return nil, false
	}

	c.hits.Add(1)
	return entry.Data, true
}

// Set stores value under key with the default TTL.
func (c *Cache) Set(key string, value any) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value under key with a specific TTL, replacing any
// existing entry. Inserting a new key at capacity evicts the entry closest
// to expiry first.
func (c *Cache) SetWithTTL(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	if c.maxEntries > 0 {
		if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
			c.evictSoonestLocked()
		}
	}
	c.entries[key] = Entry{Data: value, ExpiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
}

// evictSoonestLocked drops the entry with the earliest expiry. Entries share
// one TTL in practice, so the soonest to expire is also the oldest. Caller
// holds mu.
func (c *Cache) evictSoonestLocked() {
	var victim string
	var soonest time.Time
	for key, entry := range c.entries {
		if victim == "" || entry.ExpiresAt.Before(soonest) {
			victim = key
			soonest = entry.ExpiresAt
		}
	}
	if victim != "" {
		delete(c.entries, victim)
		c.evictions.Add(1)
	}
}

// Delete removes one entry. Removing an absent key is a no-op and does not
// count as an eviction.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	_, ok := c.entries[key]
	if ok {
		delete(c.entries, key)
	}
	c.mu.Unlock()

	if ok {
		c.evictions.Add(1)
	}
}

// Clear drops every entry at once. Called when the dataset is reloaded or
// replaced, since every cached result was computed from the old table.
func (c *Cache) Clear() {
	c.mu.Lock()
	dropped := int64(len(c.entries))
	c.entries = make(map[string]Entry)
	c.mu.Unlock()

	c.evictions.Add(dropped)
}

// GetStats snapshots the counters for the health and metrics endpoints.
func (c *Cache) GetStats() Stats {
	c.mu.RLock()
	keys := int64(len(c.entries))
	c.mu.RUnlock()

	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Keys:      keys,
		LastSweep: time.Unix(0, c.lastSweep.Load()),
	}
}

// HitRate returns the hit percentage over all lookups so far, or zero
// before the first lookup.
func (c *Cache) HitRate() float64 {
	hits := c.hits.Load()
	total := hits + c.misses.Load()
	if total == 0 {
		return 0.0
	}
	return float64(hits) / float64(total) * 100.0
}

// sweepLoop periodically evicts expired entries so abandoned keys do not
// accumulate between lookups.
func (c *Cache) sweepLoop() {
	ticker := time.NewTicker(sweepEvery)
	defer ticker.Stop()

	for range ticker.C {
		c.sweep()
	}
}

// sweep removes every expired entry.
func (c *Cache) sweep() {
	now := time.Now()

	c.mu.Lock()
	dropped := int64(0)
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
			dropped++
		}
	}
	c.mu.Unlock()

	c.evictions.Add(dropped)
	c.lastSweep.Store(now.UnixNano())
}

// Key builds a cache key from the run kind, the dataset fingerprint, and
// the run parameters. Parameters are hashed over their JSON form, so equal
// parameter structs land on the same key and any dataset revision change
// shifts every key even before the reload clears the cache.
func Key(kind, fingerprint string, params any) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%s:%v", kind, fingerprint, params)
	}
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s:%x", kind, fingerprint, sum[:16])
}
