// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package dataset

import (
	"fmt"
	"sync"

	"github.com/tomtom215/focusnest/internal/config"
	"github.com/tomtom215/focusnest/internal/logging"
)

// Store holds the process-wide dataset snapshot with explicit lifecycle:
// loaded once at startup, replaced atomically by reload or upload. Readers
// take the current snapshot and keep working on it even if a swap happens
// mid-analysis.
type Store struct {
	mu       sync.RWMutex
	table    *Table
	path     string
	encoding string
}

// NewStore creates an empty store for the configured dataset source.
// Call Load before serving traffic.
func NewStore(cfg config.DatasetConfig) *Store {
	return &Store{
		path:     cfg.Path,
		encoding: cfg.Encoding,
	}
}

// Load reads the configured dataset from disk and installs it as the
// current snapshot.
func (s *Store) Load() (*Table, error) {
	table, err := LoadFile(s.path, s.encoding)
	if err != nil {
		return nil, fmt.Errorf("dataset load failed: %w", err)
	}

	prev := s.swap(table)

	evt := logging.Info().
		Str("component", "dataset").
		Str("source", table.Source()).
		Str("fingerprint", table.Fingerprint()).
		Int("rows", table.Rows()).
		Int("columns", len(table.ColumnNames()))
	if prev != nil {
		evt = evt.Int("previous_rows", prev.Rows())
	}
	evt.Msg("Dataset loaded")

	return table, nil
}

// Replace installs an already-built table (from an upload) as the current
// snapshot and returns the previous one, which may be nil on first load.
func (s *Store) Replace(table *Table) *Table {
	prev := s.swap(table)

	logging.Info().
		Str("component", "dataset").
		Str("source", table.Source()).
		Str("fingerprint", table.Fingerprint()).
		Int("rows", table.Rows()).
		Msg("Dataset replaced")

	return prev
}

// Current returns the active snapshot. ok is false before the first
// successful Load.
func (s *Store) Current() (*Table, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table, s.table != nil
}

// Path returns the configured dataset path.
func (s *Store) Path() string { return s.path }

func (s *Store) swap(table *Table) *Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.table
	s.table = table
	return prev
}
