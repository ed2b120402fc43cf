// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

// Package store archives finished analysis runs in Badger so results survive
// restarts and can be listed or re-fetched by ID. Trained model handles are
// not archived; only the serialized run payloads are.
package store

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/focusnest/internal/config"
	"github.com/tomtom215/focusnest/internal/logging"
	"github.com/tomtom215/focusnest/internal/models"
)

// Key prefixes. Every record is stored twice: under its kind-and-time
// ordered primary key for listings, and under a plain ID key pointing at
// the primary key for direct fetches.
const (
	runKeyPrefix = "run:"
	idKeyPrefix  = "run_id:"
)

// gcRatio is the value-log rewrite threshold passed to Badger's GC.
const gcRatio = 0.5

// ErrRunNotFound is returned when no archived run has the requested ID.
var ErrRunNotFound = errors.New("run not found")

// Archive is the Badger-backed run store.
type Archive struct {
	db        *badger.DB
	retention time.Duration
	logger    zerolog.Logger
}

// Open opens (or creates) the archive at the configured path. Retention is
// applied as a per-entry TTL, so expired runs vanish from reads immediately
// and from disk once compaction and GC catch up.
func Open(cfg config.StoreConfig) (*Archive, error) {
	opts := badger.DefaultOptions(cfg.Path)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open run archive: %w", err)
	}

	a := &Archive{
		db:        db,
		retention: cfg.Retention,
		logger:    logging.WithComponent("store"),
	}
	a.logger.Info().
		Str("path", cfg.Path).
		Dur("retention", cfg.Retention).
		Msg("run archive opened")
	return a, nil
}

// Close releases the underlying database.
func (a *Archive) Close() error {
	return a.db.Close()
}

// runKey orders records newest-first within a kind: the creation time is
// subtracted from the maximum so lexical iteration walks recent runs before
// old ones.
func runKey(kind models.RunKind, createdAt time.Time, id string) []byte {
	inverted := math.MaxInt64 - createdAt.UnixNano()
	return []byte(fmt.Sprintf("%s%s:%020d:%s", runKeyPrefix, kind, inverted, id))
}

// Save archives one finished run under both keys in a single transaction.
// Saving an existing ID with the same creation time overwrites the record.
func (a *Archive) Save(record *models.RunRecord) error {
	if record.ID == "" || record.CreatedAt.IsZero() {
		return errors.New("run record needs an ID and creation time")
	}
	if !models.ValidRunKind(record.Kind) {
		return fmt.Errorf("unknown run kind %q", record.Kind)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal run %s: %w", record.ID, err)
	}
	primary := runKey(record.Kind, record.CreatedAt, record.ID)

	err = a.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(primary, data)
		index := badger.NewEntry([]byte(idKeyPrefix+record.ID), primary)
		if a.retention > 0 {
			entry = entry.WithTTL(a.retention)
			index = index.WithTTL(a.retention)
		}
		if err := txn.SetEntry(entry); err != nil {
			return fmt.Errorf("set run: %w", err)
		}
		if err := txn.SetEntry(index); err != nil {
			return fmt.Errorf("set run index: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	a.logger.Debug().
		Str("run_id", record.ID).
		Str("kind", string(record.Kind)).
		Msg("run archived")
	return nil
}

// Get fetches one archived run by ID.
func (a *Archive) Get(id string) (*models.RunRecord, error) {
	var record models.RunRecord

	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(idKeyPrefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrRunNotFound
		}
		if err != nil {
			return fmt.Errorf("get run index: %w", err)
		}

		var primary []byte
		if err := item.Value(func(val []byte) error {
			primary = append([]byte(nil), val...)
			return nil
		}); err != nil {
			return fmt.Errorf("read run index: %w", err)
		}

		recordItem, err := txn.Get(primary)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrRunNotFound
		}
		if err != nil {
			return fmt.Errorf("get run: %w", err)
		}
		return recordItem.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// List returns run summaries newest-first. A non-empty kind restricts the
// listing to that kind and streams straight off the time-ordered keys; the
// unfiltered listing merges every kind's runs and re-sorts by creation
// time. Limit caps the result when positive.
func (a *Archive) List(kind models.RunKind, limit int) ([]models.RunSummary, error) {
	prefix := []byte(runKeyPrefix)
	if kind != "" {
		if !models.ValidRunKind(kind) {
			return nil, fmt.Errorf("unknown run kind %q", kind)
		}
		prefix = []byte(runKeyPrefix + string(kind) + ":")
	}

	summaries := []models.RunSummary{}
	err := a.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if kind != "" && limit > 0 && len(summaries) >= limit {
				break
			}
			var record models.RunRecord
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &record)
			}); err != nil {
				continue
			}
			summaries = append(summaries, record.Summary())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	if kind == "" {
		sort.SliceStable(summaries, func(i, j int) bool {
			return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
		})
		if limit > 0 && len(summaries) > limit {
			summaries = summaries[:limit]
		}
	}
	return summaries, nil
}

// Count returns the number of archived runs.
func (a *Archive) Count() (int, error) {
	count := 0
	err := a.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(idKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// RunGC reclaims value-log space until Badger reports nothing left to
// rewrite. The supervised maintenance service calls this on an interval.
func (a *Archive) RunGC() error {
	for {
		err := a.db.RunValueLogGC(gcRatio)
		if errors.Is(err, badger.ErrNoRewrite) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("run archive gc: %w", err)
		}
	}
}
