// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package services

import (
	"context"
	"time"

	"github.com/tomtom215/focusnest/internal/logging"
	"github.com/tomtom215/focusnest/internal/metrics"
)

// ArchiveGC is the run-archive surface the maintenance loop needs.
// Satisfied by *store.Archive.
type ArchiveGC interface {
	RunGC() error
}

// ArchiveGCService periodically compacts the run archive's value log.
// Badger reclaims deleted-run space only when value-log GC runs, so
// without this loop the archive directory grows past its retention
// window.
type ArchiveGCService struct {
	archive  ArchiveGC
	interval time.Duration
}

// NewArchiveGCService builds the maintenance loop. A non-positive
// interval falls back to 30 minutes.
func NewArchiveGCService(archive ArchiveGC, interval time.Duration) *ArchiveGCService {
	if interval <= 0 {
		interval = 30 * time.Minute
	}
	return &ArchiveGCService{
		archive:  archive,
		interval: interval,
	}
}

// Serve implements suture.Service. A failed GC pass is logged and the
// loop keeps its schedule; the next tick retries. Only a canceled context
// ends the loop.
func (s *ArchiveGCService) Serve(ctx context.Context) error {
	logger := logging.WithComponent("archive-gc")
	logger.Info().Dur("interval", s.interval).Msg("Archive GC loop started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Archive GC loop stopped")
			return ctx.Err()
		case <-ticker.C:
			start := time.Now()
			if err := s.archive.RunGC(); err != nil {
				logger.Warn().Err(err).Msg("Archive GC pass failed")
				continue
			}
			metrics.RecordArchiveGC()
			logger.Debug().Dur("duration", time.Since(start)).Msg("Archive GC pass complete")
		}
	}
}

// String names the service in supervisor logs.
func (s *ArchiveGCService) String() string {
	return "archive-gc"
}
