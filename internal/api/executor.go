// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/focusnest/internal/cache"
	"github.com/tomtom215/focusnest/internal/dataset"
	"github.com/tomtom215/focusnest/internal/metrics"
	"github.com/tomtom215/focusnest/internal/models"
)

// analysisRunner encapsulates the shared execution flow of the four
// analysis endpoints and prediction:
//
//  1. Take the current dataset snapshot.
//  2. Check the result cache, keyed on run kind, dataset fingerprint,
//     and the full parameter set.
//  3. Execute on a miss and translate typed analysis errors to HTTP.
//  4. Archive the finished run and cache the result.
//
// Cache hits return with zero compute time and no new archive entry; the
// run ID in the metadata always refers to a freshly archived run.
type analysisRunner struct {
	handler *Handler
}

// analysisFunc runs one analysis against an immutable dataset snapshot.
// The result must be JSON-serializable; it is cached and archived as
// returned.
type analysisFunc func(table *dataset.Table) (interface{}, error)

// Execute runs fn through the shared flow. params must be the complete
// resolved parameter set, anything that changes the result has to be in
// it, or two different requests would collide on one cache key.
func (e *analysisRunner) Execute(
	w http.ResponseWriter,
	r *http.Request,
	kind models.RunKind,
	params interface{},
	fn analysisFunc,
) {
	table, ok := e.handler.store.Current()
	if !ok {
		respondError(w, http.StatusServiceUnavailable, ErrCodeDatasetError, "No dataset loaded", nil)
		return
	}

	start := time.Now()
	cacheKey := cache.Key(string(kind), table.Fingerprint(), params)

	cached, found := e.handler.cache.Get(cacheKey)
	metrics.RecordCacheLookup(found)
	if found {
		metrics.RecordAnalysisCached(string(kind))
		respondJSON(w, http.StatusOK, &models.APIResponse{
			Status: "success",
			Data:   cached,
			Metadata: models.Metadata{
				Timestamp:     time.Now(),
				ComputeTimeMS: 0,
				Cached:        true,
			},
		})
		return
	}

	result, err := fn(table)
	metrics.RecordAnalysis(string(kind), time.Since(start), err)
	if err != nil {
		respondAnalysisError(w, err)
		return
	}

	e.handler.cache.Set(cacheKey, result)
	runID := e.archiveRun(kind, table.Fingerprint(), start, params, result)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   result,
		Metadata: models.Metadata{
			Timestamp:     time.Now(),
			ComputeTimeMS: time.Since(start).Milliseconds(),
			RunID:         runID,
		},
	})
}

// archiveRun persists one finished run. Archiving is best-effort: the
// analysis already succeeded, so a failed save is logged and the response
// still goes out, just without a run ID.
func (e *analysisRunner) archiveRun(
	kind models.RunKind,
	fingerprint string,
	start time.Time,
	params, result interface{},
) string {
	if e.handler.archive == nil {
		return ""
	}

	paramsJSON, err := json.Marshal(params)
	if err != nil {
		e.handler.logger.Error().Err(err).Str("kind", string(kind)).Msg("Failed to marshal run params")
		return ""
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		e.handler.logger.Error().Err(err).Str("kind", string(kind)).Msg("Failed to marshal run result")
		return ""
	}

	record := &models.RunRecord{
		ID:                 uuid.NewString(),
		Kind:               kind,
		CreatedAt:          start,
		DurationMS:         time.Since(start).Milliseconds(),
		DatasetFingerprint: fingerprint,
		Params:             paramsJSON,
		Result:             resultJSON,
	}

	if err := e.handler.archive.Save(record); err != nil {
		e.handler.logger.Error().Err(err).Str("run_id", record.ID).Msg("Failed to archive run")
		return ""
	}

	metrics.RecordArchiveSave(string(kind))
	return record.ID
}
