// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package api

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/tomtom215/focusnest/internal/database"
	"github.com/tomtom215/focusnest/internal/dataset"
	"github.com/tomtom215/focusnest/internal/features"
	"github.com/tomtom215/focusnest/internal/metrics"
	"github.com/tomtom215/focusnest/internal/models"
)

// Dataset describes the currently loaded dataset
//
// @Summary Get dataset info
// @Description Returns the loaded dataset's source, row count, per-column profile (kind, distinct count, numeric range), target column, and content fingerprint.
// @Tags Dataset
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.DatasetInfo} "Dataset info retrieved successfully"
// @Failure 503 {object} models.APIResponse "No dataset loaded"
// @Router /dataset [get]
func (h *Handler) Dataset(w http.ResponseWriter, r *http.Request) {
	table, ok := h.store.Current()
	if !ok {
		respondError(w, http.StatusServiceUnavailable, ErrCodeDatasetError, "No dataset loaded", nil)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   table.Info(h.config.Dataset.TargetColumn),
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// DatasetSummary serves per-class aggregates from the analytical mirror
//
// @Summary Get per-class dataset summary
// @Description Returns SQL aggregates (mean, median, min, max) of every numeric column grouped by target class, computed in the DuckDB mirror. The target defaults to the configured target column and can be overridden with ?target=.
// @Tags Dataset
// @Accept json
// @Produce json
// @Param target query string false "Grouping column (defaults to the configured target)"
// @Success 200 {object} models.APIResponse{data=models.DatasetSummary} "Summary computed successfully"
// @Failure 400 {object} models.APIResponse "Grouping column not in dataset"
// @Failure 503 {object} models.APIResponse "Mirror disabled, empty, or no dataset loaded"
// @Router /dataset/summary [get]
func (h *Handler) DatasetSummary(w http.ResponseWriter, r *http.Request) {
	if h.mirror == nil {
		respondError(w, http.StatusServiceUnavailable, ErrCodeMirrorUnavailable,
			"Analytical mirror is disabled", nil)
		return
	}

	table, ok := h.store.Current()
	if !ok {
		respondError(w, http.StatusServiceUnavailable, ErrCodeDatasetError, "No dataset loaded", nil)
		return
	}

	target := r.URL.Query().Get("target")
	if target == "" {
		target = h.config.Dataset.TargetColumn
	}
	if !table.HasColumn(target) {
		respondErrorDetails(w, http.StatusBadRequest, ErrCodeInvalidColumnSelection,
			"Grouping column not in dataset",
			map[string]interface{}{"column": target, "reason": "not in dataset"}, nil)
		return
	}

	start := time.Now()
	summary, err := h.mirror.Summary(r.Context(), target)
	metrics.RecordMirrorQuery("summary", time.Since(start), err)
	if err != nil {
		if errors.Is(err, database.ErrMirrorEmpty) {
			respondError(w, http.StatusServiceUnavailable, ErrCodeMirrorUnavailable,
				"Analytical mirror holds no dataset yet", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, ErrCodeMirrorUnavailable,
			"Summary query failed", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   summary,
		Metadata: models.Metadata{
			Timestamp:     time.Now(),
			ComputeTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// DatasetReload re-reads the configured dataset file
//
// @Summary Reload the dataset from disk
// @Description Re-reads the configured dataset file, atomically replaces the in-memory snapshot, rebuilds the analytical mirror, and clears the result cache. In-flight analyses keep the snapshot they started with.
// @Tags Dataset
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.ReloadResult} "Dataset reloaded successfully"
// @Failure 500 {object} models.APIResponse "Reload failed; the previous snapshot stays active"
// @Router /dataset/reload [post]
func (h *Handler) DatasetReload(w http.ResponseWriter, r *http.Request) {
	prevRows := 0
	if prev, ok := h.store.Current(); ok {
		prevRows = prev.Rows()
	}

	start := time.Now()
	table, err := h.store.Load()
	if err != nil {
		metrics.RecordDatasetLoad(0, 0, time.Since(start), err)
		respondError(w, http.StatusInternalServerError, ErrCodeDatasetError,
			"Dataset reload failed, previous snapshot still active", err)
		return
	}

	result := h.finishSwap(r.Context(), table, prevRows, time.Since(start))
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   result,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// DatasetUpload replaces the dataset with an uploaded file
//
// @Summary Upload a replacement dataset
// @Description Accepts a multipart CSV or XLSX file and installs it as the active dataset. The mirror is rebuilt and the result cache cleared. Upload size is bounded by the configured limit.
// @Tags Dataset
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Survey dataset (.csv or .xlsx)"
// @Success 200 {object} models.APIResponse{data=models.ReloadResult} "Dataset replaced successfully"
// @Failure 400 {object} models.APIResponse "Missing file, oversized upload, or unsupported format"
// @Router /dataset/upload [post]
func (h *Handler) DatasetUpload(w http.ResponseWriter, r *http.Request) {
	prevRows := 0
	if prev, ok := h.store.Current(); ok {
		prevRows = prev.Rows()
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.config.Dataset.UploadMaxBytes)
	if err := r.ParseMultipartForm(h.config.Dataset.UploadMaxBytes); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation,
			"Upload too large or not multipart form data", err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation,
			"Multipart field \"file\" is required", err)
		return
	}
	defer file.Close()

	start := time.Now()
	var table *dataset.Table
	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".xlsx":
		table, err = dataset.LoadXLSX(file, header.Filename)
	case ".csv", ".txt":
		table, err = dataset.LoadCSV(file, h.config.Dataset.Encoding, header.Filename)
	default:
		respondError(w, http.StatusBadRequest, ErrCodeValidation,
			"Unsupported dataset format, use .csv or .xlsx", nil)
		return
	}
	if err != nil {
		metrics.RecordDatasetLoad(0, 0, time.Since(start), err)
		respondError(w, http.StatusBadRequest, ErrCodeDatasetError,
			"Uploaded file could not be parsed", err)
		return
	}

	h.store.Replace(table)
	result := h.finishSwap(r.Context(), table, prevRows, time.Since(start))
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   result,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// Features reports the automatic feature selection
//
// @Summary Get feature selection report
// @Description Returns the columns the pipeline would use as features for the configured target, plus every rejected column with its reason (target, excluded, non_numeric, constant).
// @Tags Dataset
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.FeatureReport} "Feature report computed successfully"
// @Failure 503 {object} models.APIResponse "No dataset loaded"
// @Router /features [get]
func (h *Handler) Features(w http.ResponseWriter, r *http.Request) {
	table, ok := h.store.Current()
	if !ok {
		respondError(w, http.StatusServiceUnavailable, ErrCodeDatasetError, "No dataset loaded", nil)
		return
	}

	sel := features.Select(table, h.config.Dataset.TargetColumn, nil)
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   sel.Report(),
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// finishSwap runs the post-replacement steps shared by reload and upload:
// rebuild the mirror, clear the result cache, record metrics, and build
// the reload report. A mirror rebuild failure is logged but does not fail
// the swap; the snapshot is already active and the summary endpoint
// reports the stale mirror on its own.
func (h *Handler) finishSwap(ctx context.Context, table *dataset.Table, prevRows int, loadDur time.Duration) models.ReloadResult {
	if h.mirror != nil {
		if err := h.mirror.Rebuild(ctx, table); err != nil {
			h.logger.Warn().Err(err).
				Str("fingerprint", table.Fingerprint()).
				Msg("Mirror rebuild failed after dataset swap")
		}
	}

	h.cache.Clear()
	metrics.RecordDatasetLoad(table.Rows(), len(table.ColumnNames()), loadDur, nil)

	return models.ReloadResult{
		Source:       table.Source(),
		Rows:         table.Rows(),
		Columns:      len(table.ColumnNames()),
		PreviousRows: prevRows,
		Fingerprint:  table.Fingerprint(),
		LoadedAt:     table.LoadedAt(),
	}
}
