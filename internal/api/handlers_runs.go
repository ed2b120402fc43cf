// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/focusnest/internal/logging"
	"github.com/tomtom215/focusnest/internal/models"
	runstore "github.com/tomtom215/focusnest/internal/store"
)

// RunsList pages through archived analysis runs
//
// @Summary List archived runs
// @Description Returns run summaries newest-first, optionally filtered by kind. total_count is the archive-wide record count regardless of the kind filter.
// @Tags Runs
// @Produce json
// @Param kind query string false "Filter by run kind" Enums(classification, clustering, association, regression, prediction)
// @Param limit query int false "Page size (default from config, capped)"
// @Param offset query int false "Rows to skip from the newest"
// @Success 200 {object} models.APIResponse{data=models.RunList} "Run listing"
// @Failure 400 {object} models.APIResponse "Invalid kind, limit, or offset"
// @Failure 503 {object} models.APIResponse "Run archive is disabled"
// @Router /runs [get]
func (h *Handler) RunsList(w http.ResponseWriter, r *http.Request) {
	if h.archive == nil {
		respondError(w, http.StatusServiceUnavailable, ErrCodeArchiveUnavailable,
			"Run archive is disabled", nil)
		return
	}

	req := models.RunListRequest{
		Kind:   r.URL.Query().Get("kind"),
		Limit:  getIntParam(r, "limit", h.config.API.DefaultRunLimit),
		Offset: getIntParam(r, "offset", 0),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}
	if req.Limit > h.config.API.MaxRunLimit {
		req.Limit = h.config.API.MaxRunLimit
	}

	// Badger iterates newest-first without random access, so paging
	// fetches offset+limit summaries and discards the first offset.
	fetched, err := h.archive.List(models.RunKind(req.Kind), req.Limit+req.Offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError,
			"Run listing failed", err)
		return
	}

	runs := make([]models.RunSummary, 0, req.Limit)
	if req.Offset < len(fetched) {
		runs = append(runs, fetched[req.Offset:]...)
	}
	hasMore := len(fetched) == req.Limit+req.Offset

	total, err := h.archive.Count()
	if err != nil {
		logging.CtxErr(r.Context(), err).Msg("Run count failed")
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.RunList{
			Runs: runs,
			Pagination: models.PaginationInfo{
				Limit:      req.Limit,
				Offset:     req.Offset,
				HasMore:    hasMore,
				TotalCount: total,
			},
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// RunGet fetches one archived run with its full result
//
// @Summary Get an archived run
// @Description Returns the complete archived record: parameters, result payload, timing, and the dataset fingerprint the run was computed against.
// @Tags Runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} models.APIResponse{data=models.RunRecord} "Archived run"
// @Failure 404 {object} models.APIResponse "No run with that ID"
// @Failure 503 {object} models.APIResponse "Run archive is disabled"
// @Router /runs/{id} [get]
func (h *Handler) RunGet(w http.ResponseWriter, r *http.Request) {
	if h.archive == nil {
		respondError(w, http.StatusServiceUnavailable, ErrCodeArchiveUnavailable,
			"Run archive is disabled", nil)
		return
	}

	id := chi.URLParam(r, "id")
	record, err := h.archive.Get(id)
	if err != nil {
		if errors.Is(err, runstore.ErrRunNotFound) {
			respondError(w, http.StatusNotFound, ErrCodeNotFound, "Run not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError,
			"Run lookup failed", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   record,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
