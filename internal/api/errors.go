// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/focusnest/internal/analytics"
)

// Error codes carried in the error envelope. Clients branch on the code,
// not the message.
const (
	ErrCodeValidation             = "VALIDATION_ERROR"
	ErrCodeDegenerateInput        = "DEGENERATE_INPUT"
	ErrCodeSchemaMismatch         = "SCHEMA_MISMATCH"
	ErrCodeInvalidColumnSelection = "INVALID_COLUMN_SELECTION"
	ErrCodeUnknownModel           = "UNKNOWN_MODEL"
	ErrCodeNotFound               = "NOT_FOUND"
	ErrCodeDatasetError           = "DATASET_ERROR"
	ErrCodeMirrorUnavailable      = "MIRROR_UNAVAILABLE"
	ErrCodeArchiveUnavailable     = "ARCHIVE_UNAVAILABLE"
	ErrCodeAnalysisError          = "ANALYSIS_ERROR"
	ErrCodeInternalError          = "INTERNAL_ERROR"
	ErrCodeRateLimit              = "RATE_LIMIT_EXCEEDED"
)

// respondAnalysisError translates the typed analysis errors into HTTP
// responses. Degenerate inputs and schema mismatches are semantic
// failures of a well-formed request, so they map to 422; a bad column or
// model name is a client error and maps to 400. Anything untyped is a
// 500 with a generic message, the cause goes to the log only.
func respondAnalysisError(w http.ResponseWriter, err error) {
	var degenerate *analytics.DegenerateInputError
	if errors.As(err, &degenerate) {
		respondError(w, http.StatusUnprocessableEntity, ErrCodeDegenerateInput, degenerate.Error(), nil)
		return
	}

	var mismatch *analytics.SchemaMismatchError
	if errors.As(err, &mismatch) {
		respondErrorDetails(w, http.StatusUnprocessableEntity, ErrCodeSchemaMismatch, mismatch.Error(),
			map[string]interface{}{"missing_columns": mismatch.Missing}, nil)
		return
	}

	var column *analytics.InvalidColumnSelectionError
	if errors.As(err, &column) {
		respondErrorDetails(w, http.StatusBadRequest, ErrCodeInvalidColumnSelection, column.Error(),
			map[string]interface{}{"column": column.Column, "reason": column.Reason}, nil)
		return
	}

	var unknown *analytics.UnknownModelError
	if errors.As(err, &unknown) {
		respondErrorDetails(w, http.StatusBadRequest, ErrCodeUnknownModel, unknown.Error(),
			map[string]interface{}{"known_models": unknown.Known}, nil)
		return
	}

	respondError(w, http.StatusInternalServerError, ErrCodeAnalysisError, "Analysis failed", err)
}
