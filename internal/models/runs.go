// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package models

import (
	"time"

	"github.com/goccy/go-json"
)

// RunKind identifies the analysis family of an archived run.
type RunKind string

// Run kinds accepted by the archive and the /runs listing filter.
const (
	RunKindClassification RunKind = "classification"
	RunKindClustering     RunKind = "clustering"
	RunKindAssociation    RunKind = "association"
	RunKindRegression     RunKind = "regression"
	RunKindPrediction     RunKind = "prediction"
)

// ValidRunKind reports whether k names a known run kind.
func ValidRunKind(k RunKind) bool {
	switch k {
	case RunKindClassification, RunKindClustering, RunKindAssociation,
		RunKindRegression, RunKindPrediction:
		return true
	}
	return false
}

// RunRecord is one archived analysis run.
//
// Params echoes the request that produced the run (after defaulting), and
// Result holds the full analysis payload as returned to the caller. Result
// stays raw JSON so the archive never needs to know each kind's shape.
// DatasetFingerprint ties the run to the dataset revision it was computed on.
type RunRecord struct {
	ID                 string          `json:"id"`
	Kind               RunKind         `json:"kind"`
	CreatedAt          time.Time       `json:"created_at"`
	DurationMS         int64           `json:"duration_ms"`
	DatasetFingerprint string          `json:"dataset_fingerprint"`
	Params             json.RawMessage `json:"params,omitempty"`
	Result             json.RawMessage `json:"result,omitempty"`
}

// RunSummary is the listing projection of a RunRecord: everything except the
// result payload, which can be large for ROC-bearing runs.
type RunSummary struct {
	ID                 string    `json:"id"`
	Kind               RunKind   `json:"kind"`
	CreatedAt          time.Time `json:"created_at"`
	DurationMS         int64     `json:"duration_ms"`
	DatasetFingerprint string    `json:"dataset_fingerprint"`
}

// Summary projects the record for listings.
func (r *RunRecord) Summary() RunSummary {
	return RunSummary{
		ID:                 r.ID,
		Kind:               r.Kind,
		CreatedAt:          r.CreatedAt,
		DurationMS:         r.DurationMS,
		DatasetFingerprint: r.DatasetFingerprint,
	}
}

// RunList is the /runs listing payload.
type RunList struct {
	Runs       []RunSummary   `json:"runs"`
	Pagination PaginationInfo `json:"pagination"`
}
