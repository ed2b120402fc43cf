// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package models

import (
	"time"
)

// Column kind labels reported by dataset inspection.
const (
	ColumnKindNumeric     = "numeric"
	ColumnKindBinary      = "binary"
	ColumnKindCategorical = "categorical"
)

// ColumnInfo describes one survey column as loaded.
//
// Kind classification:
//   - "numeric": parses as float64 in every non-empty cell
//   - "binary": numeric with value set ⊆ {0,1} and both values present
//   - "categorical": anything else (free text, labels)
//
// Min/Max/Mean are populated for numeric columns only.
type ColumnInfo struct {
	Name     string   `json:"name"`
	Kind     string   `json:"kind"`
	Distinct int      `json:"distinct"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Mean     *float64 `json:"mean,omitempty"`
}

// DatasetInfo describes the currently loaded survey dataset.
//
// Fingerprint is a content hash of the loaded table; cache keys and archived
// runs embed it so results are traceable to the exact dataset revision.
type DatasetInfo struct {
	Source      string       `json:"source"`
	Rows        int          `json:"rows"`
	Columns     []ColumnInfo `json:"columns"`
	Target      string       `json:"target"`
	Fingerprint string       `json:"fingerprint"`
	LoadedAt    time.Time    `json:"loaded_at"`
}

// NumericAggregate holds SQL aggregates for one numeric column within a
// target class, as computed by the analytical mirror.
type NumericAggregate struct {
	Column string  `json:"column"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// ClassSummary aggregates one target class.
type ClassSummary struct {
	Class   string             `json:"class"`
	Rows    int                `json:"rows"`
	Numeric []NumericAggregate `json:"numeric"`
}

// DatasetSummary is the /dataset/summary payload: per-class aggregates over
// the numeric columns, computed in DuckDB.
type DatasetSummary struct {
	Target  string         `json:"target"`
	Rows    int            `json:"rows"`
	Classes []ClassSummary `json:"classes"`
}

// ReloadResult reports a dataset reload or upload.
type ReloadResult struct {
	Source       string    `json:"source"`
	Rows         int       `json:"rows"`
	Columns      int       `json:"columns"`
	PreviousRows int       `json:"previous_rows"`
	Fingerprint  string    `json:"fingerprint"`
	LoadedAt     time.Time `json:"loaded_at"`
}

// FeatureReport describes the automatic feature selection over the loaded
// dataset: which columns were kept for modeling and why the rest were not.
type FeatureReport struct {
	Selected []string         `json:"selected"`
	Rejected []RejectedColumn `json:"rejected"`
	Rows     int              `json:"rows"`
}

// RejectedColumn names a column left out of the feature matrix and the reason.
//
// Reasons:
//   - "non_numeric": column does not parse as numeric
//   - "constant": numeric but a single distinct value
//   - "excluded": listed in the caller's exclusions
//   - "target": the configured target column
type RejectedColumn struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}
