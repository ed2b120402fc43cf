// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

// Package features builds numeric feature matrices from profiled survey
// tables. Selection is mechanical: numeric columns with more than one
// distinct value, minus the target and caller exclusions. Rejections carry
// a reason so the API can report why a column was left out.
package features

import (
	"github.com/tomtom215/focusnest/internal/dataset"
	"github.com/tomtom215/focusnest/internal/models"
)

// Rejection reasons reported by Select.
const (
	ReasonTarget     = "target"
	ReasonExcluded   = "excluded"
	ReasonNonNumeric = "non_numeric"
	ReasonConstant   = "constant"
)

// Selection is a feature matrix with its provenance: which columns made it
// in (file order), which were rejected and why, and the row count.
//
// Matrix is row-major (one row per survey response). An empty Columns slice
// is not an error here; analyses that need features decide whether an empty
// selection is degenerate for them.
type Selection struct {
	Columns  []string
	Matrix   [][]float64
	Rows     int
	Rejected []models.RejectedColumn
}

// Report converts the selection into its API description.
func (s Selection) Report() models.FeatureReport {
	return models.FeatureReport{
		Selected: append([]string(nil), s.Columns...),
		Rejected: append([]models.RejectedColumn(nil), s.Rejected...),
		Rows:     s.Rows,
	}
}

// Select builds the feature matrix for a table: every numeric column with
// more than one distinct value, in file order, except the target column and
// any caller exclusions. Exclusions naming absent columns are ignored; they
// exclude nothing.
func Select(table *dataset.Table, target string, exclude []string) Selection {
	excluded := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		excluded[name] = struct{}{}
	}

	sel := Selection{Rows: table.Rows()}
	var columns [][]float64

	for _, p := range table.Profiles() {
		switch {
		case p.Name == target:
			sel.reject(p.Name, ReasonTarget)
		case hasKey(excluded, p.Name):
			sel.reject(p.Name, ReasonExcluded)
		case !p.IsNumeric():
			sel.reject(p.Name, ReasonNonNumeric)
		case p.Distinct < 2:
			sel.reject(p.Name, ReasonConstant)
		default:
			values, _ := table.NumericColumn(p.Name)
			sel.Columns = append(sel.Columns, p.Name)
			columns = append(columns, values)
		}
	}

	sel.Matrix = transpose(columns, table.Rows())
	return sel
}

func (s *Selection) reject(name, reason string) {
	s.Rejected = append(s.Rejected, models.RejectedColumn{Name: name, Reason: reason})
}

func hasKey(m map[string]struct{}, k string) bool {
	_, ok := m[k]
	return ok
}

// transpose turns column-major slices into a row-major matrix. With no
// columns it still returns one empty row per response so Rows stays
// meaningful to callers.
func transpose(columns [][]float64, rows int) [][]float64 {
	matrix := make([][]float64, rows)
	for i := range matrix {
		row := make([]float64, len(columns))
		for j, col := range columns {
			row[j] = col[i]
		}
		matrix[i] = row
	}
	return matrix
}
