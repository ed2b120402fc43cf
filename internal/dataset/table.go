// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package dataset

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"

	"github.com/tomtom215/focusnest/internal/models"
)

// ColumnProfile describes one column of a loaded table: its inferred kind,
// distinct-value count, and numeric aggregates when the column is numeric.
//
// Kinds:
//   - numeric: every cell non-empty and parseable as float64
//   - binary: numeric with value set exactly {0, 1}
//   - categorical: everything else
type ColumnProfile struct {
	Name     string
	Kind     string
	Distinct int
	Min      float64
	Max      float64
	Mean     float64
}

// IsNumeric reports whether the column participates in numeric feature
// matrices (binary columns are numeric too).
func (p ColumnProfile) IsNumeric() bool {
	return p.Kind == models.ColumnKindNumeric || p.Kind == models.ColumnKindBinary
}

// Table is an immutable, profiled snapshot of a loaded survey dataset.
//
// A Table is built once by a loader and never mutated afterwards; reloads
// produce a fresh Table that the Store swaps in. Analyses always operate on
// the snapshot they were handed, so a mid-analysis reload cannot produce a
// torn read.
type Table struct {
	df          dataframe.DataFrame
	source      string
	loadedAt    time.Time
	fingerprint string
	profiles    []ColumnProfile
	index       map[string]int
	numeric     map[string][]float64
}

// newTable profiles a string-typed DataFrame into a Table.
func newTable(df dataframe.DataFrame, source string) (*Table, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("dataset parse failed: %w", df.Err)
	}

	names := df.Names()
	if len(names) == 0 {
		return nil, fmt.Errorf("dataset %s has no columns", source)
	}
	if df.Nrow() == 0 {
		return nil, fmt.Errorf("dataset %s has no rows", source)
	}

	t := &Table{
		df:       df,
		source:   source,
		loadedAt: time.Now().UTC(),
		profiles: make([]ColumnProfile, 0, len(names)),
		index:    make(map[string]int, len(names)),
		numeric:  make(map[string][]float64),
	}

	for i, name := range names {
		if _, dup := t.index[name]; dup {
			return nil, fmt.Errorf("dataset %s has duplicate column %q", source, name)
		}
		t.index[name] = i
	}

	for _, name := range names {
		col := df.Col(name).Records()
		profile, values := profileColumn(name, col)
		t.profiles = append(t.profiles, profile)
		if values != nil {
			t.numeric[name] = values
		}
	}

	t.fingerprint = fingerprintRecords(df.Records())
	return t, nil
}

// profileColumn infers the column kind and, for numeric columns, returns the
// parsed values alongside the profile. Distinct counts parsed values for
// numeric columns (so "1" and "1.0" are one value) and raw trimmed strings
// otherwise.
func profileColumn(name string, cells []string) (ColumnProfile, []float64) {
	profile := ColumnProfile{Name: name, Kind: models.ColumnKindCategorical}

	distinctStr := make(map[string]struct{}, len(cells))
	distinctNum := make(map[float64]struct{})
	values := make([]float64, 0, len(cells))
	isNumeric := true
	onlyZeroOne := true
	var sum, minV, maxV float64

	for _, cell := range cells {
		cell = strings.TrimSpace(cell)
		distinctStr[cell] = struct{}{}

		if !isNumeric {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil || cell == "" {
			isNumeric = false
			continue
		}
		if len(values) == 0 || v < minV {
			minV = v
		}
		if len(values) == 0 || v > maxV {
			maxV = v
		}
		values = append(values, v)
		distinctNum[v] = struct{}{}
		sum += v
		if v != 0 && v != 1 {
			onlyZeroOne = false
		}
	}

	if !isNumeric || len(values) == 0 {
		profile.Distinct = len(distinctStr)
		return profile, nil
	}

	profile.Distinct = len(distinctNum)
	profile.Kind = models.ColumnKindNumeric
	if onlyZeroOne && profile.Distinct == 2 {
		profile.Kind = models.ColumnKindBinary
	}
	profile.Min = minV
	profile.Max = maxV
	profile.Mean = sum / float64(len(values))
	return profile, values
}

// fingerprintRecords hashes the full cell contents so cache keys and archived
// runs can be traced to an exact dataset revision.
func fingerprintRecords(records [][]string) string {
	h := sha256.New()
	for _, row := range records {
		for _, cell := range row {
			h.Write([]byte(cell))
			h.Write([]byte{0x1f})
		}
		h.Write([]byte{0x1e})
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// Source returns the path or filename the table was loaded from.
func (t *Table) Source() string { return t.source }

// LoadedAt returns the load timestamp (UTC).
func (t *Table) LoadedAt() time.Time { return t.loadedAt }

// Fingerprint returns the content hash of the table.
func (t *Table) Fingerprint() string { return t.fingerprint }

// Rows returns the number of data rows.
func (t *Table) Rows() int { return t.df.Nrow() }

// ColumnNames returns the column names in file order.
func (t *Table) ColumnNames() []string {
	return t.df.Names()
}

// HasColumn reports whether the table contains the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the raw string cells of the named column.
func (t *Table) Column(name string) ([]string, bool) {
	if _, ok := t.index[name]; !ok {
		return nil, false
	}
	return t.df.Col(name).Records(), true
}

// NumericColumn returns the parsed values of a numeric column. The returned
// slice is a copy and safe to mutate.
func (t *Table) NumericColumn(name string) ([]float64, bool) {
	values, ok := t.numeric[name]
	if !ok {
		return nil, false
	}
	out := make([]float64, len(values))
	copy(out, values)
	return out, true
}

// Profile returns the profile of the named column.
func (t *Table) Profile(name string) (ColumnProfile, bool) {
	i, ok := t.index[name]
	if !ok {
		return ColumnProfile{}, false
	}
	return t.profiles[i], true
}

// Profiles returns all column profiles in file order.
func (t *Table) Profiles() []ColumnProfile {
	out := make([]ColumnProfile, len(t.profiles))
	copy(out, t.profiles)
	return out
}

// Records returns the table as [][]string with the header as the first row.
func (t *Table) Records() [][]string {
	return t.df.Records()
}

// WriteCSV streams the table as CSV.
func (t *Table) WriteCSV(w io.Writer) error {
	return t.df.WriteCSV(w)
}

// Info converts the table into its API description.
func (t *Table) Info(target string) models.DatasetInfo {
	cols := make([]models.ColumnInfo, 0, len(t.profiles))
	for _, p := range t.profiles {
		ci := models.ColumnInfo{
			Name:     p.Name,
			Kind:     p.Kind,
			Distinct: p.Distinct,
		}
		if p.IsNumeric() {
			minV, maxV, mean := p.Min, p.Max, p.Mean
			ci.Min = &minV
			ci.Max = &maxV
			ci.Mean = &mean
		}
		cols = append(cols, ci)
	}

	return models.DatasetInfo{
		Source:      t.source,
		Rows:        t.Rows(),
		Columns:     cols,
		Target:      target,
		Fingerprint: t.fingerprint,
		LoadedAt:    t.loadedAt,
	}
}
