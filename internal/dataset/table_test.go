// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package dataset

import (
	"strings"
	"testing"

	"github.com/tomtom215/focusnest/internal/models"
)

const sampleCSV = `age,daily_minutes,platform_tiktok,willing_to_subscribe,notes
25,180,1,Yes,likes shorts
31,95,0,No,
19,240,1,Yes,heavy user
45,30,0,No,casual
28,150,1,Maybe,
`

func loadSample(t *testing.T) *Table {
	t.Helper()
	table, err := LoadCSV(strings.NewReader(sampleCSV), "", "sample.csv")
	if err != nil {
		t.Fatalf("LoadCSV() error = %v", err)
	}
	return table
}

func TestTableProfiles(t *testing.T) {
	table := loadSample(t)

	if table.Rows() != 5 {
		t.Fatalf("Rows() = %d, want 5", table.Rows())
	}

	tests := []struct {
		column   string
		kind     string
		distinct int
	}{
		{"age", models.ColumnKindNumeric, 5},
		{"daily_minutes", models.ColumnKindNumeric, 5},
		{"platform_tiktok", models.ColumnKindBinary, 2},
		{"willing_to_subscribe", models.ColumnKindCategorical, 3},
		{"notes", models.ColumnKindCategorical, 4},
	}

	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			p, ok := table.Profile(tt.column)
			if !ok {
				t.Fatalf("Profile(%q) not found", tt.column)
			}
			if p.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", p.Kind, tt.kind)
			}
			if p.Distinct != tt.distinct {
				t.Errorf("Distinct = %d, want %d", p.Distinct, tt.distinct)
			}
		})
	}
}

func TestProfileColumn(t *testing.T) {
	tests := []struct {
		name     string
		cells    []string
		kind     string
		distinct int
	}{
		{
			name:     "numeric",
			cells:    []string{"1.5", "2", "3.25"},
			kind:     models.ColumnKindNumeric,
			distinct: 3,
		},
		{
			name:     "numeric distinct by value not text",
			cells:    []string{"1", "1.0", "01"},
			kind:     models.ColumnKindNumeric,
			distinct: 1,
		},
		{
			name:     "binary",
			cells:    []string{"0", "1", "1", "0"},
			kind:     models.ColumnKindBinary,
			distinct: 2,
		},
		{
			name:     "constant zero stays numeric",
			cells:    []string{"0", "0", "0"},
			kind:     models.ColumnKindNumeric,
			distinct: 1,
		},
		{
			name:     "empty cell turns categorical",
			cells:    []string{"1", "", "3"},
			kind:     models.ColumnKindCategorical,
			distinct: 3,
		},
		{
			name:     "text",
			cells:    []string{"Yes", "No", "Yes"},
			kind:     models.ColumnKindCategorical,
			distinct: 2,
		},
		{
			name:     "negative and fractional",
			cells:    []string{"-1", "0.5", "2"},
			kind:     models.ColumnKindNumeric,
			distinct: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := profileColumn("col", tt.cells)
			if p.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", p.Kind, tt.kind)
			}
			if p.Distinct != tt.distinct {
				t.Errorf("Distinct = %d, want %d", p.Distinct, tt.distinct)
			}
		})
	}
}

func TestProfileColumnAggregates(t *testing.T) {
	p, values := profileColumn("v", []string{"2", "8", "5"})
	if values == nil {
		t.Fatal("profileColumn() returned nil values for numeric column")
	}
	if p.Min != 2 {
		t.Errorf("Min = %g, want 2", p.Min)
	}
	if p.Max != 8 {
		t.Errorf("Max = %g, want 8", p.Max)
	}
	if p.Mean != 5 {
		t.Errorf("Mean = %g, want 5", p.Mean)
	}
}

func TestNumericColumnReturnsCopy(t *testing.T) {
	table := loadSample(t)

	a, ok := table.NumericColumn("age")
	if !ok {
		t.Fatal("NumericColumn(age) not found")
	}
	a[0] = -999

	b, _ := table.NumericColumn("age")
	if b[0] == -999 {
		t.Error("NumericColumn() shares backing storage between calls")
	}
}

func TestNumericColumnMissing(t *testing.T) {
	table := loadSample(t)

	if _, ok := table.NumericColumn("notes"); ok {
		t.Error("NumericColumn(notes) = ok for categorical column")
	}
	if _, ok := table.NumericColumn("nope"); ok {
		t.Error("NumericColumn(nope) = ok for absent column")
	}
}

func TestFingerprint(t *testing.T) {
	t1 := loadSample(t)
	t2 := loadSample(t)

	if t1.Fingerprint() == "" {
		t.Fatal("Fingerprint() is empty")
	}
	if t1.Fingerprint() != t2.Fingerprint() {
		t.Error("identical content produced different fingerprints")
	}

	changed := strings.Replace(sampleCSV, "25,180", "26,180", 1)
	t3, err := LoadCSV(strings.NewReader(changed), "", "sample.csv")
	if err != nil {
		t.Fatalf("LoadCSV() error = %v", err)
	}
	if t3.Fingerprint() == t1.Fingerprint() {
		t.Error("different content produced the same fingerprint")
	}
}

func TestTableInfo(t *testing.T) {
	table := loadSample(t)

	info := table.Info("willing_to_subscribe")
	if info.Rows != 5 {
		t.Errorf("Info().Rows = %d, want 5", info.Rows)
	}
	if info.Target != "willing_to_subscribe" {
		t.Errorf("Info().Target = %q, want willing_to_subscribe", info.Target)
	}
	if len(info.Columns) != 5 {
		t.Fatalf("len(Info().Columns) = %d, want 5", len(info.Columns))
	}

	for _, ci := range info.Columns {
		numeric := ci.Kind == models.ColumnKindNumeric || ci.Kind == models.ColumnKindBinary
		if numeric && (ci.Min == nil || ci.Max == nil || ci.Mean == nil) {
			t.Errorf("column %s: numeric aggregates missing", ci.Name)
		}
		if !numeric && ci.Min != nil {
			t.Errorf("column %s: categorical column carries aggregates", ci.Name)
		}
	}
}
