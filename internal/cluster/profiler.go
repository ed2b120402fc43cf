// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

// Package cluster partitions survey respondents with seeded k-means and
// summarizes each cluster into a persona: representative values for the
// columns analysts segment on (age, usage, income, willingness to pay) plus
// the modal target response.
package cluster

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/tomtom215/focusnest/internal/analytics"
	"github.com/tomtom215/focusnest/internal/config"
	"github.com/tomtom215/focusnest/internal/dataset"
	"github.com/tomtom215/focusnest/internal/features"
	"github.com/tomtom215/focusnest/internal/logging"
)

// Canonical survey columns summarized into personas. Columns absent from
// the loaded dataset are skipped, so replacement datasets without them
// still cluster.
const (
	colAge              = "age"
	colDailyMinutes     = "daily_minutes"
	colMonthlyIncome    = "monthly_income"
	colWillingnessToPay = "willingness_to_pay"
)

// Aggregate kinds personas report.
const (
	AggregateMedian = "median"
	AggregateMean   = "mean"
	AggregateMode   = "mode"
)

// PersonaAttribute is one summarized column of a cluster. Numeric
// aggregates carry Value; the modal aggregate carries Label.
type PersonaAttribute struct {
	Column    string   `json:"column"`
	Aggregate string   `json:"aggregate"`
	Value     *float64 `json:"value,omitempty"`
	Label     string   `json:"label,omitempty"`
}

// Persona summarizes one cluster. A cluster that drained during iteration
// keeps its slot with zero size and no attributes.
type Persona struct {
	Cluster    int                `json:"cluster"`
	Size       int                `json:"size"`
	Attributes []PersonaAttribute `json:"attributes,omitempty"`
}

// Assignment is the outcome of one clustering run: a cluster id per row in
// table order, plus per-cluster personas.
type Assignment struct {
	K              int       `json:"k"`
	Seed           int64     `json:"seed"`
	Rows           int       `json:"rows"`
	FeatureColumns []string  `json:"feature_columns"`
	Labels         []int     `json:"labels"`
	Personas       []Persona `json:"personas"`
	Inertia        float64   `json:"inertia"`
	Iterations     int       `json:"iterations"`
}

// Params select and shape one clustering run. Zero K, zero MaxIterations,
// and nil Seed fall back to configured defaults.
type Params struct {
	K             int      `json:"k,omitempty"`
	Seed          *int64   `json:"seed,omitempty"`
	MaxIterations int      `json:"max_iterations,omitempty"`
	Target        string   `json:"target"`
	Exclude       []string `json:"exclude,omitempty"`
}

// Profiler runs clustering over a table's numeric features and aggregates
// personas from the original columns.
type Profiler struct {
	cfg    config.AnalysisConfig
	logger zerolog.Logger
}

// NewProfiler creates a profiler using the configured clustering defaults.
func NewProfiler(cfg config.AnalysisConfig) *Profiler {
	return &Profiler{
		cfg:    cfg,
		logger: logging.WithComponent("cluster"),
	}
}

// Run clusters the table's feature rows into k groups and profiles each
// group. k must stay within [2, 10] and cannot exceed the number of
// distinct feature rows.
func (p *Profiler) Run(table *dataset.Table, params Params) (*Assignment, error) {
	k := params.K
	if k <= 0 {
		k = p.cfg.Clusters
	}
	if k < 2 || k > 10 {
		return nil, fmt.Errorf("cluster count %d outside [2, 10]", k)
	}
	seed := p.cfg.Seed
	if params.Seed != nil {
		seed = *params.Seed
	}
	maxIter := params.MaxIterations
	if maxIter <= 0 {
		maxIter = p.cfg.MaxIterations
	}

	sel := features.Select(table, params.Target, params.Exclude)
	if len(sel.Columns) == 0 {
		return nil, &analytics.DegenerateInputError{Reason: "no usable numeric feature columns"}
	}
	if distinct := distinctRows(sel.Matrix); distinct < k {
		return nil, &analytics.DegenerateInputError{
			Reason: fmt.Sprintf("%d distinct feature rows cannot form %d clusters", distinct, k),
		}
	}

	km := NewKMeans(k, maxIter, seed)
	if err := km.Fit(sel.Matrix); err != nil {
		return nil, fmt.Errorf("clustering failed: %w", err)
	}
	labels, err := km.Predict(sel.Matrix)
	if err != nil {
		return nil, fmt.Errorf("cluster assignment failed: %w", err)
	}

	assignment := &Assignment{
		K:              k,
		Seed:           seed,
		Rows:           sel.Rows,
		FeatureColumns: sel.Columns,
		Labels:         labels,
		Personas:       buildPersonas(table, labels, k, params.Target),
		Inertia:        km.Inertia(),
		Iterations:     km.Iterations(),
	}

	p.logger.Info().
		Int("k", k).
		Int64("seed", seed).
		Int("rows", sel.Rows).
		Int("features", len(sel.Columns)).
		Int("iterations", km.Iterations()).
		Float64("inertia", km.Inertia()).
		Msg("clustering complete")

	return assignment, nil
}

// personaFields lists the aggregates personas carry, in reporting order.
func personaFields(target string) []PersonaAttribute {
	fields := []PersonaAttribute{
		{Column: colAge, Aggregate: AggregateMedian},
		{Column: colDailyMinutes, Aggregate: AggregateMean},
		{Column: colMonthlyIncome, Aggregate: AggregateMedian},
	}
	if target != "" {
		fields = append(fields, PersonaAttribute{Column: target, Aggregate: AggregateMode})
	}
	return append(fields, PersonaAttribute{Column: colWillingnessToPay, Aggregate: AggregateMedian})
}

func buildPersonas(table *dataset.Table, labels []int, k int, target string) []Persona {
	groups := make([][]int, k)
	for row, c := range labels {
		groups[c] = append(groups[c], row)
	}

	fields := personaFields(target)
	personas := make([]Persona, k)
	for c := 0; c < k; c++ {
		personas[c] = Persona{Cluster: c, Size: len(groups[c])}
		if len(groups[c]) == 0 {
			continue
		}
		for _, field := range fields {
			if attr, ok := personaAttribute(table, groups[c], field); ok {
				personas[c].Attributes = append(personas[c].Attributes, attr)
			}
		}
	}
	return personas
}

// personaAttribute computes one aggregate over the cluster's rows. The
// column must exist in the table or the attribute is skipped; numeric
// aggregates additionally need the column to be numeric.
func personaAttribute(table *dataset.Table, rows []int, field PersonaAttribute) (PersonaAttribute, bool) {
	if field.Aggregate == AggregateMode {
		cells, ok := table.Column(field.Column)
		if !ok {
			return PersonaAttribute{}, false
		}
		field.Label = modal(cells, rows)
		return field, true
	}

	values, ok := table.NumericColumn(field.Column)
	if !ok {
		return PersonaAttribute{}, false
	}
	subset := make([]float64, len(rows))
	for i, row := range rows {
		subset[i] = values[row]
	}

	var v float64
	switch field.Aggregate {
	case AggregateMean:
		v = stat.Mean(subset, nil)
	default:
		sort.Float64s(subset)
		v = stat.Quantile(0.5, stat.Empirical, subset, nil)
	}
	field.Value = &v
	return field, true
}

// modal returns the most frequent cell value among the given rows; count
// ties break toward the lexicographically smaller value.
func modal(cells []string, rows []int) string {
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[strings.TrimSpace(cells[row])]++
	}

	var winner string
	best := -1
	for value, count := range counts {
		if count > best || (count == best && value < winner) {
			winner = value
			best = count
		}
	}
	return winner
}

// distinctRows counts unique feature rows by exact value.
func distinctRows(matrix [][]float64) int {
	seen := make(map[string]struct{}, len(matrix))
	var sb strings.Builder
	for _, row := range matrix {
		sb.Reset()
		for _, v := range row {
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			sb.WriteByte('|')
		}
		seen[sb.String()] = struct{}{}
	}
	return len(seen)
}
