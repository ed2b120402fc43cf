// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

// Package mining derives association rules over the survey's binary
// indicator columns (platform-used, challenge-experienced, valued-feature
// flags) with a levelwise Apriori search.
package mining

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/focusnest/internal/analytics"
	"github.com/tomtom215/focusnest/internal/config"
	"github.com/tomtom215/focusnest/internal/dataset"
	"github.com/tomtom215/focusnest/internal/logging"
)

// Rule is one mined association between disjoint sets of binary columns.
// Support is the co-occurrence fraction over all rows, confidence the
// conditional frequency of the consequent given the antecedent, and lift
// the confidence relative to the consequent's unconditional support.
type Rule struct {
	Antecedent []string `json:"antecedent"`
	Consequent []string `json:"consequent"`
	Support    float64  `json:"support"`
	Confidence float64  `json:"confidence"`
	Lift       float64  `json:"lift"`
}

// Result carries one full mining run. Rules hold the unabridged set sorted
// by descending lift; callers slice their own top-N view with Top. Empty
// marks runs that legitimately produced nothing, with Reason saying why.
type Result struct {
	Columns          []string `json:"columns"`
	Rows             int      `json:"rows"`
	MinSupport       float64  `json:"min_support"`
	MinConfidence    float64  `json:"min_confidence"`
	FrequentItemsets int      `json:"frequent_itemsets"`
	Rules            []Rule   `json:"rules"`
	Empty            bool     `json:"empty"`
	Reason           string   `json:"reason,omitempty"`
}

// Top returns the strongest n rules, or all of them when fewer exist.
func (r *Result) Top(n int) []Rule {
	if n <= 0 || n >= len(r.Rules) {
		return r.Rules
	}
	return r.Rules[:n]
}

// Params selects the mining inputs. Zero thresholds fall back to the
// configured defaults.
type Params struct {
	Columns       []string `json:"columns"`
	MinSupport    float64  `json:"min_support"`
	MinConfidence float64  `json:"min_confidence"`
}

// Miner mines association rules from the loaded dataset.
type Miner struct {
	cfg    config.AnalysisConfig
	logger zerolog.Logger
}

// NewMiner creates a miner with the configured threshold defaults.
func NewMiner(cfg config.AnalysisConfig) *Miner {
	return &Miner{cfg: cfg, logger: logging.WithComponent("mining")}
}

// Run validates the selected columns, mines frequent itemsets, and derives
// the rule set. Fewer than two usable columns is an empty outcome rather
// than an error; a cell holding anything besides 0/1 or a boolean literal
// after dropping blanks rejects the selection naming the column.
func (m *Miner) Run(table *dataset.Table, params Params) (*Result, error) {
	minSupport := params.MinSupport
	if minSupport == 0 {
		minSupport = m.cfg.MinSupport
	}
	minConfidence := params.MinConfidence
	if minConfidence == 0 {
		minConfidence = m.cfg.MinConfidence
	}
	if minSupport < 0.01 || minSupport > 0.2 {
		return nil, fmt.Errorf("minimum support %v outside [0.01, 0.2]", minSupport)
	}
	if minConfidence < 0.1 || minConfidence > 0.95 {
		return nil, fmt.Errorf("minimum confidence %v outside [0.1, 0.95]", minConfidence)
	}

	columns := dedupeColumns(params.Columns)
	result := &Result{
		Columns:       columns,
		Rows:          table.Rows(),
		MinSupport:    minSupport,
		MinConfidence: minConfidence,
		Rules:         []Rule{},
	}
	if len(columns) < 2 {
		result.Empty = true
		result.Reason = "fewer than two binary columns selected"
		return result, nil
	}

	b, err := buildBasket(table, columns)
	if err != nil {
		return nil, err
	}

	sets, supports := frequentItemsets(b, len(columns), minSupport)
	candidates := deriveRules(sets, supports, minConfidence)
	sortRules(candidates)

	result.FrequentItemsets = len(sets)
	for _, c := range candidates {
		result.Rules = append(result.Rules, Rule{
			Antecedent: columnNames(columns, c.antecedent),
			Consequent: columnNames(columns, c.consequent),
			Support:    c.support,
			Confidence: c.confidence,
			Lift:       c.lift,
		})
	}
	if len(result.Rules) == 0 {
		result.Empty = true
		result.Reason = "no rules met the support and confidence thresholds"
	}

	m.logger.Info().
		Int("columns", len(columns)).
		Int("rows", table.Rows()).
		Float64("min_support", minSupport).
		Float64("min_confidence", minConfidence).
		Int("frequent_itemsets", result.FrequentItemsets).
		Int("rules", len(result.Rules)).
		Msg("mining complete")
	return result, nil
}

// buildBasket parses every selected column into the presence matrix.
func buildBasket(table *dataset.Table, columns []string) (basket, error) {
	b := basket{presence: make([][]bool, len(columns)), rows: table.Rows()}
	for i, name := range columns {
		cells, ok := table.Column(name)
		if !ok {
			return basket{}, &analytics.InvalidColumnSelectionError{Column: name, Reason: "column not found"}
		}
		flags := make([]bool, len(cells))
		for r, cell := range cells {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			on, err := parseBinaryCell(cell)
			if err != nil {
				return basket{}, &analytics.InvalidColumnSelectionError{
					Column: name,
					Reason: fmt.Sprintf("value %q is not binary", cell),
				}
			}
			flags[r] = on
		}
		b.presence[i] = flags
	}
	return b, nil
}

// parseBinaryCell accepts 0/1 in any numeric spelling plus boolean literals.
func parseBinaryCell(cell string) (bool, error) {
	if v, err := strconv.ParseFloat(cell, 64); err == nil {
		switch v {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}
		return false, fmt.Errorf("non-binary value %v", v)
	}
	return strconv.ParseBool(strings.ToLower(cell))
}

// dedupeColumns drops blank and repeated names, keeping first-seen order.
func dedupeColumns(columns []string) []string {
	seen := make(map[string]struct{}, len(columns))
	out := make([]string, 0, len(columns))
	for _, name := range columns {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func columnNames(columns []string, items []int) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = columns[item]
	}
	return names
}
