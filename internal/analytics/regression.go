// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package analytics

import (
	"fmt"

	"github.com/tomtom215/focusnest/internal/dataset"
	"github.com/tomtom215/focusnest/internal/features"
)

// regressionNote is attached to every regression report: scores are
// computed on the same rows the models were fit on, so they measure fit
// quality rather than generalization.
const regressionNote = "models are fit and scored on the full dataset; metrics measure in-sample fit, not held-out performance"

// RegressionParams select and shape one regression run. An empty Model
// evaluates every registered regressor.
type RegressionParams struct {
	Target  string   `json:"target"`
	Model   string   `json:"model,omitempty"`
	Seed    *int64   `json:"seed,omitempty"`
	Exclude []string `json:"exclude,omitempty"`
}

// RegressionEvaluation is one regressor's in-sample fit quality.
type RegressionEvaluation struct {
	Model   string             `json:"model"`
	Error   string             `json:"error,omitempty"`
	Metrics *RegressionMetrics `json:"metrics,omitempty"`
}

// RegressionReport is the outcome of one regression run.
type RegressionReport struct {
	Target         string                 `json:"target"`
	FeatureColumns []string               `json:"feature_columns"`
	Rows           int                    `json:"rows"`
	Seed           int64                  `json:"seed"`
	Note           string                 `json:"note"`
	Models         []RegressionEvaluation `json:"models"`
}

// EvaluateRegression strips the target from the feature matrix, fits each
// selected regressor on every row, and scores the fitted predictions.
func (e *Engine) EvaluateRegression(table *dataset.Table, p RegressionParams) (*RegressionReport, error) {
	seed := e.resolveSeed(p.Seed)

	prof, ok := table.Profile(p.Target)
	if !ok {
		return nil, &InvalidColumnSelectionError{Column: p.Target, Reason: "column not found"}
	}
	if !prof.IsNumeric() {
		return nil, &InvalidColumnSelectionError{Column: p.Target, Reason: "regression target must be numeric"}
	}

	sel := features.Select(table, p.Target, p.Exclude)
	if len(sel.Columns) == 0 {
		return nil, &DegenerateInputError{Reason: "no usable numeric feature columns"}
	}
	y, ok := table.NumericColumn(p.Target)
	if !ok {
		return nil, &InvalidColumnSelectionError{Column: p.Target, Reason: "regression target must be numeric"}
	}

	names := e.regressors.Names()
	if p.Model != "" {
		if !e.regressors.Has(p.Model) {
			return nil, &UnknownModelError{Name: p.Model, Known: names}
		}
		names = []string{p.Model}
	}

	report := &RegressionReport{
		Target:         p.Target,
		FeatureColumns: sel.Columns,
		Rows:           sel.Rows,
		Seed:           seed,
		Note:           regressionNote,
		Models:         make([]RegressionEvaluation, 0, len(names)),
	}
	for _, name := range names {
		report.Models = append(report.Models, e.fitAndScoreRegressor(name, seed, sel.Matrix, y))
	}

	e.logger.Info().
		Str("target", p.Target).
		Int("models", len(report.Models)).
		Int("rows", sel.Rows).
		Msg("regression evaluation complete")
	return report, nil
}

// fitAndScoreRegressor fits one named regressor on the full matrix and
// scores its own fitted predictions. Failures are absorbed into the
// evaluation record.
func (e *Engine) fitAndScoreRegressor(name string, seed int64, X [][]float64, y []float64) RegressionEvaluation {
	eval := RegressionEvaluation{Model: name}

	model, err := e.regressors.Create(name, seed)
	if err != nil {
		eval.Error = err.Error()
		return eval
	}
	if err := model.Fit(X, y); err != nil {
		e.logger.Warn().Err(err).Str("model", name).Msg("regressor fit failed")
		eval.Error = fmt.Sprintf("fit: %v", err)
		return eval
	}
	preds, err := model.Predict(X)
	if err != nil {
		eval.Error = fmt.Sprintf("predict: %v", err)
		return eval
	}

	metrics := ScoreRegression(y, preds)
	eval.Metrics = &metrics
	return eval
}
