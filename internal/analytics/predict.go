// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package analytics

import (
	"fmt"
	"strings"

	"github.com/tomtom215/focusnest/internal/dataset"
	"github.com/tomtom215/focusnest/internal/features"
)

// TrainedModel couples a fitted estimator with the exact feature frame
// and target encoding it was trained against. Inference never runs
// against a different column set; tables are projected onto the training
// columns first.
type TrainedModel struct {
	model    Model
	columns  []string
	encoding *dataset.LabelEncoding
	target   string
	seed     int64
}

// ModelName returns the underlying estimator's registry name.
func (tm *TrainedModel) ModelName() string { return tm.model.Name() }

// Target returns the label column the model was trained to predict.
func (tm *TrainedModel) Target() string { return tm.target }

// Columns returns the training feature columns in fit order.
func (tm *TrainedModel) Columns() []string {
	out := make([]string, len(tm.columns))
	copy(out, tm.columns)
	return out
}

// TrainParams select the estimator and data shape for TrainClassifier.
type TrainParams struct {
	Target  string   `json:"target"`
	Model   string   `json:"model"`
	Seed    *int64   `json:"seed,omitempty"`
	Exclude []string `json:"exclude,omitempty"`
}

// TrainClassifier fits one named classifier on the full table and returns
// a handle for row-level inference.
func (e *Engine) TrainClassifier(table *dataset.Table, p TrainParams) (*TrainedModel, error) {
	seed := e.resolveSeed(p.Seed)

	sel := features.Select(table, p.Target, p.Exclude)
	if len(sel.Columns) == 0 {
		return nil, &DegenerateInputError{Reason: "no usable numeric feature columns"}
	}

	labels, ok := table.Column(p.Target)
	if !ok {
		return nil, &InvalidColumnSelectionError{Column: p.Target, Reason: "column not found"}
	}
	enc := dataset.NewLabelEncoding(labels)
	if enc.NumClasses() < 2 {
		return nil, &DegenerateInputError{Reason: fmt.Sprintf("target %q has a single class", p.Target)}
	}
	y, err := enc.EncodeAll(labels)
	if err != nil {
		return nil, err
	}

	model, err := e.classifiers.Create(p.Model, seed)
	if err != nil {
		return nil, err
	}
	if err := model.Fit(sel.Matrix, y); err != nil {
		return nil, fmt.Errorf("fit %s: %w", p.Model, err)
	}

	e.logger.Info().
		Str("model", p.Model).
		Str("target", p.Target).
		Int("rows", sel.Rows).
		Int("features", len(sel.Columns)).
		Msg("classifier trained")

	return &TrainedModel{
		model:    model,
		columns:  sel.Columns,
		encoding: enc,
		target:   p.Target,
		seed:     seed,
	}, nil
}

// TrainedClassifier returns the handle already trained for these parameters
// on the current dataset revision, fitting one when absent. Handles are
// keyed on the dataset fingerprint, so a reload or upload invalidates every
// handle from the previous table. The mutex is held across training, which
// serializes fits; repeated requests for the same model train it once.
func (e *Engine) TrainedClassifier(table *dataset.Table, p TrainParams) (*TrainedModel, error) {
	key := fmt.Sprintf("%s|%d|%s|%s",
		p.Model, e.resolveSeed(p.Seed), p.Target, strings.Join(p.Exclude, ","))

	e.trainedMu.Lock()
	defer e.trainedMu.Unlock()

	if e.trainedFP != table.Fingerprint() {
		e.trained = make(map[string]*TrainedModel)
		e.trainedFP = table.Fingerprint()
	}
	if tm, ok := e.trained[key]; ok {
		return tm, nil
	}

	tm, err := e.TrainClassifier(table, p)
	if err != nil {
		return nil, err
	}
	e.trained[key] = tm
	return tm, nil
}

// PredictionResult carries one decoded label per input row.
type PredictionResult struct {
	Model          string   `json:"model"`
	Target         string   `json:"target"`
	FeatureColumns []string `json:"feature_columns"`
	Rows           int      `json:"rows"`
	Labels         []string `json:"labels"`
	Seed           int64    `json:"seed"`
}

// Predict projects the table onto the training columns, in training
// order, and decodes one label per row. Missing columns are all named in
// the returned SchemaMismatchError; extra columns are ignored.
func (tm *TrainedModel) Predict(table *dataset.Table) (*PredictionResult, error) {
	var missing []string
	for _, name := range tm.columns {
		if !table.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaMismatchError{Missing: missing}
	}

	cols := make([][]float64, len(tm.columns))
	for j, name := range tm.columns {
		vals, ok := table.NumericColumn(name)
		if !ok {
			return nil, &DegenerateInputError{Reason: fmt.Sprintf("column %q is not numeric in the prediction table", name)}
		}
		cols[j] = vals
	}

	X := make([][]float64, table.Rows())
	for i := range X {
		row := make([]float64, len(cols))
		for j := range cols {
			row[j] = cols[j][i]
		}
		X[i] = row
	}

	preds, err := tm.model.Predict(X)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}
	decoded, err := tm.encoding.DecodeAll(preds)
	if err != nil {
		return nil, err
	}

	return &PredictionResult{
		Model:          tm.model.Name(),
		Target:         tm.target,
		FeatureColumns: tm.Columns(),
		Rows:           len(decoded),
		Labels:         decoded,
		Seed:           tm.seed,
	}, nil
}
