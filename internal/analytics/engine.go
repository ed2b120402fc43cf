// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package analytics

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/focusnest/internal/config"
	"github.com/tomtom215/focusnest/internal/dataset"
	"github.com/tomtom215/focusnest/internal/features"
	"github.com/tomtom215/focusnest/internal/logging"
)

// rocUnavailableNote marks models that expose no per-class probabilities.
const rocUnavailableNote = "ROC unavailable: model does not expose class probabilities"

// Engine owns the model registries and runs the evaluation pipelines.
// Estimators are created fresh per run, so the engine is safe for
// concurrent use. Trained inference handles are kept per dataset revision
// behind trainedMu.
type Engine struct {
	cfg         config.AnalysisConfig
	logger      zerolog.Logger
	classifiers *Registry
	regressors  *Registry

	trainedMu sync.Mutex
	trained   map[string]*TrainedModel
	trainedFP string
}

// NewEngine creates an engine with empty registries. Algorithms are
// registered at startup by cmd/server.
func NewEngine(cfg config.AnalysisConfig) *Engine {
	return &Engine{
		cfg:         cfg,
		logger:      logging.WithComponent("analytics"),
		classifiers: NewRegistry(),
		regressors:  NewRegistry(),
		trained:     make(map[string]*TrainedModel),
	}
}

// RegisterClassifier adds a classifier factory under its model name.
func (e *Engine) RegisterClassifier(f Factory) error {
	if err := e.classifiers.Register(f); err != nil {
		return err
	}
	e.logger.Info().Str("model", f(0).Name()).Msg("registered classifier")
	return nil
}

// RegisterRegressor adds a regressor factory under its model name.
func (e *Engine) RegisterRegressor(f Factory) error {
	if err := e.regressors.Register(f); err != nil {
		return err
	}
	e.logger.Info().Str("model", f(0).Name()).Msg("registered regressor")
	return nil
}

// ClassifierNames lists registered classifiers, sorted.
func (e *Engine) ClassifierNames() []string { return e.classifiers.Names() }

// RegressorNames lists registered regressors, sorted.
func (e *Engine) RegressorNames() []string { return e.regressors.Names() }

// resolveFraction falls back to the configured test fraction when the
// request carries none.
func (e *Engine) resolveFraction(f float64) float64 {
	if f <= 0 || f >= 1 {
		return e.cfg.TestFraction
	}
	return f
}

// resolveSeed falls back to the configured seed when the request carries
// none. An explicit zero is honored.
func (e *Engine) resolveSeed(s *int64) int64 {
	if s == nil {
		return e.cfg.Seed
	}
	return *s
}

// ClassificationParams select and shape one classification run. A zero
// TestFraction and a nil Seed fall back to configured defaults; an empty
// Model evaluates every registered classifier.
type ClassificationParams struct {
	Target       string   `json:"target"`
	Model        string   `json:"model,omitempty"`
	TestFraction float64  `json:"test_fraction,omitempty"`
	Seed         *int64   `json:"seed,omitempty"`
	Exclude      []string `json:"exclude,omitempty"`
}

// ModelEvaluation is one classifier's held-out performance. A model that
// cannot fit carries its failure reason and nothing else; the run as a
// whole still succeeds.
type ModelEvaluation struct {
	Model     string                 `json:"model"`
	Error     string                 `json:"error,omitempty"`
	Metrics   *ClassificationMetrics `json:"metrics,omitempty"`
	Confusion [][]int                `json:"confusion_matrix,omitempty"`
	ROC       []ROCCurve             `json:"roc,omitempty"`
	ROCNote   string                 `json:"roc_note,omitempty"`
}

// ClassificationReport is the outcome of one evaluation run across the
// selected classifiers, all fit and scored on the same partition.
type ClassificationReport struct {
	Target         string            `json:"target"`
	Classes        []string          `json:"classes"`
	FeatureColumns []string          `json:"feature_columns"`
	Rows           int               `json:"rows"`
	TrainRows      int               `json:"train_rows"`
	TestRows       int               `json:"test_rows"`
	TestFraction   float64           `json:"test_fraction"`
	Seed           int64             `json:"seed"`
	Models         []ModelEvaluation `json:"models"`
}

// EvaluateClassification encodes the target, splits once, then fits and
// scores each selected classifier on that single partition.
func (e *Engine) EvaluateClassification(table *dataset.Table, p ClassificationParams) (*ClassificationReport, error) {
	fraction := e.resolveFraction(p.TestFraction)
	seed := e.resolveSeed(p.Seed)

	names := e.classifiers.Names()
	if p.Model != "" {
		if !e.classifiers.Has(p.Model) {
			return nil, &UnknownModelError{Name: p.Model, Known: names}
		}
		names = []string{p.Model}
	}

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

	trainIdx, testIdx, err := StratifiedSplit(y, fraction, seed)
	if err != nil {
		return nil, err
	}
	XTrain := subsetRows(sel.Matrix, trainIdx)
	yTrain := subsetLabels(y, trainIdx)
	XTest := subsetRows(sel.Matrix, testIdx)
	yTest := subsetLabels(y, testIdx)

	report := &ClassificationReport{
		Target:         p.Target,
		Classes:        enc.Classes(),
		FeatureColumns: sel.Columns,
		Rows:           sel.Rows,
		TrainRows:      len(trainIdx),
		TestRows:       len(testIdx),
		TestFraction:   fraction,
		Seed:           seed,
		Models:         make([]ModelEvaluation, 0, len(names)),
	}
	for _, name := range names {
		report.Models = append(report.Models, e.evaluateClassifier(name, seed, XTrain, yTrain, XTest, yTest, enc))
	}

	e.logger.Info().
		Str("target", p.Target).
		Int("models", len(report.Models)).
		Int("train_rows", report.TrainRows).
		Int("test_rows", report.TestRows).
		Int64("seed", seed).
		Msg("classification evaluation complete")
	return report, nil
}

// evaluateClassifier fits one named classifier on the train partition and
// scores it on the test partition. Failures are absorbed into the
// evaluation record.
func (e *Engine) evaluateClassifier(name string, seed int64, xTrain [][]float64, yTrain []float64, xTest [][]float64, yTest []float64, enc *dataset.LabelEncoding) ModelEvaluation {
	eval := ModelEvaluation{Model: name}

	model, err := e.classifiers.Create(name, seed)
	if err != nil {
		eval.Error = err.Error()
		return eval
	}

	start := time.Now()
	if err := model.Fit(xTrain, yTrain); err != nil {
		e.logger.Warn().Err(err).Str("model", name).Msg("classifier fit failed")
		eval.Error = fmt.Sprintf("fit: %v", err)
		return eval
	}
	preds, err := model.Predict(xTest)
	if err != nil {
		eval.Error = fmt.Sprintf("predict: %v", err)
		return eval
	}

	k := enc.NumClasses()
	metrics := MacroMetrics(yTest, preds, k)
	eval.Metrics = &metrics
	eval.Confusion = ConfusionMatrix(yTest, preds, k)

	if pc, ok := model.(ProbabilityClassifier); ok {
		probs, err := pc.PredictProbability(xTest)
		if err != nil {
			eval.ROCNote = fmt.Sprintf("ROC unavailable: %v", err)
		} else {
			eval.ROC = ROCOneVsRest(yTest, probs, enc.Classes())
		}
	} else {
		eval.ROCNote = rocUnavailableNote
	}

	e.logger.Debug().
		Str("model", name).
		Float64("accuracy", metrics.Accuracy).
		Dur("elapsed", time.Since(start)).
		Msg("classifier evaluated")
	return eval
}
