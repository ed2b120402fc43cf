// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package analytics

import (
	"fmt"
	"sort"
	"sync"
)

// Model is the contract every estimator satisfies. Targets travel as
// float64 on both sides: classifiers receive and return encoded class
// codes, regressors receive and return raw values.
type Model interface {
	// Name is the registry key, stable across releases.
	Name() string

	// Fit trains on row-major features X and aligned targets y.
	Fit(X [][]float64, y []float64) error

	// Predict returns one value per row of X. Fit must have been called.
	Predict(X [][]float64) ([]float64, error)

	// Score is the headline goodness-of-fit on (X, y): accuracy for
	// classifiers, coefficient of determination for regressors.
	Score(X [][]float64, y []float64) (float64, error)
}

// ProbabilityClassifier is implemented by classifiers that attach
// per-class confidence to predictions. Row i of the returned matrix holds
// one probability per encoded class, in encoding order.
type ProbabilityClassifier interface {
	Model

	PredictProbability(X [][]float64) ([][]float64, error)
}

// Factory builds a fresh, unfitted estimator. The seed drives every
// random choice the estimator makes, so the same seed reproduces the same
// fitted model on the same data. Estimators without randomness ignore it.
type Factory func(seed int64) Model

// Registry maps model names to factories. A fresh estimator is built per
// run so fitted state never leaks between requests. Safe for concurrent
// use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under the name its estimators report.
// Duplicate names are rejected.
func (r *Registry) Register(f Factory) error {
	name := f(0).Name()
	if name == "" {
		return fmt.Errorf("model factory returned an empty name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("model %q already registered", name)
	}
	r.factories[name] = f
	return nil
}

// Create builds a fresh estimator for name, seeded for determinism.
func (r *Registry) Create(name string, seed int64) (Model, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &UnknownModelError{Name: name, Known: r.Names()}
	}
	return f(seed), nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Names returns the registered model names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered models.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}
