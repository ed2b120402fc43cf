// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package analytics

import (
	"errors"
	"testing"
)

// stubClassifier predicts a fixed class for every row.
type stubClassifier struct {
	name   string
	class  float64
	fitted bool
}

func (s *stubClassifier) Name() string { return s.name }

func (s *stubClassifier) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return errors.New("empty matrix")
	}
	s.fitted = true
	return nil
}

func (s *stubClassifier) Predict(X [][]float64) ([]float64, error) {
	if !s.fitted {
		return nil, errors.New("not fitted")
	}
	out := make([]float64, len(X))
	for i := range out {
		out[i] = s.class
	}
	return out, nil
}

func (s *stubClassifier) Score(X [][]float64, y []float64) (float64, error) {
	preds, err := s.Predict(X)
	if err != nil {
		return 0, err
	}
	correct := 0
	for i := range y {
		if y[i] == preds[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(y)), nil
}

// probClassifier scores class 1 by the first feature value clamped to
// [0, 1], so tests control probabilities through the data.
type probClassifier struct {
	fitted bool
}

func (p *probClassifier) Name() string { return "prob" }

func (p *probClassifier) Fit(X [][]float64, y []float64) error {
	p.fitted = true
	return nil
}

func (p *probClassifier) Predict(X [][]float64) ([]float64, error) {
	probs, err := p.PredictProbability(X)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(probs))
	for i := range probs {
		if probs[i][1] >= 0.5 {
			out[i] = 1
		}
	}
	return out, nil
}

func (p *probClassifier) PredictProbability(X [][]float64) ([][]float64, error) {
	if !p.fitted {
		return nil, errors.New("not fitted")
	}
	out := make([][]float64, len(X))
	for i, row := range X {
		v := row[0]
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		out[i] = []float64{1 - v, v}
	}
	return out, nil
}

func (p *probClassifier) Score(X [][]float64, y []float64) (float64, error) {
	preds, err := p.Predict(X)
	if err != nil {
		return 0, err
	}
	correct := 0
	for i := range y {
		if y[i] == preds[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(y)), nil
}

// failingModel refuses to fit, for exercising partial-result paths.
type failingModel struct{}

func (f *failingModel) Name() string { return "fail" }

func (f *failingModel) Fit(X [][]float64, y []float64) error {
	return errors.New("singular matrix")
}

func (f *failingModel) Predict(X [][]float64) ([]float64, error) {
	return nil, errors.New("not fitted")
}

func (f *failingModel) Score(X [][]float64, y []float64) (float64, error) {
	return 0, errors.New("not fitted")
}

// meanRegressor predicts the training mean for every row.
type meanRegressor struct {
	mean   float64
	fitted bool
}

func (m *meanRegressor) Name() string { return "mean" }

func (m *meanRegressor) Fit(X [][]float64, y []float64) error {
	if len(y) == 0 {
		return errors.New("empty target")
	}
	var sum float64
	for _, v := range y {
		sum += v
	}
	m.mean = sum / float64(len(y))
	m.fitted = true
	return nil
}

func (m *meanRegressor) Predict(X [][]float64) ([]float64, error) {
	if !m.fitted {
		return nil, errors.New("not fitted")
	}
	out := make([]float64, len(X))
	for i := range out {
		out[i] = m.mean
	}
	return out, nil
}

func (m *meanRegressor) Score(X [][]float64, y []float64) (float64, error) {
	preds, err := m.Predict(X)
	if err != nil {
		return 0, err
	}
	return ScoreRegression(y, preds).R2, nil
}

func TestRegistryRegisterAndCreate(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(func(seed int64) Model { return &stubClassifier{name: "stub"} }); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if !r.Has("stub") {
		t.Error("Has(stub) = false, want true")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}

	first, err := r.Create("stub", 1)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := r.Create("stub", 1)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first == second {
		t.Error("Create returned the same instance twice, want fresh estimators")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	factory := func(seed int64) Model { return &stubClassifier{name: "stub"} }
	if err := r.Register(factory); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if err := r.Register(factory); err == nil {
		t.Error("second Register succeeded, want duplicate error")
	}
}

func TestRegistryRejectsEmptyName(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(func(seed int64) Model { return &stubClassifier{} }); err == nil {
		t.Error("Register with empty name succeeded, want error")
	}
}

func TestRegistryCreateUnknown(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(func(seed int64) Model { return &stubClassifier{name: "stub"} }); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := r.Create("nope", 1)
	var unknown *UnknownModelError
	if !errors.As(err, &unknown) {
		t.Fatalf("Create(nope) error = %v, want UnknownModelError", err)
	}
	if unknown.Name != "nope" {
		t.Errorf("Name = %q, want nope", unknown.Name)
	}
	if len(unknown.Known) != 1 || unknown.Known[0] != "stub" {
		t.Errorf("Known = %v, want [stub]", unknown.Known)
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		n := name
		if err := r.Register(func(seed int64) Model { return &stubClassifier{name: n} }); err != nil {
			t.Fatalf("Register(%s): %v", n, err)
		}
	}

	got := r.Names()
	want := []string{"alpha", "mid", "zeta"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
