// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package algorithms

import (
	"math"
	"testing"
)

func TestGaussianNBSeparableClusters(t *testing.T) {
	x, y := twoClusters()
	nb := NewGaussianNB()
	if err := nb.Fit(x, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	score, err := nb.Score(x, y)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	closeTo(t, score, 1, 1e-12)
}

func TestGaussianNBProbabilitiesSumToOne(t *testing.T) {
	x, y := twoClusters()
	nb := NewGaussianNB()
	if err := nb.Fit(x, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	probas, err := nb.PredictProbability(x)
	if err != nil {
		t.Fatalf("PredictProbability: %v", err)
	}
	for i, row := range probas {
		var sum float64
		for _, p := range row {
			if p < 0 || p > 1 || math.IsNaN(p) {
				t.Errorf("row %d has invalid probability %v", i, p)
			}
			sum += p
		}
		closeTo(t, sum, 1, 1e-9)
	}
}

func TestGaussianNBPriorsDecideIdenticalFeatures(t *testing.T) {
	// Every row looks the same, so the class balance is all the model
	// has to go on.
	x := [][]float64{{7}, {7}, {7}, {7}}
	y := []float64{0, 0, 0, 1}

	nb := NewGaussianNB()
	if err := nb.Fit(x, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	preds, err := nb.Predict([][]float64{{7}})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if preds[0] != 0 {
		t.Errorf("got class %v, want majority class 0", preds[0])
	}
}

func TestGaussianNBConstantColumnStaysFinite(t *testing.T) {
	// The first column never varies; smoothing keeps its density finite
	// while the second column still separates the classes.
	x := [][]float64{{5, 0}, {5, 0.2}, {5, 10}, {5, 9.8}}
	y := []float64{0, 0, 1, 1}

	nb := NewGaussianNB()
	if err := nb.Fit(x, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	probas, err := nb.PredictProbability(x)
	if err != nil {
		t.Fatalf("PredictProbability: %v", err)
	}
	for i, row := range probas {
		for _, p := range row {
			if math.IsNaN(p) || math.IsInf(p, 0) {
				t.Fatalf("row %d has non-finite probability %v", i, p)
			}
		}
	}

	score, err := nb.Score(x, y)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	closeTo(t, score, 1, 1e-12)
}

func TestGaussianNBNotFitted(t *testing.T) {
	nb := NewGaussianNB()
	if _, err := nb.Predict([][]float64{{1}}); err == nil {
		t.Error("Predict before Fit should fail")
	}
	if _, err := nb.PredictProbability([][]float64{{1}}); err == nil {
		t.Error("PredictProbability before Fit should fail")
	}
}
