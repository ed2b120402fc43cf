// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package algorithms

import (
	"testing"
)

func TestKNNHandComputedVotes(t *testing.T) {
	x := [][]float64{{0, 0}, {0, 1}, {4, 4}, {4, 5}}
	y := []float64{0, 0, 1, 1}

	knn := NewKNN(3)
	if err := knn.Fit(x, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	// The three nearest to (0, 0.4) are both class-0 points plus (4, 4).
	probas, err := knn.PredictProbability([][]float64{{0, 0.4}})
	if err != nil {
		t.Fatalf("PredictProbability: %v", err)
	}
	closeTo(t, probas[0][0], 2.0/3.0, 1e-12)
	closeTo(t, probas[0][1], 1.0/3.0, 1e-12)

	preds, err := knn.Predict([][]float64{{0, 0.4}})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if preds[0] != 0 {
		t.Errorf("got class %v, want 0", preds[0])
	}
}

func TestKNNDistanceTieBreaksOnIndex(t *testing.T) {
	// Both training rows sit at distance one from the query; the lower
	// index must win the single neighbor slot.
	knn := NewKNN(1)
	if err := knn.Fit([][]float64{{1, 0}, {-1, 0}}, []float64{0, 1}); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	preds, err := knn.Predict([][]float64{{0, 0}})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if preds[0] != 0 {
		t.Errorf("got class %v, want 0", preds[0])
	}

	// Swapping the training order flips the winner.
	knn = NewKNN(1)
	if err := knn.Fit([][]float64{{-1, 0}, {1, 0}}, []float64{1, 0}); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	preds, err = knn.Predict([][]float64{{0, 0}})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if preds[0] != 1 {
		t.Errorf("got class %v, want 1", preds[0])
	}
}

func TestKNNClampsKToTrainingSize(t *testing.T) {
	x := [][]float64{{0}, {1}, {10}, {11}}
	y := []float64{0, 0, 1, 1}

	knn := NewKNN(10)
	if err := knn.Fit(x, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	probas, err := knn.PredictProbability([][]float64{{0.5}})
	if err != nil {
		t.Fatalf("PredictProbability: %v", err)
	}
	// All four rows vote, so the shares are exact quarters.
	closeTo(t, probas[0][0], 0.5, 1e-12)
	closeTo(t, probas[0][1], 0.5, 1e-12)
}

func TestKNNPerfectOnTrainingData(t *testing.T) {
	x, y := twoClusters()
	knn := NewKNN(1)
	if err := knn.Fit(x, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	score, err := knn.Score(x, y)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	closeTo(t, score, 1, 1e-12)
}

func TestKNNDefaultK(t *testing.T) {
	if got := NewKNN(0).K; got != 5 {
		t.Errorf("got %d, want 5", got)
	}
	if got := NewKNN(-3).K; got != 5 {
		t.Errorf("got %d, want 5", got)
	}
}

func TestKNNNotFitted(t *testing.T) {
	knn := NewKNN(3)
	if _, err := knn.Predict([][]float64{{1}}); err == nil {
		t.Error("Predict before Fit should fail")
	}
}
