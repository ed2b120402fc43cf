// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package algorithms

import (
	"reflect"
	"testing"
)

func stepData() ([][]float64, []float64) {
	x := [][]float64{{0}, {1}, {2}, {3}, {4}, {5}, {6}, {7}, {8}, {9}}
	y := []float64{1, 1, 1, 1, 1, 9, 9, 9, 9, 9}
	return x, y
}

func threeSteps() ([][]float64, []float64) {
	x := [][]float64{{0}, {1}, {2}, {3}, {4}, {5}}
	y := []float64{10, 10, 20, 20, 30, 30}
	return x, y
}

func TestRegressionTreeStepFunction(t *testing.T) {
	x, y := stepData()
	tree := NewRegressionTree(1)
	if err := tree.Fit(x, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	preds, err := tree.Predict([][]float64{{2}, {7}})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	closeTo(t, preds[0], 1, 1e-12)
	closeTo(t, preds[1], 9, 1e-12)

	score, err := tree.Score(x, y)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	closeTo(t, score, 1, 1e-12)
}

func TestRegressionTreeDepthLimit(t *testing.T) {
	x, y := threeSteps()

	tree := NewRegressionTree(1)
	tree.MaxDepth = 1
	if err := tree.Fit(x, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	// The best single split isolates the two lowest targets; everything
	// to the right collapses to the mean of 20s and 30s.
	preds, err := tree.Predict(x)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	want := []float64{10, 10, 25, 25, 25, 25}
	for i := range want {
		closeTo(t, preds[i], want[i], 1e-12)
	}

	score, err := tree.Score(x, y)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	closeTo(t, score, 0.75, 1e-12)
}

func TestRegressionTreeMinSamplesLeaf(t *testing.T) {
	x, y := threeSteps()

	tree := NewRegressionTree(1)
	tree.MinSamplesLeaf = 3
	if err := tree.Fit(x, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	// Only the middle threshold leaves three rows on each side, and the
	// children are too small to split again.
	preds, err := tree.Predict([][]float64{{0}, {5}})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	closeTo(t, preds[0], 40.0/3.0, 1e-12)
	closeTo(t, preds[1], 80.0/3.0, 1e-12)
}

func TestRegressionTreeDeterministicFeatureSubsets(t *testing.T) {
	x := [][]float64{
		{0, 5}, {1, 4}, {2, 3}, {3, 2}, {4, 1}, {5, 0},
		{6, 9}, {7, 8}, {8, 7}, {9, 6},
	}
	y := []float64{1, 1, 1, 1, 1, 1, 9, 9, 9, 9}

	run := func() []float64 {
		tree := NewRegressionTree(13)
		tree.MaxFeatures = 1
		if err := tree.Fit(x, y); err != nil {
			t.Fatalf("Fit: %v", err)
		}
		preds, err := tree.Predict(x)
		if err != nil {
			t.Fatalf("Predict: %v", err)
		}
		return preds
	}

	if first, second := run(), run(); !reflect.DeepEqual(first, second) {
		t.Errorf("same seed produced different trees: %v vs %v", first, second)
	}
}

func TestRegressionTreeNotFitted(t *testing.T) {
	tree := NewRegressionTree(1)
	if _, err := tree.Predict([][]float64{{1}}); err == nil {
		t.Error("Predict before Fit should fail")
	}
}

func TestRegressionTreeRejectsBadInput(t *testing.T) {
	tree := NewRegressionTree(1)
	if err := tree.Fit(nil, nil); err == nil {
		t.Error("empty input should fail")
	}
	if err := tree.Fit([][]float64{{1}, {2}}, []float64{1}); err == nil {
		t.Error("misaligned input should fail")
	}
}
