// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package analytics

import "testing"

func TestROCPerfectSeparation(t *testing.T) {
	yTrue := []float64{1, 1, 0, 0}
	probs := [][]float64{{0.1, 0.9}, {0.2, 0.8}, {0.8, 0.2}, {0.9, 0.1}}

	curves := ROCOneVsRest(yTrue, probs, []string{"No", "Yes"})
	if len(curves) != 2 {
		t.Fatalf("got %d curves, want 2", len(curves))
	}
	for _, c := range curves {
		if !almostEqual(c.AUC, 1) {
			t.Errorf("class %s AUC = %v, want 1", c.Class, c.AUC)
		}
	}
}

func TestROCHandComputedAUC(t *testing.T) {
	// Class 1 scores rank one negative above one positive, so one of
	// four positive/negative pairs is misordered.
	yTrue := []float64{1, 0, 1, 0}
	probs := [][]float64{{0.1, 0.9}, {0.2, 0.8}, {0.3, 0.7}, {0.9, 0.1}}

	curves := ROCOneVsRest(yTrue, probs, []string{"No", "Yes"})
	if len(curves) != 2 {
		t.Fatalf("got %d curves, want 2", len(curves))
	}
	for _, c := range curves {
		if !almostEqual(c.AUC, 0.75) {
			t.Errorf("class %s AUC = %v, want 0.75", c.Class, c.AUC)
		}
	}
}

func TestROCCurveShape(t *testing.T) {
	yTrue := []float64{0, 1, 0, 1, 1}
	probs := [][]float64{{0.7, 0.3}, {0.4, 0.6}, {0.5, 0.5}, {0.9, 0.1}, {0.2, 0.8}}

	curves := ROCOneVsRest(yTrue, probs, []string{"No", "Yes"})
	for _, c := range curves {
		first := c.Points[0]
		last := c.Points[len(c.Points)-1]
		if first.FPR != 0 || first.TPR != 0 {
			t.Errorf("class %s starts at (%v, %v), want (0, 0)", c.Class, first.FPR, first.TPR)
		}
		if last.FPR != 1 || last.TPR != 1 {
			t.Errorf("class %s ends at (%v, %v), want (1, 1)", c.Class, last.FPR, last.TPR)
		}
		for i := 1; i < len(c.Points); i++ {
			if c.Points[i].FPR < c.Points[i-1].FPR {
				t.Errorf("class %s FPR decreases at point %d", c.Class, i)
			}
			if c.Points[i].TPR < c.Points[i-1].TPR {
				t.Errorf("class %s TPR decreases at point %d", c.Class, i)
			}
		}
		if c.AUC < 0 || c.AUC > 1 {
			t.Errorf("class %s AUC = %v, want within [0, 1]", c.Class, c.AUC)
		}
	}
}

func TestROCTiedScoresCollapse(t *testing.T) {
	yTrue := []float64{1, 0}
	probs := [][]float64{{0.5, 0.5}, {0.5, 0.5}}

	curves := ROCOneVsRest(yTrue, probs, []string{"No", "Yes"})
	if len(curves) != 2 {
		t.Fatalf("got %d curves, want 2", len(curves))
	}
	for _, c := range curves {
		if len(c.Points) != 2 {
			t.Errorf("class %s has %d points, want 2 for a single tie group", c.Class, len(c.Points))
		}
		if !almostEqual(c.AUC, 0.5) {
			t.Errorf("class %s AUC = %v, want 0.5", c.Class, c.AUC)
		}
	}
}

func TestROCSkipsClassesWithoutBothOutcomes(t *testing.T) {
	yTrue := []float64{0, 0, 0}
	probs := [][]float64{{0.9, 0.1}, {0.8, 0.2}, {0.7, 0.3}}

	curves := ROCOneVsRest(yTrue, probs, []string{"No", "Yes"})
	if len(curves) != 0 {
		t.Errorf("got %d curves for a single-outcome target, want 0", len(curves))
	}
}
