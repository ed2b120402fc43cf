// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package analytics

import (
	"errors"
	"reflect"
	"sort"
	"testing"
)

// twoClassLabels builds nZero rows of class 0 followed by nOne rows of
// class 1.
func twoClassLabels(nZero, nOne int) []float64 {
	y := make([]float64, 0, nZero+nOne)
	for i := 0; i < nZero; i++ {
		y = append(y, 0)
	}
	for i := 0; i < nOne; i++ {
		y = append(y, 1)
	}
	return y
}

func classCounts(y []float64, idx []int) map[float64]int {
	counts := make(map[float64]int)
	for _, i := range idx {
		counts[y[i]]++
	}
	return counts
}

func TestStratifiedSplitProportions(t *testing.T) {
	y := twoClassLabels(60, 40)

	train, test, err := StratifiedSplit(y, 0.3, 42)
	if err != nil {
		t.Fatalf("StratifiedSplit: %v", err)
	}

	if len(train)+len(test) != 100 {
		t.Fatalf("train+test = %d, want 100", len(train)+len(test))
	}
	if len(test) != 30 {
		t.Errorf("len(test) = %d, want 30", len(test))
	}

	testCounts := classCounts(y, test)
	if testCounts[0] != 18 {
		t.Errorf("test rows of class 0 = %d, want 18", testCounts[0])
	}
	if testCounts[1] != 12 {
		t.Errorf("test rows of class 1 = %d, want 12", testCounts[1])
	}

	trainCounts := classCounts(y, train)
	if trainCounts[0] != 42 || trainCounts[1] != 28 {
		t.Errorf("train class counts = %v, want 42/28", trainCounts)
	}
}

func TestStratifiedSplitPartition(t *testing.T) {
	y := twoClassLabels(7, 5)

	train, test, err := StratifiedSplit(y, 0.25, 9)
	if err != nil {
		t.Fatalf("StratifiedSplit: %v", err)
	}

	seen := make(map[int]int)
	for _, i := range train {
		seen[i]++
	}
	for _, i := range test {
		seen[i]++
	}
	if len(seen) != len(y) {
		t.Errorf("split covers %d rows, want %d", len(seen), len(y))
	}
	for i, n := range seen {
		if n != 1 {
			t.Errorf("row %d appears %d times across the split", i, n)
		}
	}

	if !sort.IntsAreSorted(train) || !sort.IntsAreSorted(test) {
		t.Error("split indices are not sorted ascending")
	}
}

func TestStratifiedSplitDeterministic(t *testing.T) {
	y := twoClassLabels(60, 40)

	train1, test1, err := StratifiedSplit(y, 0.3, 42)
	if err != nil {
		t.Fatalf("StratifiedSplit: %v", err)
	}
	train2, test2, err := StratifiedSplit(y, 0.3, 42)
	if err != nil {
		t.Fatalf("StratifiedSplit: %v", err)
	}
	if !reflect.DeepEqual(train1, train2) || !reflect.DeepEqual(test1, test2) {
		t.Error("same seed produced different partitions")
	}

	_, test3, err := StratifiedSplit(y, 0.3, 43)
	if err != nil {
		t.Fatalf("StratifiedSplit: %v", err)
	}
	if reflect.DeepEqual(test1, test3) {
		t.Error("different seeds produced identical test sets")
	}
}

func TestStratifiedSplitRebalancesTinyClasses(t *testing.T) {
	// Per-class rounding at 0.3 yields an empty test set for two
	// singleton classes; the split must still hand back one row.
	train, test, err := StratifiedSplit([]float64{0, 1}, 0.3, 1)
	if err != nil {
		t.Fatalf("StratifiedSplit: %v", err)
	}
	if len(train) != 1 || len(test) != 1 {
		t.Errorf("train/test sizes = %d/%d, want 1/1", len(train), len(test))
	}
}

func TestStratifiedSplitErrors(t *testing.T) {
	if _, _, err := StratifiedSplit([]float64{0}, 0.3, 1); err == nil {
		t.Error("single-row split succeeded, want error")
	} else {
		var degenerate *DegenerateInputError
		if !errors.As(err, &degenerate) {
			t.Errorf("single-row split error = %v, want DegenerateInputError", err)
		}
	}

	for _, fraction := range []float64{0, 1, -0.2, 1.5} {
		if _, _, err := StratifiedSplit(twoClassLabels(5, 5), fraction, 1); err == nil {
			t.Errorf("fraction %v accepted, want error", fraction)
		}
	}
}
