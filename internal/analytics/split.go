// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package analytics

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// StratifiedSplit partitions row indices [0, len(y)) into train and test
// sets. The test set takes testFraction of each class, rounded to the
// nearest row, so class proportions survive the split within one row per
// class. The same seed yields the same partition. Both returned slices
// are sorted ascending.
func StratifiedSplit(y []float64, testFraction float64, seed int64) (train, test []int, err error) {
	n := len(y)
	if n < 2 {
		return nil, nil, &DegenerateInputError{Reason: fmt.Sprintf("%d rows cannot be split", n)}
	}
	if testFraction <= 0 || testFraction >= 1 {
		return nil, nil, fmt.Errorf("test fraction %v outside (0, 1)", testFraction)
	}

	// Group row indices per class, classes in first-encounter order so
	// the walk below is deterministic.
	var order []float64
	groups := make(map[float64][]int)
	for i, label := range y {
		if _, ok := groups[label]; !ok {
			order = append(order, label)
		}
		groups[label] = append(groups[label], i)
	}

	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // reproducibility matters here, not crypto strength
	for _, label := range order {
		rows := groups[label]
		rng.Shuffle(len(rows), func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })
		want := int(math.Round(float64(len(rows)) * testFraction))
		test = append(test, rows[:want]...)
		train = append(train, rows[want:]...)
	}

	// Rounding can empty one side when every class is tiny; rebalance
	// with a single row rather than failing the run.
	if len(test) == 0 {
		test = append(test, train[len(train)-1])
		train = train[:len(train)-1]
	}
	if len(train) == 0 {
		train = append(train, test[len(test)-1])
		test = test[:len(test)-1]
	}

	sort.Ints(train)
	sort.Ints(test)
	return train, test, nil
}

// subsetRows gathers the rows of X at the given indices.
func subsetRows(X [][]float64, idx []int) [][]float64 {
	out := make([][]float64, len(idx))
	for i, j := range idx {
		out[i] = X[j]
	}
	return out
}

// subsetLabels gathers the entries of y at the given indices.
func subsetLabels(y []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = y[j]
	}
	return out
}
