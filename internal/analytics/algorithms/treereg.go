// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package algorithms

import (
	"errors"
	"math/rand"
	"sort"
)

// RegressionTree is a CART regressor. Splits minimize the summed squared
// error of the child means, found with prefix sums over the sorted
// feature values. Tuning fields may be set directly before Fit.
type RegressionTree struct {
	MaxDepth        int // 0 means unlimited
	MinSamplesSplit int
	MinSamplesLeaf  int
	MaxFeatures     int // 0 means all features

	seed int64
	root *regNode
}

type regNode struct {
	leaf      bool
	feature   int
	threshold float64 // x <= threshold goes left
	left      *regNode
	right     *regNode
	value     float64 // mean of training targets at this node
	n         int
}

// NewRegressionTree returns a tree with unlimited depth and minimal
// stopping constraints.
func NewRegressionTree(seed int64) *RegressionTree {
	return &RegressionTree{
		MinSamplesSplit: 2,
		MinSamplesLeaf:  1,
		seed:            seed,
	}
}

// Name implements the model contract.
func (t *RegressionTree) Name() string { return "tree" }

// Fit grows the tree on (X, y).
func (t *RegressionTree) Fit(X [][]float64, y []float64) error {
	if err := checkMatrix(X, y); err != nil {
		return errors.New("tree: " + err.Error())
	}
	if t.MinSamplesSplit < 2 {
		t.MinSamplesSplit = 2
	}
	if t.MinSamplesLeaf < 1 {
		t.MinSamplesLeaf = 1
	}

	idx := make([]int, len(X))
	for i := range idx {
		idx[i] = i
	}
	rng := rand.New(rand.NewSource(t.seed)) //nolint:gosec // deterministic growth, not crypto
	t.root = t.grow(X, y, idx, 0, rng)
	return nil
}

// Predict returns the leaf mean for each row.
func (t *RegressionTree) Predict(X [][]float64) ([]float64, error) {
	if t.root == nil {
		return nil, errors.New("tree: not fitted")
	}
	out := make([]float64, len(X))
	for i, row := range X {
		node := t.root
		for !node.leaf {
			if row[node.feature] <= node.threshold {
				node = node.left
			} else {
				node = node.right
			}
		}
		out[i] = node.value
	}
	return out, nil
}

// Score returns the coefficient of determination on (X, y).
func (t *RegressionTree) Score(X [][]float64, y []float64) (float64, error) {
	preds, err := t.Predict(X)
	if err != nil {
		return 0, err
	}
	return rSquared(y, preds), nil
}

func (t *RegressionTree) grow(X [][]float64, y []float64, idx []int, depth int, rng *rand.Rand) *regNode {
	var sum, sumSq float64
	for _, i := range idx {
		sum += y[i]
		sumSq += y[i] * y[i]
	}
	n := float64(len(idx))
	mean := sum / n
	sse := sumSq - sum*sum/n

	node := &regNode{value: mean, n: len(idx)}
	if sse <= 0 || len(idx) < t.MinSamplesSplit || (t.MaxDepth > 0 && depth >= t.MaxDepth) {
		node.leaf = true
		return node
	}

	best := t.bestSplit(X, y, idx, sse, rng)
	if best.feature < 0 {
		node.leaf = true
		return node
	}

	var left, right []int
	for _, i := range idx {
		if X[i][best.feature] <= best.threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	node.feature = best.feature
	node.threshold = best.threshold
	node.left = t.grow(X, y, left, depth+1, rng)
	node.right = t.grow(X, y, right, depth+1, rng)
	return node
}

type regSplit struct {
	feature   int
	threshold float64
	gain      float64
}

// bestSplit scans candidate features in ascending order and keeps the
// first split with the strictly largest SSE reduction, so identical
// inputs always produce identical trees.
func (t *RegressionTree) bestSplit(X [][]float64, y []float64, idx []int, parentSSE float64, rng *rand.Rand) regSplit {
	p := len(X[0])
	features := t.featureSubset(p, rng)

	best := regSplit{feature: -1}
	order := make([]int, len(idx))
	for _, f := range features {
		copy(order, idx)
		sort.SliceStable(order, func(a, b int) bool {
			return X[order[a]][f] < X[order[b]][f]
		})

		// Prefix sums over the sorted targets let each candidate
		// threshold be scored in constant time.
		var leftSum, leftSq float64
		var totalSum, totalSq float64
		for _, i := range order {
			totalSum += y[i]
			totalSq += y[i] * y[i]
		}

		for k := 0; k < len(order)-1; k++ {
			yi := y[order[k]]
			leftSum += yi
			leftSq += yi * yi

			cur, next := X[order[k]][f], X[order[k+1]][f]
			if cur == next {
				continue
			}
			nl, nr := k+1, len(order)-k-1
			if nl < t.MinSamplesLeaf || nr < t.MinSamplesLeaf {
				continue
			}

			sseLeft := leftSq - leftSum*leftSum/float64(nl)
			rightSum := totalSum - leftSum
			sseRight := (totalSq - leftSq) - rightSum*rightSum/float64(nr)
			gain := parentSSE - sseLeft - sseRight
			if gain > best.gain {
				best = regSplit{feature: f, threshold: (cur + next) / 2, gain: gain}
			}
		}
	}
	return best
}

func (t *RegressionTree) featureSubset(p int, rng *rand.Rand) []int {
	if t.MaxFeatures <= 0 || t.MaxFeatures >= p {
		all := make([]int, p)
		for i := range all {
			all[i] = i
		}
		return all
	}
	picked := rng.Perm(p)[:t.MaxFeatures]
	sort.Ints(picked)
	return picked
}
