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

// DecisionTree is a CART-style classifier over dense numeric features.
// Splits are binary thresholds at midpoints between adjacent distinct
// values; leaves carry the class distribution of their training rows.
//
// Feature scan order is fixed and only strictly better gains replace the
// current best split, so two trees built from the same seed and data are
// identical.
type DecisionTree struct {
	MaxDepth            int     // 0 means no depth limit
	MinSamplesSplit     int     // minimum rows to attempt a split
	MinSamplesLeaf      int     // minimum rows on each side of a split
	Criterion           string  // "gini" (default) or "entropy"
	MaxFeatures         int     // 0 means scan every feature
	MinImpurityDecrease float64 // smallest accepted gain

	seed     int64
	fixedK   int
	nClasses int
	root     *treeNode
}

type treeNode struct {
	leaf      bool
	feature   int
	threshold float64 // x <= threshold goes left
	left      *treeNode
	right     *treeNode

	n      int
	probas []float64 // class distribution, encoding order
}

// TreeOption is functional configuration for DecisionTree.
type TreeOption func(*DecisionTree)

func WithMaxDepth(d int) TreeOption { return func(t *DecisionTree) { t.MaxDepth = d } }

func WithMinSamplesSplit(n int) TreeOption {
	return func(t *DecisionTree) { t.MinSamplesSplit = n }
}

func WithMinSamplesLeaf(n int) TreeOption {
	return func(t *DecisionTree) { t.MinSamplesLeaf = n }
}

func WithCriterion(c string) TreeOption { return func(t *DecisionTree) { t.Criterion = c } }

func WithMaxFeatures(k int) TreeOption { return func(t *DecisionTree) { t.MaxFeatures = k } }

func WithMinImpurityDecrease(v float64) TreeOption {
	return func(t *DecisionTree) { t.MinImpurityDecrease = v }
}

// WithClassCount pins the width of probability vectors. The forest uses
// this so trees grown on bootstrap samples that happen to miss a class
// still emit full-width distributions.
func WithClassCount(k int) TreeOption { return func(t *DecisionTree) { t.fixedK = k } }

// NewDecisionTree returns a classifier with defaults matching a plain
// CART: unlimited depth, gini impurity, every feature scanned.
func NewDecisionTree(seed int64, opts ...TreeOption) *DecisionTree {
	t := &DecisionTree{
		MinSamplesSplit: 2,
		MinSamplesLeaf:  1,
		Criterion:       "gini",
		seed:            seed,
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Name implements the model contract.
func (t *DecisionTree) Name() string { return "tree" }

// Fit grows the tree on X and encoded labels y.
func (t *DecisionTree) Fit(X [][]float64, y []float64) error {
	if err := checkMatrix(X, y); err != nil {
		return errors.New("tree: " + err.Error())
	}

	t.nClasses = t.fixedK
	if t.nClasses == 0 {
		t.nClasses = numClasses(y)
	}

	idx := make([]int, len(X))
	for i := range idx {
		idx[i] = i
	}

	rng := rand.New(rand.NewSource(t.seed)) //nolint:gosec // deterministic training, not crypto
	impurity := giniFromCounts
	if t.Criterion == "entropy" {
		impurity = entropyFromCounts
	}

	t.root = t.grow(X, y, idx, 0, len(X[0]), impurity, rng)
	return nil
}

// Predict returns the majority class of the leaf each row lands in.
func (t *DecisionTree) Predict(X [][]float64) ([]float64, error) {
	if t.root == nil {
		return nil, errors.New("tree: not fitted")
	}
	out := make([]float64, len(X))
	for i, row := range X {
		out[i] = float64(argmaxFloat(t.leafFor(row).probas))
	}
	return out, nil
}

// PredictProbability returns each leaf's class distribution, one row per
// input, columns in encoding order.
func (t *DecisionTree) PredictProbability(X [][]float64) ([][]float64, error) {
	if t.root == nil {
		return nil, errors.New("tree: not fitted")
	}
	out := make([][]float64, len(X))
	for i, row := range X {
		probas := t.leafFor(row).probas
		cp := make([]float64, len(probas))
		copy(cp, probas)
		out[i] = cp
	}
	return out, nil
}

// Score returns accuracy on (X, y).
func (t *DecisionTree) Score(X [][]float64, y []float64) (float64, error) {
	preds, err := t.Predict(X)
	if err != nil {
		return 0, err
	}
	return accuracy(y, preds), nil
}

func (t *DecisionTree) leafFor(row []float64) *treeNode {
	node := t.root
	for !node.leaf {
		if row[node.feature] <= node.threshold {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node
}

// treeSplit is one candidate partition of the rows under consideration.
type treeSplit struct {
	gain      float64
	feature   int
	threshold float64
	left      []int
	right     []int
}

func (t *DecisionTree) grow(X [][]float64, y []float64, idx []int, depth, p int, impurity func([]int) float64, rng *rand.Rand) *treeNode {
	node := &treeNode{n: len(idx)}
	counts := classCounts(y, idx, t.nClasses)

	if isPure(counts) || len(idx) < t.MinSamplesSplit || (t.MaxDepth > 0 && depth >= t.MaxDepth) {
		node.leaf = true
		node.probas = countsToProbas(counts)
		return node
	}

	parent := impurity(counts)
	best := treeSplit{feature: -1}
	for _, f := range t.splitCandidates(p, rng) {
		if s, ok := t.bestSplitOnFeature(X, y, idx, f, parent, impurity); ok && s.gain > best.gain {
			best = s
		}
	}
	if best.feature < 0 || best.gain <= t.MinImpurityDecrease {
		node.leaf = true
		node.probas = countsToProbas(counts)
		return node
	}

	node.feature = best.feature
	node.threshold = best.threshold
	node.left = t.grow(X, y, best.left, depth+1, p, impurity, rng)
	node.right = t.grow(X, y, best.right, depth+1, p, impurity, rng)
	return node
}

// splitCandidates returns the features to scan. MaxFeatures narrows the
// scan to a random subset, re-drawn per split and sorted so the order
// stays deterministic for a given rng state.
func (t *DecisionTree) splitCandidates(p int, rng *rand.Rand) []int {
	feats := make([]int, p)
	for i := range feats {
		feats[i] = i
	}
	if t.MaxFeatures <= 0 || t.MaxFeatures >= p {
		return feats
	}
	rng.Shuffle(p, func(i, j int) { feats[i], feats[j] = feats[j], feats[i] })
	feats = feats[:t.MaxFeatures]
	sort.Ints(feats)
	return feats
}

// bestSplitOnFeature scans midpoint thresholds between adjacent distinct
// values of feature f, maximizing impurity gain.
func (t *DecisionTree) bestSplitOnFeature(X [][]float64, y []float64, idx []int, f int, parent float64, impurity func([]int) float64) (treeSplit, bool) {
	ordered := make([]int, len(idx))
	copy(ordered, idx)
	sort.SliceStable(ordered, func(a, b int) bool { return X[ordered[a]][f] < X[ordered[b]][f] })

	best := treeSplit{feature: -1}
	found := false
	total := float64(len(ordered))
	for s := 1; s < len(ordered); s++ {
		prev, cur := X[ordered[s-1]][f], X[ordered[s]][f]
		if prev == cur {
			continue
		}
		left, right := ordered[:s], ordered[s:]
		if len(left) < t.MinSamplesLeaf || len(right) < t.MinSamplesLeaf {
			continue
		}

		weighted := float64(len(left))/total*impurity(classCounts(y, left, t.nClasses)) +
			float64(len(right))/total*impurity(classCounts(y, right, t.nClasses))
		if gain := parent - weighted; gain > best.gain {
			best = treeSplit{gain: gain, feature: f, threshold: (prev + cur) / 2, left: left, right: right}
			found = true
		}
	}
	return best, found
}
