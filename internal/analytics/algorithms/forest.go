// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package algorithms

import (
	"errors"
	"math"
	"math/rand"
	"sync"
)

// RandomForest bags seeded decision trees over bootstrap samples and
// soft-votes their class distributions. Tree i always derives its seed
// from the forest seed plus i, so the ensemble is reproducible no matter
// how the goroutines interleave.
type RandomForest struct {
	Estimators      int
	MaxDepth        int
	MinSamplesSplit int
	MaxFeatures     int // 0 means sqrt of the feature count
	Bootstrap       bool

	seed     int64
	nClasses int
	trees    []*DecisionTree
}

// ForestOption is functional configuration for RandomForest.
type ForestOption func(*RandomForest)

func WithEstimators(n int) ForestOption { return func(rf *RandomForest) { rf.Estimators = n } }

func WithBootstrap(b bool) ForestOption { return func(rf *RandomForest) { rf.Bootstrap = b } }

// NewRandomForest returns a forest with bagging defaults.
func NewRandomForest(seed int64, opts ...ForestOption) *RandomForest {
	rf := &RandomForest{
		Estimators:      100,
		MinSamplesSplit: 2,
		Bootstrap:       true,
		seed:            seed,
	}
	for _, o := range opts {
		o(rf)
	}
	return rf
}

// Name implements the model contract.
func (rf *RandomForest) Name() string { return "forest" }

// Fit grows the trees in parallel, each on its own bootstrap sample.
func (rf *RandomForest) Fit(X [][]float64, y []float64) error {
	if err := checkMatrix(X, y); err != nil {
		return errors.New("forest: " + err.Error())
	}
	if rf.Estimators < 1 {
		return errors.New("forest: needs at least one estimator")
	}

	n := len(X)
	rf.nClasses = numClasses(y)

	maxFeatures := rf.MaxFeatures
	if maxFeatures <= 0 {
		maxFeatures = int(math.Sqrt(float64(len(X[0]))))
		if maxFeatures < 1 {
			maxFeatures = 1
		}
	}

	rf.trees = make([]*DecisionTree, rf.Estimators)
	errCh := make(chan error, rf.Estimators)
	var wg sync.WaitGroup
	for i := 0; i < rf.Estimators; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			treeSeed := rf.seed + int64(i)
			rng := rand.New(rand.NewSource(treeSeed)) //nolint:gosec // deterministic training, not crypto

			sampleX, sampleY := X, y
			if rf.Bootstrap {
				sampleX = make([][]float64, n)
				sampleY = make([]float64, n)
				for j := 0; j < n; j++ {
					k := rng.Intn(n)
					sampleX[j] = X[k]
					sampleY[j] = y[k]
				}
			}

			tree := NewDecisionTree(treeSeed,
				WithMaxDepth(rf.MaxDepth),
				WithMinSamplesSplit(rf.MinSamplesSplit),
				WithMaxFeatures(maxFeatures),
				WithClassCount(rf.nClasses),
			)
			if err := tree.Fit(sampleX, sampleY); err != nil {
				errCh <- err
				return
			}
			rf.trees[i] = tree
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		if err != nil {
			return err
		}
	}
	return nil
}

// Predict soft-votes: the class with the highest mean probability across
// trees wins.
func (rf *RandomForest) Predict(X [][]float64) ([]float64, error) {
	probs, err := rf.PredictProbability(X)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(probs))
	for i := range probs {
		out[i] = float64(argmaxFloat(probs[i]))
	}
	return out, nil
}

// PredictProbability averages the per-tree class distributions.
func (rf *RandomForest) PredictProbability(X [][]float64) ([][]float64, error) {
	if len(rf.trees) == 0 {
		return nil, errors.New("forest: not fitted")
	}

	out := make([][]float64, len(X))
	for i := range out {
		out[i] = make([]float64, rf.nClasses)
	}
	for _, tree := range rf.trees {
		probs, err := tree.PredictProbability(X)
		if err != nil {
			return nil, err
		}
		for i := range probs {
			for c := range probs[i] {
				out[i][c] += probs[i][c]
			}
		}
	}

	inv := 1 / float64(len(rf.trees))
	for i := range out {
		for c := range out[i] {
			out[i][c] *= inv
		}
	}
	return out, nil
}

// Score returns accuracy on (X, y).
func (rf *RandomForest) Score(X [][]float64, y []float64) (float64, error) {
	preds, err := rf.Predict(X)
	if err != nil {
		return 0, err
	}
	return accuracy(y, preds), nil
}
