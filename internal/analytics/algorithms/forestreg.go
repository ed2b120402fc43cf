// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package algorithms

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
)

// RegressionForest bags regression trees over bootstrap samples and
// averages their predictions. Tuning fields may be set directly before
// Fit; each tree receives its own derived seed so runs are reproducible
// regardless of goroutine scheduling.
type RegressionForest struct {
	Estimators      int
	MaxDepth        int
	MinSamplesSplit int
	MaxFeatures     int // 0 means p/3, the usual regression heuristic
	Bootstrap       bool

	seed  int64
	trees []*RegressionTree
}

// NewRegressionForest returns a forest of 100 bootstrap trees.
func NewRegressionForest(seed int64) *RegressionForest {
	return &RegressionForest{
		Estimators:      100,
		MinSamplesSplit: 2,
		Bootstrap:       true,
		seed:            seed,
	}
}

// Name implements the model contract.
func (rf *RegressionForest) Name() string { return "forest" }

// Fit grows the trees concurrently, each on its own bootstrap sample.
func (rf *RegressionForest) Fit(X [][]float64, y []float64) error {
	if err := checkMatrix(X, y); err != nil {
		return errors.New("forest: " + err.Error())
	}
	if rf.Estimators < 1 {
		return errors.New("forest: needs at least one estimator")
	}

	n, p := len(X), len(X[0])
	maxFeatures := rf.MaxFeatures
	if maxFeatures <= 0 {
		maxFeatures = p / 3
		if maxFeatures < 1 {
			maxFeatures = 1
		}
	}

	rf.trees = make([]*RegressionTree, rf.Estimators)
	errCh := make(chan error, rf.Estimators)
	var wg sync.WaitGroup

	for i := 0; i < rf.Estimators; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			treeSeed := rf.seed + int64(idx)
			tree := NewRegressionTree(treeSeed)
			tree.MaxDepth = rf.MaxDepth
			tree.MinSamplesSplit = rf.MinSamplesSplit
			tree.MaxFeatures = maxFeatures

			xFit, yFit := X, y
			if rf.Bootstrap {
				rng := rand.New(rand.NewSource(treeSeed)) //nolint:gosec // deterministic sampling, not crypto
				xFit = make([][]float64, n)
				yFit = make([]float64, n)
				for s := 0; s < n; s++ {
					pick := rng.Intn(n)
					xFit[s] = X[pick]
					yFit[s] = y[pick]
				}
			}

			if err := tree.Fit(xFit, yFit); err != nil {
				errCh <- fmt.Errorf("forest: tree %d: %w", idx, err)
				return
			}
			rf.trees[idx] = tree
		}(i)
	}

	wg.Wait()
	close(errCh)
	if err := <-errCh; err != nil {
		rf.trees = nil
		return err
	}
	return nil
}

// Predict averages the member trees' predictions.
func (rf *RegressionForest) Predict(X [][]float64) ([]float64, error) {
	if rf.trees == nil {
		return nil, errors.New("forest: not fitted")
	}
	out := make([]float64, len(X))
	for _, tree := range rf.trees {
		preds, err := tree.Predict(X)
		if err != nil {
			return nil, err
		}
		for i, v := range preds {
			out[i] += v
		}
	}
	scale := 1 / float64(len(rf.trees))
	for i := range out {
		out[i] *= scale
	}
	return out, nil
}

// Score returns the coefficient of determination on (X, y).
func (rf *RegressionForest) Score(X [][]float64, y []float64) (float64, error) {
	preds, err := rf.Predict(X)
	if err != nil {
		return 0, err
	}
	return rSquared(y, preds), nil
}
