// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package algorithms

import (
	"errors"
	"runtime"
	"sort"
	"sync"
)

// KNN classifies by majority vote among the k nearest training rows
// under squared Euclidean distance. Fit is lazy; the work happens at
// prediction time, parallelized across input rows.
//
// Distance ties break on the lower training row index, so predictions do
// not depend on sort internals.
type KNN struct {
	K int

	x        [][]float64
	y        []float64
	nClasses int
}

// NewKNN returns a classifier voting over k neighbors.
func NewKNN(k int) *KNN {
	if k < 1 {
		k = 5
	}
	return &KNN{K: k}
}

// Name implements the model contract.
func (m *KNN) Name() string { return "knn" }

// Fit memorizes the training data.
func (m *KNN) Fit(X [][]float64, y []float64) error {
	if err := checkMatrix(X, y); err != nil {
		return errors.New("knn: " + err.Error())
	}
	m.x = X
	m.y = y
	m.nClasses = numClasses(y)
	return nil
}

// Predict returns the winning class per row; vote ties go to the class
// with the lower code.
func (m *KNN) Predict(X [][]float64) ([]float64, error) {
	votes, err := m.voteShares(X)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(votes))
	for i := range votes {
		out[i] = float64(argmaxFloat(votes[i]))
	}
	return out, nil
}

// PredictProbability returns each row's neighborhood vote shares, which
// sum to one across classes.
func (m *KNN) PredictProbability(X [][]float64) ([][]float64, error) {
	return m.voteShares(X)
}

// Score returns accuracy on (X, y).
func (m *KNN) Score(X [][]float64, y []float64) (float64, error) {
	preds, err := m.Predict(X)
	if err != nil {
		return 0, err
	}
	return accuracy(y, preds), nil
}

func (m *KNN) voteShares(X [][]float64) ([][]float64, error) {
	if len(m.x) == 0 {
		return nil, errors.New("knn: not fitted")
	}

	out := make([][]float64, len(X))
	workers := runtime.GOMAXPROCS(0)
	rowsPerWorker := (len(X) + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := start + rowsPerWorker
		if end > len(X) {
			end = len(X)
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				out[i] = m.voteSingle(X[i])
			}
		}(start, end)
	}
	wg.Wait()
	return out, nil
}

func (m *KNN) voteSingle(row []float64) []float64 {
	type neighbor struct {
		dist float64
		idx  int
	}
	neighbors := make([]neighbor, len(m.x))
	for i, train := range m.x {
		neighbors[i] = neighbor{dist: euclidSquared(row, train), idx: i}
	}
	sort.Slice(neighbors, func(a, b int) bool {
		if neighbors[a].dist != neighbors[b].dist {
			return neighbors[a].dist < neighbors[b].dist
		}
		return neighbors[a].idx < neighbors[b].idx
	})

	k := m.K
	if k > len(neighbors) {
		k = len(neighbors)
	}
	votes := make([]float64, m.nClasses)
	for _, nb := range neighbors[:k] {
		votes[classCode(m.y[nb.idx], m.nClasses)]++
	}
	for c := range votes {
		votes[c] /= float64(k)
	}
	return votes
}
