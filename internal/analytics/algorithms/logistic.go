// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package algorithms

import (
	"errors"
	"math"
	"math/rand"
)

// LogisticRegression is a one-vs-rest logistic classifier trained with
// seeded minibatch gradient descent. Features are standardized
// internally; survey columns live on wildly different scales (minutes,
// years, income) and raw gradients would not converge.
type LogisticRegression struct {
	Lr        float64
	Epochs    int
	BatchSize int

	seed     int64
	nClasses int
	weights  [][]float64 // one vector per class
	bias     []float64
	means    []float64
	stds     []float64
}

// NewLogisticRegression returns a classifier with training defaults that
// converge comfortably on standardized survey-scale data.
func NewLogisticRegression(seed int64) *LogisticRegression {
	return &LogisticRegression{
		Lr:        0.1,
		Epochs:    200,
		BatchSize: 32,
		seed:      seed,
	}
}

// Name implements the model contract.
func (m *LogisticRegression) Name() string { return "logreg" }

// Fit trains one binary head per encoded class.
func (m *LogisticRegression) Fit(X [][]float64, y []float64) error {
	if err := checkMatrix(X, y); err != nil {
		return errors.New("logreg: " + err.Error())
	}
	if m.Epochs < 1 || m.Lr <= 0 || m.BatchSize < 1 {
		return errors.New("logreg: invalid training parameters")
	}

	n, p := len(X), len(X[0])
	m.nClasses = numClasses(y)
	m.means, m.stds = standardizer(X)
	z := make([][]float64, n)
	for i, row := range X {
		z[i] = standardize(row, m.means, m.stds)
	}

	rng := rand.New(rand.NewSource(m.seed)) //nolint:gosec // deterministic training, not crypto

	m.weights = make([][]float64, m.nClasses)
	m.bias = make([]float64, m.nClasses)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	grad := make([]float64, p)

	for c := 0; c < m.nClasses; c++ {
		w := make([]float64, p)
		for j := range w {
			w[j] = rng.NormFloat64() * 0.01
		}
		var b float64

		target := make([]float64, n)
		for i := range y {
			if classCode(y[i], m.nClasses) == c {
				target[i] = 1
			}
		}

		for epoch := 0; epoch < m.Epochs; epoch++ {
			rng.Shuffle(n, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
			for start := 0; start < n; start += m.BatchSize {
				end := start + m.BatchSize
				if end > n {
					end = n
				}

				for j := range grad {
					grad[j] = 0
				}
				var gradB float64
				for _, i := range perm[start:end] {
					diff := sigmoid(dot(w, z[i])+b) - target[i]
					for j, v := range z[i] {
						grad[j] += diff * v
					}
					gradB += diff
				}

				scale := m.Lr / float64(end-start)
				for j := range w {
					w[j] -= scale * grad[j]
				}
				b -= scale * gradB
			}
		}

		m.weights[c] = w
		m.bias[c] = b
	}
	return nil
}

// Predict returns the class whose head scores highest.
func (m *LogisticRegression) Predict(X [][]float64) ([]float64, error) {
	probs, err := m.PredictProbability(X)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(probs))
	for i := range probs {
		out[i] = float64(argmaxFloat(probs[i]))
	}
	return out, nil
}

// PredictProbability normalizes the per-head sigmoid scores so each row
// sums to one across classes.
func (m *LogisticRegression) PredictProbability(X [][]float64) ([][]float64, error) {
	if m.weights == nil {
		return nil, errors.New("logreg: not fitted")
	}

	out := make([][]float64, len(X))
	for i, row := range X {
		z := standardize(row, m.means, m.stds)
		scores := make([]float64, m.nClasses)
		var sum float64
		for c := 0; c < m.nClasses; c++ {
			scores[c] = sigmoid(dot(m.weights[c], z) + m.bias[c])
			sum += scores[c]
		}
		if sum > 0 {
			for c := range scores {
				scores[c] /= sum
			}
		} else {
			for c := range scores {
				scores[c] = 1 / float64(m.nClasses)
			}
		}
		out[i] = scores
	}
	return out, nil
}

// Score returns accuracy on (X, y).
func (m *LogisticRegression) Score(X [][]float64, y []float64) (float64, error) {
	preds, err := m.Predict(X)
	if err != nil {
		return 0, err
	}
	return accuracy(y, preds), nil
}

// standardizer computes per-column means and standard deviations.
// Zero-variance columns get a unit deviation so standardizing them
// yields zero rather than NaN.
func standardizer(X [][]float64) (means, stds []float64) {
	n, p := len(X), len(X[0])
	means = make([]float64, p)
	stds = make([]float64, p)

	for _, row := range X {
		for j, v := range row {
			means[j] += v
		}
	}
	for j := range means {
		means[j] /= float64(n)
	}

	for _, row := range X {
		for j, v := range row {
			d := v - means[j]
			stds[j] += d * d
		}
	}
	for j := range stds {
		stds[j] = math.Sqrt(stds[j] / float64(n))
		if stds[j] == 0 {
			stds[j] = 1
		}
	}
	return means, stds
}

func standardize(row, means, stds []float64) []float64 {
	z := make([]float64, len(row))
	for j, v := range row {
		z[j] = (v - means[j]) / stds[j]
	}
	return z
}
