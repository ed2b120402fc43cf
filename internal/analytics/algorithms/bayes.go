// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package algorithms

import (
	"errors"
	"math"
)

// GaussianNB is a Gaussian naive Bayes classifier. Each feature is
// modeled as an independent normal per class; variances are smoothed by
// a fraction of the largest overall feature variance so constant
// columns cannot produce infinite densities.
type GaussianNB struct {
	VarSmoothing float64

	nClasses int
	priors   []float64   // log priors per class
	means    [][]float64 // class x feature
	vars     [][]float64
}

// NewGaussianNB returns a classifier with the customary smoothing
// factor of 1e-9.
func NewGaussianNB() *GaussianNB {
	return &GaussianNB{VarSmoothing: 1e-9}
}

// Name implements the model contract.
func (m *GaussianNB) Name() string { return "nb" }

// Fit estimates per-class priors, means, and variances.
func (m *GaussianNB) Fit(X [][]float64, y []float64) error {
	if err := checkMatrix(X, y); err != nil {
		return errors.New("nb: " + err.Error())
	}

	n, p := len(X), len(X[0])
	m.nClasses = numClasses(y)

	counts := make([]int, m.nClasses)
	m.means = make([][]float64, m.nClasses)
	m.vars = make([][]float64, m.nClasses)
	for c := range m.means {
		m.means[c] = make([]float64, p)
		m.vars[c] = make([]float64, p)
	}

	for i, row := range X {
		c := classCode(y[i], m.nClasses)
		counts[c]++
		for j, v := range row {
			m.means[c][j] += v
		}
	}
	for c, cnt := range counts {
		if cnt == 0 {
			continue
		}
		for j := range m.means[c] {
			m.means[c][j] /= float64(cnt)
		}
	}

	for i, row := range X {
		c := classCode(y[i], m.nClasses)
		for j, v := range row {
			d := v - m.means[c][j]
			m.vars[c][j] += d * d
		}
	}
	for c, cnt := range counts {
		if cnt == 0 {
			continue
		}
		for j := range m.vars[c] {
			m.vars[c][j] /= float64(cnt)
		}
	}

	// Smooth by the widest overall feature variance, matching the
	// convention most library implementations follow.
	eps := m.VarSmoothing * maxOverallVariance(X)
	if eps <= 0 {
		eps = m.VarSmoothing
	}
	for c := range m.vars {
		for j := range m.vars[c] {
			m.vars[c][j] += eps
		}
	}

	m.priors = make([]float64, m.nClasses)
	for c, cnt := range counts {
		if cnt == 0 {
			m.priors[c] = math.Inf(-1)
			continue
		}
		m.priors[c] = math.Log(float64(cnt) / float64(n))
	}
	return nil
}

// Predict returns the class with the highest posterior for each row.
func (m *GaussianNB) Predict(X [][]float64) ([]float64, error) {
	if m.priors == nil {
		return nil, errors.New("nb: not fitted")
	}
	out := make([]float64, len(X))
	for i, row := range X {
		out[i] = float64(argmaxFloat(m.logPosteriors(row)))
	}
	return out, nil
}

// PredictProbability softmaxes the log posteriors into per-class
// probabilities that sum to one per row.
func (m *GaussianNB) PredictProbability(X [][]float64) ([][]float64, error) {
	if m.priors == nil {
		return nil, errors.New("nb: not fitted")
	}
	out := make([][]float64, len(X))
	for i, row := range X {
		out[i] = softmax(m.logPosteriors(row))
	}
	return out, nil
}

// Score returns accuracy on (X, y).
func (m *GaussianNB) Score(X [][]float64, y []float64) (float64, error) {
	preds, err := m.Predict(X)
	if err != nil {
		return 0, err
	}
	return accuracy(y, preds), nil
}

func (m *GaussianNB) logPosteriors(row []float64) []float64 {
	post := make([]float64, m.nClasses)
	for c := 0; c < m.nClasses; c++ {
		lp := m.priors[c]
		for j, v := range row {
			variance := m.vars[c][j]
			d := v - m.means[c][j]
			lp += -0.5*math.Log(2*math.Pi*variance) - d*d/(2*variance)
		}
		post[c] = lp
	}
	return post
}

func maxOverallVariance(X [][]float64) float64 {
	n, p := len(X), len(X[0])
	means := make([]float64, p)
	for _, row := range X {
		for j, v := range row {
			means[j] += v
		}
	}
	for j := range means {
		means[j] /= float64(n)
	}

	var best float64
	for j := 0; j < p; j++ {
		var ss float64
		for _, row := range X {
			d := row[j] - means[j]
			ss += d * d
		}
		if v := ss / float64(n); v > best {
			best = v
		}
	}
	return best
}

// softmax converts log scores to probabilities, shifting by the max for
// numerical stability.
func softmax(scores []float64) []float64 {
	max := scores[0]
	for _, s := range scores[1:] {
		if s > max {
			max = s
		}
	}
	out := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		out[i] = math.Exp(s - max)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}
