// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package algorithms

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// RidgeRegression fits L2-regularized least squares on centered data.
// The intercept is recovered from the column means and is never
// penalized.
type RidgeRegression struct {
	Lambda float64

	coef      []float64
	intercept float64
}

// NewRidgeRegression returns a ridge model with the given penalty.
// Non-positive values fall back to 1.0.
func NewRidgeRegression(lambda float64) *RidgeRegression {
	if lambda <= 0 {
		lambda = 1.0
	}
	return &RidgeRegression{Lambda: lambda}
}

// Name implements the model contract.
func (m *RidgeRegression) Name() string { return "ridge" }

// Fit solves (Xc'Xc + lambda*I) w = Xc'yc on centered copies of the
// inputs. The shifted gram matrix is positive definite for any positive
// lambda, so the solve cannot hit a singularity even with collinear
// survey columns.
func (m *RidgeRegression) Fit(X [][]float64, y []float64) error {
	if err := checkMatrix(X, y); err != nil {
		return errors.New("ridge: " + err.Error())
	}

	n, p := len(X), len(X[0])

	xMeans := make([]float64, p)
	for _, row := range X {
		for j, v := range row {
			xMeans[j] += v
		}
	}
	for j := range xMeans {
		xMeans[j] /= float64(n)
	}
	var yMean float64
	for _, v := range y {
		yMean += v
	}
	yMean /= float64(n)

	centered := mat.NewDense(n, p, nil)
	for i, row := range X {
		for j, v := range row {
			centered.Set(i, j, v-xMeans[j])
		}
	}
	yc := mat.NewVecDense(n, nil)
	for i, v := range y {
		yc.SetVec(i, v-yMean)
	}

	var gram mat.Dense
	gram.Mul(centered.T(), centered)
	for j := 0; j < p; j++ {
		gram.Set(j, j, gram.At(j, j)+m.Lambda)
	}

	rhs := mat.NewVecDense(p, nil)
	rhs.MulVec(centered.T(), yc)

	w := mat.NewVecDense(p, nil)
	if err := w.SolveVec(&gram, rhs); err != nil {
		if _, ok := err.(mat.Condition); !ok {
			return errors.New("ridge: failed to solve regularized system")
		}
	}

	m.coef = make([]float64, p)
	for j := 0; j < p; j++ {
		m.coef[j] = w.AtVec(j)
	}
	m.intercept = yMean - dot(m.coef, xMeans)
	return nil
}

// Predict returns intercept + coef . row for each row.
func (m *RidgeRegression) Predict(X [][]float64) ([]float64, error) {
	if m.coef == nil {
		return nil, errors.New("ridge: not fitted")
	}
	out := make([]float64, len(X))
	for i, row := range X {
		if len(row) != len(m.coef) {
			return nil, fmt.Errorf("ridge: row has %d features, model expects %d", len(row), len(m.coef))
		}
		out[i] = m.intercept + dot(m.coef, row)
	}
	return out, nil
}

// Score returns the coefficient of determination on (X, y).
func (m *RidgeRegression) Score(X [][]float64, y []float64) (float64, error) {
	preds, err := m.Predict(X)
	if err != nil {
		return 0, err
	}
	return rSquared(y, preds), nil
}

// Coefficients returns a copy of the fitted weights and the intercept.
func (m *RidgeRegression) Coefficients() ([]float64, float64) {
	return append([]float64(nil), m.coef...), m.intercept
}
