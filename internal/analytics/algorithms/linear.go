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

// LinearRegression fits ordinary least squares via QR factorization of
// the design matrix. Closed-form solving sidesteps the learning-rate
// tuning an iterative fit would need on unscaled survey columns.
type LinearRegression struct {
	coef      []float64
	intercept float64
}

// NewLinearRegression returns an unfitted OLS model.
func NewLinearRegression() *LinearRegression {
	return &LinearRegression{}
}

// Name implements the model contract.
func (m *LinearRegression) Name() string { return "linear" }

// Fit solves min ||Xw - y|| over the design matrix with an intercept
// column prepended.
func (m *LinearRegression) Fit(X [][]float64, y []float64) error {
	if err := checkMatrix(X, y); err != nil {
		return errors.New("linear: " + err.Error())
	}

	n, p := len(X), len(X[0])
	if n < p+1 {
		return fmt.Errorf("linear: need at least %d rows to fit %d features, got %d", p+1, p, n)
	}

	design := mat.NewDense(n, p+1, nil)
	for i, row := range X {
		design.Set(i, 0, 1)
		for j, v := range row {
			design.Set(i, j+1, v)
		}
	}

	target := mat.NewVecDense(n, append([]float64(nil), y...))

	var qr mat.QR
	qr.Factorize(design)

	w := mat.NewVecDense(p+1, nil)
	if err := qr.SolveVecTo(w, false, target); err != nil {
		// A condition warning still carries a usable least-squares
		// solution; anything else is a genuine failure.
		if _, ok := err.(mat.Condition); !ok {
			return errors.New("linear: singular design matrix")
		}
	}

	m.intercept = w.AtVec(0)
	m.coef = make([]float64, p)
	for j := 0; j < p; j++ {
		m.coef[j] = w.AtVec(j + 1)
	}
	return nil
}

// Predict returns intercept + coef . row for each row.
func (m *LinearRegression) Predict(X [][]float64) ([]float64, error) {
	if m.coef == nil {
		return nil, errors.New("linear: not fitted")
	}
	out := make([]float64, len(X))
	for i, row := range X {
		if len(row) != len(m.coef) {
			return nil, fmt.Errorf("linear: row has %d features, model expects %d", len(row), len(m.coef))
		}
		out[i] = m.intercept + dot(m.coef, row)
	}
	return out, nil
}

// Score returns the coefficient of determination on (X, y).
func (m *LinearRegression) Score(X [][]float64, y []float64) (float64, error) {
	preds, err := m.Predict(X)
	if err != nil {
		return 0, err
	}
	return rSquared(y, preds), nil
}

// Coefficients returns a copy of the fitted weights, intercept last.
func (m *LinearRegression) Coefficients() ([]float64, float64) {
	return append([]float64(nil), m.coef...), m.intercept
}
