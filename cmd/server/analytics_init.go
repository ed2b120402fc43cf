// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package main

import (
	"github.com/tomtom215/focusnest/internal/analytics"
	"github.com/tomtom215/focusnest/internal/analytics/algorithms"
)

// registerAlgorithms wires every shipped estimator into the engine.
// Factories build a fresh model per run so fitted state never leaks
// between requests; constructor arguments pin the default
// hyperparameters (k=5 neighbors, lambda=1.0 ridge penalty).
func registerAlgorithms(engine *analytics.Engine) error {
	classifiers := []analytics.Factory{
		func(seed int64) analytics.Model { return algorithms.NewLogisticRegression(seed) },
		func(seed int64) analytics.Model { return algorithms.NewKNN(5) },
		func(seed int64) analytics.Model { return algorithms.NewDecisionTree(seed) },
		func(seed int64) analytics.Model { return algorithms.NewRandomForest(seed) },
		func(seed int64) analytics.Model { return algorithms.NewGaussianNB() },
	}
	for _, f := range classifiers {
		if err := engine.RegisterClassifier(f); err != nil {
			return err
		}
	}

	regressors := []analytics.Factory{
		func(seed int64) analytics.Model { return algorithms.NewLinearRegression() },
		func(seed int64) analytics.Model { return algorithms.NewRidgeRegression(1.0) },
		func(seed int64) analytics.Model { return algorithms.NewRegressionTree(seed) },
		func(seed int64) analytics.Model { return algorithms.NewRegressionForest(seed) },
	}
	for _, f := range regressors {
		if err := engine.RegisterRegressor(f); err != nil {
			return err
		}
	}

	return nil
}
