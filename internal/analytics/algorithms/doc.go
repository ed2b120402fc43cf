// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

// Package algorithms implements the estimators served by the analytics
// engine: logistic regression, k-nearest neighbors, CART decision trees,
// random forests and Gaussian naive Bayes for classification, plus
// linear, ridge and tree-based regressors.
//
// Every estimator works on dense row-major float64 matrices. Class
// labels arrive already encoded as small non-negative integers in
// float64 form. Estimators with random choices take an explicit seed so
// a run can be reproduced exactly; none of them reads the global rand
// source.
//
// This package has no dependencies on other internal packages. The
// analytics engine consumes these types through its Model interface.
package algorithms
