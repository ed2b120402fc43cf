// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

// Package analytics runs the modeling pipelines over prepared feature
// matrices: classifier evaluation on a stratified held-out split,
// regressor evaluation on in-sample fit, and single-model training for
// row-level inference on uploaded tables.
//
// Estimators are registered by name at startup and constructed fresh for
// every run, seeded so identical requests reproduce identical results.
// The concrete algorithms live in the algorithms subpackage; this package
// only knows the Model contract.
package analytics
