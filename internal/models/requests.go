// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package models

// ClassificationRequest configures a classification evaluation run.
//
// Model optionally restricts the run to one registered classifier; when empty
// every registered classifier is evaluated on the same partition. Registry
// membership is checked by the engine so new algorithms need no API change.
// TestFraction and Seed fall back to the configured analysis defaults when
// omitted. Seed is a pointer so an explicit seed of 0 is distinguishable from
// "use the default".
//
// Example:
//
//	{
//	  "model": "logreg",
//	  "test_fraction": 0.3,
//	  "seed": 42,
//	  "exclude_columns": ["respondent_id"]
//	}
type ClassificationRequest struct {
	Model          string   `json:"model,omitempty" validate:"omitempty,min=1,max=64"`
	TestFraction   float64  `json:"test_fraction,omitempty" validate:"omitempty,gt=0,lt=1"`
	Seed           *int64   `json:"seed,omitempty" validate:"omitempty,gte=0"`
	ExcludeColumns []string `json:"exclude_columns,omitempty" validate:"omitempty,dive,colname"`
}

// ClusteringRequest configures a clustering + persona profiling run.
// Clusters outside [2,10] are rejected; zero means "use the configured default".
type ClusteringRequest struct {
	Clusters       int      `json:"clusters,omitempty" validate:"omitempty,gte=2,lte=10"`
	Seed           *int64   `json:"seed,omitempty" validate:"omitempty,gte=0"`
	MaxIterations  int      `json:"max_iterations,omitempty" validate:"omitempty,gte=1,lte=10000"`
	ExcludeColumns []string `json:"exclude_columns,omitempty" validate:"omitempty,dive,colname"`
}

// AssociationRequest configures an association rule mining run.
//
// Columns optionally restricts mining to the named binary columns; when empty
// every strictly-binary column in the dataset participates. Thresholds fall
// back to configured defaults when omitted.
type AssociationRequest struct {
	Columns       []string `json:"columns,omitempty" validate:"omitempty,min=2,dive,colname"`
	MinSupport    float64  `json:"min_support,omitempty" validate:"omitempty,gte=0.01,lte=0.2"`
	MinConfidence float64  `json:"min_confidence,omitempty" validate:"omitempty,gte=0.1,lte=0.95"`
	MaxRules      int      `json:"max_rules,omitempty" validate:"omitempty,gte=1,lte=100"`
}

// RegressionRequest configures a regression evaluation run.
// Target names the numeric column to regress; it is removed from the feature
// matrix before fitting.
type RegressionRequest struct {
	Target         string   `json:"target" validate:"required,colname"`
	Model          string   `json:"model,omitempty" validate:"omitempty,min=1,max=64"`
	ExcludeColumns []string `json:"exclude_columns,omitempty" validate:"omitempty,dive,colname"`
}

// PredictOptions carries the non-file fields of a multipart prediction
// request: the classifier to use and an optional seed for algorithms with
// randomized fitting.
type PredictOptions struct {
	Model string `json:"model" validate:"required,min=1,max=64"`
	Seed  *int64 `json:"seed,omitempty" validate:"omitempty,gte=0"`
}

// RunListRequest carries the query parameters of GET /api/v1/runs.
type RunListRequest struct {
	Kind   string `json:"kind" validate:"omitempty,oneof=classification clustering association regression prediction"`
	Limit  int    `json:"limit" validate:"omitempty,gte=1,lte=1000"`
	Offset int    `json:"offset" validate:"omitempty,gte=0"`
}
