// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package analytics

import (
	"fmt"
	"strings"
)

// DegenerateInputError reports data that cannot support the requested
// analysis, such as a feature matrix with no usable columns or a target
// with a single class. Handlers map it to HTTP 422.
type DegenerateInputError struct {
	Reason string
}

func (e *DegenerateInputError) Error() string {
	return "degenerate input: " + e.Reason
}

// SchemaMismatchError reports an inference table that lacks columns the
// model was trained on. Every missing column is named and no partial
// inference is attempted. Handlers map it to HTTP 422.
type SchemaMismatchError struct {
	Missing []string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("schema mismatch: missing columns: %s", strings.Join(e.Missing, ", "))
}

// InvalidColumnSelectionError reports a caller-chosen column that cannot
// serve the requested role, such as a text column offered as regression
// target or a non-binary column offered for rule mining. Handlers map it
// to HTTP 400.
type InvalidColumnSelectionError struct {
	Column string
	Reason string
}

func (e *InvalidColumnSelectionError) Error() string {
	return fmt.Sprintf("invalid column selection %q: %s", e.Column, e.Reason)
}

// UnknownModelError reports a model name with no registered estimator.
type UnknownModelError struct {
	Name  string
	Known []string
}

func (e *UnknownModelError) Error() string {
	return fmt.Sprintf("unknown model %q (registered: %s)", e.Name, strings.Join(e.Known, ", "))
}

// UnsupportedCapabilityError reports an estimator asked for an operation
// it does not implement, such as per-class probabilities from a model
// without them. Evaluation absorbs this into partial results rather than
// failing a run; only direct requests for the capability surface it.
type UnsupportedCapabilityError struct {
	Model      string
	Capability string
}

func (e *UnsupportedCapabilityError) Error() string {
	return fmt.Sprintf("model %q does not support %s", e.Model, e.Capability)
}
