// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package dataset

import (
	"fmt"
)

// LabelEncoding maps categorical target values to dense integer codes and
// back. Codes are assigned in encounter order over the training column, so
// the same dataset always yields the same encoding. The class order fixes
// the row/column order of confusion matrices and the class order of
// one-vs-rest curves.
type LabelEncoding struct {
	classes []string
	index   map[string]int
}

// NewLabelEncoding builds an encoding from the raw target column.
func NewLabelEncoding(values []string) *LabelEncoding {
	enc := &LabelEncoding{index: make(map[string]int)}
	for _, v := range values {
		if _, ok := enc.index[v]; !ok {
			enc.index[v] = len(enc.classes)
			enc.classes = append(enc.classes, v)
		}
	}
	return enc
}

// Classes returns the class labels in code order.
func (e *LabelEncoding) Classes() []string {
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}

// NumClasses returns the number of distinct classes.
func (e *LabelEncoding) NumClasses() int {
	return len(e.classes)
}

// Encode returns the code for a class label.
func (e *LabelEncoding) Encode(value string) (int, error) {
	code, ok := e.index[value]
	if !ok {
		return 0, fmt.Errorf("unknown class label %q", value)
	}
	return code, nil
}

// EncodeAll encodes a full column.
func (e *LabelEncoding) EncodeAll(values []string) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		code, err := e.Encode(v)
		if err != nil {
			return nil, err
		}
		out[i] = float64(code)
	}
	return out, nil
}

// Decode returns the class label for a code.
func (e *LabelEncoding) Decode(code int) (string, error) {
	if code < 0 || code >= len(e.classes) {
		return "", fmt.Errorf("class code %d out of range [0,%d)", code, len(e.classes))
	}
	return e.classes[code], nil
}

// DecodeAll decodes predicted codes back to labels. Predictions are rounded
// to the nearest code first, since some models emit float scores.
func (e *LabelEncoding) DecodeAll(codes []float64) ([]string, error) {
	out := make([]string, len(codes))
	for i, c := range codes {
		label, err := e.Decode(roundCode(c))
		if err != nil {
			return nil, err
		}
		out[i] = label
	}
	return out, nil
}

func roundCode(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}
