// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package dataset

import (
	"testing"
)

func TestLabelEncodingEncounterOrder(t *testing.T) {
	enc := NewLabelEncoding([]string{"No", "Yes", "No", "Maybe", "Yes"})

	want := []string{"No", "Yes", "Maybe"}
	got := enc.Classes()
	if len(got) != len(want) {
		t.Fatalf("Classes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Classes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if enc.NumClasses() != 3 {
		t.Errorf("NumClasses() = %d, want 3", enc.NumClasses())
	}
}

func TestLabelEncodingRoundTrip(t *testing.T) {
	labels := []string{"No", "Yes", "No", "Maybe", "Yes", "No"}
	enc := NewLabelEncoding(labels)

	codes, err := enc.EncodeAll(labels)
	if err != nil {
		t.Fatalf("EncodeAll() error = %v", err)
	}

	decoded, err := enc.DecodeAll(codes)
	if err != nil {
		t.Fatalf("DecodeAll() error = %v", err)
	}

	for i := range labels {
		if decoded[i] != labels[i] {
			t.Errorf("round trip[%d] = %q, want %q", i, decoded[i], labels[i])
		}
	}
}

func TestLabelEncodingUnknownValue(t *testing.T) {
	enc := NewLabelEncoding([]string{"Yes", "No"})

	if _, err := enc.Encode("Maybe"); err == nil {
		t.Error("Encode(Maybe) = nil error, want unknown label error")
	}
	if _, err := enc.EncodeAll([]string{"Yes", "Perhaps"}); err == nil {
		t.Error("EncodeAll() = nil error for unseen label")
	}
}

func TestLabelEncodingDecodeRange(t *testing.T) {
	enc := NewLabelEncoding([]string{"Yes", "No"})

	if _, err := enc.Decode(2); err == nil {
		t.Error("Decode(2) = nil error, want out of range")
	}
	if _, err := enc.Decode(-1); err == nil {
		t.Error("Decode(-1) = nil error, want out of range")
	}
}

func TestDecodeAllRoundsScores(t *testing.T) {
	enc := NewLabelEncoding([]string{"No", "Yes"})

	decoded, err := enc.DecodeAll([]float64{0.2, 0.51, 0.999, 0})
	if err != nil {
		t.Fatalf("DecodeAll() error = %v", err)
	}

	want := []string{"No", "Yes", "Yes", "No"}
	for i := range want {
		if decoded[i] != want[i] {
			t.Errorf("decoded[%d] = %q, want %q", i, decoded[i], want[i])
		}
	}
}
