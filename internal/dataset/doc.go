// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

// Package dataset loads and profiles survey response tables.
//
// The in-memory representation is a gota DataFrame kept entirely as strings;
// column typing (numeric, binary, categorical) is inferred by the profiler
// so parsing quirks surface as column kinds instead of NaNs. CSV sources
// support charset transcoding (latin-1, windows-1252, GBK) via x/text, and
// XLSX workbooks are read from the first sheet via excelize.
//
// Table snapshots are immutable; Store swaps whole snapshots on reload or
// upload so concurrent analyses never observe a half-replaced dataset.
// LabelEncoding assigns dense integer codes to categorical targets in
// encounter order, which fixes class ordering everywhere downstream.
package dataset
