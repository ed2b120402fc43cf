// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package api

import (
	"net/http"
	"testing"
)

// ============================================================================
// Classification
// ============================================================================

func TestClassification_Report(t *testing.T) {
	srv := newTestServer(t)

	rec := doPostJSON(t, srv, "/api/v1/analysis/classification", "{}")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d\nbody: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	resp := decodeEnvelope(t, rec)
	if resp.Metadata.Cached {
		t.Error("first run reported cached = true")
	}

	data := dataMap(t, resp)
	if data["target"] != "willing_to_subscribe" {
		t.Errorf("target = %v, want willing_to_subscribe", data["target"])
	}
	if rows, _ := data["rows"].(float64); rows != 20 {
		t.Errorf("rows = %v, want 20", data["rows"])
	}
	if train, _ := data["train_rows"].(float64); train != 14 {
		t.Errorf("train_rows = %v, want 14", data["train_rows"])
	}
	if test, _ := data["test_rows"].(float64); test != 6 {
		t.Errorf("test_rows = %v, want 6", data["test_rows"])
	}
	if seed, _ := data["seed"].(float64); seed != 42 {
		t.Errorf("seed = %v, want 42", data["seed"])
	}

	classes, _ := data["classes"].([]interface{})
	if len(classes) != 2 {
		t.Fatalf("len(classes) = %d, want 2", len(classes))
	}

	evaluations, _ := data["models"].([]interface{})
	if len(evaluations) != 2 {
		t.Fatalf("len(models) = %d, want 2", len(evaluations))
	}
	seen := map[string]bool{}
	for _, raw := range evaluations {
		eval := raw.(map[string]interface{})
		name, _ := eval["model"].(string)
		seen[name] = true
		if msg, ok := eval["error"]; ok {
			t.Errorf("model %q failed: %v", name, msg)
			continue
		}
		metrics, ok := eval["metrics"].(map[string]interface{})
		if !ok {
			t.Errorf("model %q has no metrics", name)
			continue
		}
		acc, _ := metrics["accuracy"].(float64)
		if acc < 0 || acc > 1 {
			t.Errorf("model %q accuracy = %v, want within [0, 1]", name, acc)
		}
		if _, ok := eval["confusion_matrix"]; !ok {
			t.Errorf("model %q has no confusion matrix", name)
		}
	}
	for _, want := range []string{"nb", "tree"} {
		if !seen[want] {
			t.Errorf("models is missing %q", want)
		}
	}
}

func TestClassification_SecondRunCached(t *testing.T) {
	srv := newTestServer(t)

	first := doPostJSON(t, srv, "/api/v1/analysis/classification", "{}")
	if first.Code != http.StatusOK {
		t.Fatalf("first run status = %d, want %d", first.Code, http.StatusOK)
	}
	second := doPostJSON(t, srv, "/api/v1/analysis/classification", "{}")
	if second.Code != http.StatusOK {
		t.Fatalf("second run status = %d, want %d", second.Code, http.StatusOK)
	}

	resp := decodeEnvelope(t, second)
	if !resp.Metadata.Cached {
		t.Error("second identical run was not served from cache")
	}
	if resp.Metadata.ComputeTimeMS != 0 {
		t.Errorf("cached compute_time_ms = %d, want 0", resp.Metadata.ComputeTimeMS)
	}

	// Different parameters miss the cache.
	third := doPostJSON(t, srv, "/api/v1/analysis/classification", `{"seed": 7}`)
	if third.Code != http.StatusOK {
		t.Fatalf("third run status = %d, want %d", third.Code, http.StatusOK)
	}
	if decodeEnvelope(t, third).Metadata.Cached {
		t.Error("run with different seed was served from cache")
	}
}

func TestClassification_UnknownModel(t *testing.T) {
	srv := newTestServer(t)

	rec := doPostJSON(t, srv, "/api/v1/analysis/classification", `{"model": "perceptron"}`)
	resp := requireError(t, rec, http.StatusBadRequest, ErrCodeUnknownModel)

	known, ok := resp.Error.Details["known_models"].([]interface{})
	if !ok {
		t.Fatalf("details.known_models = %T, want array", resp.Error.Details["known_models"])
	}
	if len(known) != 2 {
		t.Errorf("len(known_models) = %d, want 2", len(known))
	}
}

func TestClassification_UnknownField(t *testing.T) {
	srv := newTestServer(t)

	rec := doPostJSON(t, srv, "/api/v1/analysis/classification", `{"max_depht": 3}`)
	requireError(t, rec, http.StatusBadRequest, ErrCodeValidation)
}

func TestClassification_NoDataset(t *testing.T) {
	h := newEmptyHandler(t)
	srv := NewRouter(h, NewMiddleware(h.config.Security)).SetupChi()

	rec := doPostJSON(t, srv, "/api/v1/analysis/classification", "{}")
	requireError(t, rec, http.StatusServiceUnavailable, ErrCodeDatasetError)
}

// ============================================================================
// Clustering
// ============================================================================

func TestClustering_Personas(t *testing.T) {
	srv := newTestServer(t)

	rec := doPostJSON(t, srv, "/api/v1/analysis/clustering", "{}")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d\nbody: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	data := dataMap(t, decodeEnvelope(t, rec))
	if k, _ := data["k"].(float64); k != 2 {
		t.Errorf("k = %v, want 2", data["k"])
	}
	if rows, _ := data["rows"].(float64); rows != 20 {
		t.Errorf("rows = %v, want 20", data["rows"])
	}

	labels, _ := data["labels"].([]interface{})
	if len(labels) != 20 {
		t.Fatalf("len(labels) = %d, want 20", len(labels))
	}
	for i, raw := range labels {
		label, _ := raw.(float64)
		if label < 0 || label > 1 {
			t.Errorf("labels[%d] = %v, want 0 or 1", i, raw)
		}
	}

	personas, _ := data["personas"].([]interface{})
	if len(personas) != 2 {
		t.Fatalf("len(personas) = %d, want 2", len(personas))
	}
	totalSize := 0.0
	for _, raw := range personas {
		persona := raw.(map[string]interface{})
		size, _ := persona["size"].(float64)
		totalSize += size
	}
	if totalSize != 20 {
		t.Errorf("sum of persona sizes = %v, want 20", totalSize)
	}
}

func TestClustering_InvalidK(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"below minimum", `{"clusters": 1}`},
		{"above maximum", `{"clusters": 11}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doPostJSON(t, srv, "/api/v1/analysis/clustering", tt.body)
			requireError(t, rec, http.StatusBadRequest, ErrCodeValidation)
		})
	}
}

// ============================================================================
// Association Mining
// ============================================================================

func TestAssociation_DefaultBinaryColumns(t *testing.T) {
	srv := newTestServer(t)

	rec := doPostJSON(t, srv, "/api/v1/analysis/association", "{}")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d\nbody: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	data := dataMap(t, decodeEnvelope(t, rec))
	columns, _ := data["columns"].([]interface{})
	if len(columns) != 2 {
		t.Fatalf("len(columns) = %d, want 2 (the strictly binary pair)", len(columns))
	}
	if data["empty"] != false {
		t.Errorf("empty = %v, want false", data["empty"])
	}
	if sets, _ := data["frequent_itemsets"].(float64); sets != 3 {
		t.Errorf("frequent_itemsets = %v, want 3", data["frequent_itemsets"])
	}
	if total, _ := data["total_rules"].(float64); total != 2 {
		t.Errorf("total_rules = %v, want 2", data["total_rules"])
	}

	rules, _ := data["rules"].([]interface{})
	if len(rules) != 2 {
		t.Fatalf("len(rules) = %d, want 2", len(rules))
	}
	for i, raw := range rules {
		rule := raw.(map[string]interface{})
		conf, _ := rule["confidence"].(float64)
		if conf < 0.3 {
			t.Errorf("rules[%d] confidence = %v, want >= 0.3", i, conf)
		}
		lift, _ := rule["lift"].(float64)
		if lift <= 0 {
			t.Errorf("rules[%d] lift = %v, want > 0", i, lift)
		}
	}
}

func TestAssociation_TruncatesToMaxRules(t *testing.T) {
	srv := newTestServer(t)

	rec := doPostJSON(t, srv, "/api/v1/analysis/association", `{"max_rules": 1}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d\nbody: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	data := dataMap(t, decodeEnvelope(t, rec))
	if total, _ := data["total_rules"].(float64); total != 2 {
		t.Errorf("total_rules = %v, want 2", data["total_rules"])
	}
	rules, _ := data["rules"].([]interface{})
	if len(rules) != 1 {
		t.Errorf("len(rules) = %d, want 1", len(rules))
	}
}

func TestAssociation_NonBinaryColumn(t *testing.T) {
	srv := newTestServer(t)

	rec := doPostJSON(t, srv, "/api/v1/analysis/association",
		`{"columns": ["uses_facebook", "age"]}`)
	resp := requireError(t, rec, http.StatusBadRequest, ErrCodeInvalidColumnSelection)

	if resp.Error.Details["column"] != "age" {
		t.Errorf("details.column = %v, want age", resp.Error.Details["column"])
	}
}

// ============================================================================
// Regression
// ============================================================================

func TestRegression_NumericTarget(t *testing.T) {
	srv := newTestServer(t)

	rec := doPostJSON(t, srv, "/api/v1/analysis/regression", `{"target": "monthly_income"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d\nbody: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	data := dataMap(t, decodeEnvelope(t, rec))
	if data["target"] != "monthly_income" {
		t.Errorf("target = %v, want monthly_income", data["target"])
	}
	if note, _ := data["note"].(string); note == "" {
		t.Error("note is empty, want the in-sample metrics caveat")
	}

	featureCols, _ := data["feature_columns"].([]interface{})
	for _, col := range featureCols {
		if col == "monthly_income" {
			t.Error("feature_columns contains the regression target")
		}
	}

	evaluations, _ := data["models"].([]interface{})
	if len(evaluations) != 1 {
		t.Fatalf("len(models) = %d, want 1", len(evaluations))
	}
	eval := evaluations[0].(map[string]interface{})
	if eval["model"] != "linear" {
		t.Errorf("model = %v, want linear", eval["model"])
	}
	metrics, ok := eval["metrics"].(map[string]interface{})
	if !ok {
		t.Fatalf("metrics = %T, want object", eval["metrics"])
	}
	for _, key := range []string{"r2", "mae", "rmse"} {
		if _, ok := metrics[key]; !ok {
			t.Errorf("metrics is missing %q", key)
		}
	}
}

func TestRegression_NonNumericTarget(t *testing.T) {
	srv := newTestServer(t)

	rec := doPostJSON(t, srv, "/api/v1/analysis/regression", `{"target": "platform"}`)
	requireError(t, rec, http.StatusBadRequest, ErrCodeInvalidColumnSelection)
}

func TestRegression_MissingTarget(t *testing.T) {
	srv := newTestServer(t)

	rec := doPostJSON(t, srv, "/api/v1/analysis/regression", "{}")
	requireError(t, rec, http.StatusBadRequest, ErrCodeValidation)
}
