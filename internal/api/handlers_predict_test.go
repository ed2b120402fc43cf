// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package api

import (
	"encoding/csv"
	"net/http"
	"strings"
	"testing"
)

// predictCSV carries every training feature column: one clear subscriber,
// one clear non-subscriber, one borderline respondent.
const predictCSV = `age,daily_minutes,monthly_income,uses_facebook,uses_instagram
23,215,2200,1,1
40,65,4000,1,0
30,120,2700,0,1
`

// ============================================================================
// Prediction
// ============================================================================

func TestPredict_LabelsUploadedRows(t *testing.T) {
	srv := newTestServer(t)

	rec := doPostMultipart(t, srv, "/api/v1/predict",
		map[string]string{"model": "tree"}, "respondents.csv", predictCSV)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d\nbody: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	data := dataMap(t, decodeEnvelope(t, rec))
	if data["model"] != "tree" {
		t.Errorf("model = %v, want tree", data["model"])
	}
	if data["target"] != "willing_to_subscribe" {
		t.Errorf("target = %v, want willing_to_subscribe", data["target"])
	}
	if rows, _ := data["rows"].(float64); rows != 3 {
		t.Errorf("rows = %v, want 3", data["rows"])
	}

	labels, _ := data["labels"].([]interface{})
	if len(labels) != 3 {
		t.Fatalf("len(labels) = %d, want 3", len(labels))
	}
	for i, raw := range labels {
		label, _ := raw.(string)
		if label != "yes" && label != "no" {
			t.Errorf("labels[%d] = %v, want yes or no", i, raw)
		}
	}
	// The clear-cut respondents must land on their side of the split.
	if labels[0] != "yes" {
		t.Errorf("labels[0] = %v, want yes (young heavy user)", labels[0])
	}
	if labels[1] != "no" {
		t.Errorf("labels[1] = %v, want no (older light user)", labels[1])
	}
}

func TestPredict_ExtraColumnsIgnored(t *testing.T) {
	srv := newTestServer(t)

	upload := `age,daily_minutes,monthly_income,uses_facebook,uses_instagram,notes
23,215,2200,1,1,from panel A
40,65,4000,1,0,from panel B
`
	rec := doPostMultipart(t, srv, "/api/v1/predict",
		map[string]string{"model": "tree"}, "respondents.csv", upload)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d\nbody: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	data := dataMap(t, decodeEnvelope(t, rec))
	if rows, _ := data["rows"].(float64); rows != 2 {
		t.Errorf("rows = %v, want 2", data["rows"])
	}
}

func TestPredict_SchemaMismatch(t *testing.T) {
	srv := newTestServer(t)

	upload := `age,daily_minutes,uses_facebook
23,215,1
40,65,1
`
	rec := doPostMultipart(t, srv, "/api/v1/predict",
		map[string]string{"model": "tree"}, "respondents.csv", upload)
	resp := requireError(t, rec, http.StatusUnprocessableEntity, ErrCodeSchemaMismatch)

	missing, ok := resp.Error.Details["missing_columns"].([]interface{})
	if !ok {
		t.Fatalf("details.missing_columns = %T, want array", resp.Error.Details["missing_columns"])
	}
	if len(missing) != 2 {
		t.Fatalf("len(missing_columns) = %d, want 2", len(missing))
	}
	names := map[string]bool{}
	for _, m := range missing {
		names[m.(string)] = true
	}
	for _, want := range []string{"monthly_income", "uses_instagram"} {
		if !names[want] {
			t.Errorf("missing_columns does not name %q", want)
		}
	}
}

func TestPredict_UnknownModel(t *testing.T) {
	srv := newTestServer(t)

	rec := doPostMultipart(t, srv, "/api/v1/predict",
		map[string]string{"model": "perceptron"}, "respondents.csv", predictCSV)
	requireError(t, rec, http.StatusBadRequest, ErrCodeUnknownModel)
}

func TestPredict_MissingModel(t *testing.T) {
	srv := newTestServer(t)

	rec := doPostMultipart(t, srv, "/api/v1/predict", nil, "respondents.csv", predictCSV)
	requireError(t, rec, http.StatusBadRequest, ErrCodeValidation)
}

func TestPredict_BadSeed(t *testing.T) {
	srv := newTestServer(t)

	rec := doPostMultipart(t, srv, "/api/v1/predict",
		map[string]string{"model": "tree", "seed": "not-a-number"}, "respondents.csv", predictCSV)
	requireError(t, rec, http.StatusBadRequest, ErrCodeValidation)
}

func TestPredict_NoDataset(t *testing.T) {
	h := newEmptyHandler(t)
	srv := NewRouter(h, NewMiddleware(h.config.Security)).SetupChi()

	rec := doPostMultipart(t, srv, "/api/v1/predict",
		map[string]string{"model": "tree"}, "respondents.csv", predictCSV)
	requireError(t, rec, http.StatusServiceUnavailable, ErrCodeDatasetError)
}

// ============================================================================
// Prediction Export
// ============================================================================

func TestPredictExport_BeforeAnyPrediction(t *testing.T) {
	srv := newTestServer(t)

	rec := doGet(t, srv, "/api/v1/predict/export")
	requireError(t, rec, http.StatusNotFound, ErrCodeNotFound)
}

func TestPredictExport_AfterPrediction(t *testing.T) {
	srv := newTestServer(t)

	if rec := doPostMultipart(t, srv, "/api/v1/predict",
		map[string]string{"model": "tree"}, "respondents.csv", predictCSV); rec.Code != http.StatusOK {
		t.Fatalf("predict status = %d, want %d\nbody: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	rec := doGet(t, srv, "/api/v1/predict/export")
	if rec.Code != http.StatusOK {
		t.Fatalf("export status = %d, want %d\nbody: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv; charset=utf-8" {
		t.Errorf("Content-Type = %q, want text/csv; charset=utf-8", ct)
	}
	disposition := rec.Header().Get("Content-Disposition")
	if !strings.HasPrefix(disposition, `attachment; filename="predictions_`) {
		t.Errorf("Content-Disposition = %q, want attachment with predictions_ filename", disposition)
	}

	records, err := csv.NewReader(rec.Body).ReadAll()
	if err != nil {
		t.Fatalf("export did not parse as CSV: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("len(records) = %d, want 4 (header plus three rows)", len(records))
	}

	header := records[0]
	if header[len(header)-1] != "predicted_willing_to_subscribe" {
		t.Errorf("last header column = %q, want predicted_willing_to_subscribe", header[len(header)-1])
	}
	for i, row := range records[1:] {
		label := row[len(row)-1]
		if label != "yes" && label != "no" {
			t.Errorf("row %d predicted label = %q, want yes or no", i+1, label)
		}
	}
}
