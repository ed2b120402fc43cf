// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package api

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/focusnest/internal/analytics"
	"github.com/tomtom215/focusnest/internal/dataset"
	"github.com/tomtom215/focusnest/internal/logging"
	"github.com/tomtom215/focusnest/internal/metrics"
	"github.com/tomtom215/focusnest/internal/models"
)

// predictionExport holds the most recent prediction as CSV-ready records:
// the uploaded rows with a predicted_<target> column appended. Guarded by
// Handler.predMu.
type predictionExport struct {
	records     [][]string
	model       string
	generatedAt time.Time
}

// predictionParams is the archived parameter set of one prediction run.
// The seed is the resolved value, not the optional request field.
type predictionParams struct {
	Model  string `json:"model"`
	Target string `json:"target"`
	Seed   int64  `json:"seed"`
	Source string `json:"source"`
	Rows   int    `json:"rows"`
}

// Predict labels uploaded rows with a classifier trained on the dataset
//
// @Summary Predict subscription answers for uploaded respondents
// @Description Trains the named classifier on the active dataset (cached per dataset revision), projects the uploaded rows onto the training feature columns, and returns one decoded label per row. Extra uploaded columns are ignored; missing training columns are all named in a schema mismatch error. The labeled rows are held for CSV export until the next prediction.
// @Tags Prediction
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Rows to label (.csv or .xlsx), same feature columns as the dataset"
// @Param model formData string true "Registered classifier name"
// @Param seed formData integer false "Seed for randomized fitting"
// @Success 200 {object} models.APIResponse{data=analytics.PredictionResult} "Prediction complete"
// @Failure 400 {object} models.APIResponse "Validation failure, unknown model, or unparseable upload"
// @Failure 422 {object} models.APIResponse "Upload is missing training feature columns"
// @Failure 503 {object} models.APIResponse "No dataset loaded"
// @Router /predict [post]
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	current, ok := h.store.Current()
	if !ok {
		respondError(w, http.StatusServiceUnavailable, ErrCodeDatasetError, "No dataset loaded", nil)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.config.Dataset.UploadMaxBytes)
	if err := r.ParseMultipartForm(h.config.Dataset.UploadMaxBytes); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation,
			"Upload too large or not multipart form data", err)
		return
	}

	opts := models.PredictOptions{Model: r.FormValue("model")}
	if raw := r.FormValue("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrCodeValidation,
				"Form field \"seed\" must be an integer", err)
			return
		}
		opts.Seed = &seed
	}
	if apiErr := validateRequest(&opts); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation,
			"Multipart field \"file\" is required", err)
		return
	}
	defer file.Close()

	var upload *dataset.Table
	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".xlsx":
		upload, err = dataset.LoadXLSX(file, header.Filename)
	case ".csv", ".txt":
		upload, err = dataset.LoadCSV(file, h.config.Dataset.Encoding, header.Filename)
	default:
		respondError(w, http.StatusBadRequest, ErrCodeValidation,
			"Unsupported upload format, use .csv or .xlsx", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeDatasetError,
			"Uploaded file could not be parsed", err)
		return
	}

	start := time.Now()
	trained, err := h.engine.TrainedClassifier(current, analytics.TrainParams{
		Target: h.config.Dataset.TargetColumn,
		Model:  opts.Model,
		Seed:   opts.Seed,
	})
	if err != nil {
		metrics.RecordPrediction(0, err)
		respondAnalysisError(w, err)
		return
	}

	result, err := trained.Predict(upload)
	if err != nil {
		metrics.RecordPrediction(0, err)
		respondAnalysisError(w, err)
		return
	}
	metrics.RecordPrediction(result.Rows, nil)

	records := upload.Records()
	records[0] = append(records[0], "predicted_"+result.Target)
	for i, label := range result.Labels {
		records[i+1] = append(records[i+1], label)
	}
	h.predMu.Lock()
	h.lastPrediction = &predictionExport{
		records:     records,
		model:       result.Model,
		generatedAt: time.Now(),
	}
	h.predMu.Unlock()

	params := predictionParams{
		Model:  result.Model,
		Target: result.Target,
		Seed:   result.Seed,
		Source: header.Filename,
		Rows:   result.Rows,
	}
	// The archived fingerprint is the training dataset's; the uploaded
	// rows are transient and identified by Source.
	runner := analysisRunner{handler: h}
	runID := runner.archiveRun(models.RunKindPrediction, current.Fingerprint(), start, params, result)

	logging.Ctx(r.Context()).Info().
		Str("model", result.Model).
		Int("rows", result.Rows).
		Str("source", sanitizeLogValue(header.Filename)).
		Msg("Prediction generated")

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   result,
		Metadata: models.Metadata{
			Timestamp:     time.Now(),
			ComputeTimeMS: time.Since(start).Milliseconds(),
			RunID:         runID,
		},
	})
}

// PredictExport downloads the last prediction as CSV
//
// @Summary Export the most recent prediction as CSV
// @Description Streams the rows of the last prediction with their predicted labels appended as the final column. Returns 404 until a prediction has been generated.
// @Tags Prediction
// @Produce text/csv
// @Success 200 {string} string "CSV file with predicted labels"
// @Failure 404 {object} models.APIResponse "No prediction generated yet"
// @Router /predict/export [get]
func (h *Handler) PredictExport(w http.ResponseWriter, r *http.Request) {
	h.predMu.Lock()
	export := h.lastPrediction
	h.predMu.Unlock()

	if export == nil {
		respondError(w, http.StatusNotFound, ErrCodeNotFound,
			"No prediction has been generated yet", nil)
		return
	}

	filename := fmt.Sprintf("predictions_%s.csv", export.generatedAt.Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	writer := csv.NewWriter(w)
	if err := writer.WriteAll(export.records); err != nil {
		logging.CtxErr(r.Context(), err).Msg("Prediction export write failed")
	}
}
