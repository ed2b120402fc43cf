// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package api

import (
	"net/http"

	"github.com/tomtom215/focusnest/internal/analytics"
	"github.com/tomtom215/focusnest/internal/cluster"
	"github.com/tomtom215/focusnest/internal/dataset"
	"github.com/tomtom215/focusnest/internal/mining"
	"github.com/tomtom215/focusnest/internal/models"
)

// Classification evaluates classifiers on a held-out split
//
// @Summary Run classification evaluation
// @Description Stratified-splits the dataset on the configured target, fits every registered classifier (or just the requested one), and reports accuracy, macro precision/recall/F1, confusion matrices, and one-vs-rest ROC curves per model. Models that cannot fit carry an error entry; the run still succeeds.
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body models.ClassificationRequest true "Run parameters; all fields optional"
// @Success 200 {object} models.APIResponse{data=analytics.ClassificationReport} "Evaluation complete"
// @Failure 400 {object} models.APIResponse "Validation failure or unknown model"
// @Failure 422 {object} models.APIResponse "Degenerate input (no features, single class, empty split)"
// @Failure 503 {object} models.APIResponse "No dataset loaded"
// @Router /analysis/classification [post]
func (h *Handler) Classification(w http.ResponseWriter, r *http.Request) {
	var req models.ClassificationRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	params := analytics.ClassificationParams{
		Target:       h.config.Dataset.TargetColumn,
		Model:        req.Model,
		TestFraction: req.TestFraction,
		Seed:         req.Seed,
		Exclude:      req.ExcludeColumns,
	}

	runner := analysisRunner{handler: h}
	runner.Execute(w, r, models.RunKindClassification, params, func(table *dataset.Table) (interface{}, error) {
		return h.engine.EvaluateClassification(table, params)
	})
}

// Clustering groups respondents and profiles personas
//
// @Summary Run k-means clustering with persona profiling
// @Description Clusters respondents on the numeric feature columns with seeded k-means++ and aggregates a persona per cluster (median age, mean daily minutes, median income, modal target answer, median willingness to pay). Cluster labels are returned alongside the run, never written into the dataset.
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body models.ClusteringRequest true "Run parameters; all fields optional"
// @Success 200 {object} models.APIResponse{data=cluster.Assignment} "Clustering complete"
// @Failure 400 {object} models.APIResponse "Validation failure"
// @Failure 422 {object} models.APIResponse "Degenerate input (no features, fewer distinct rows than clusters)"
// @Failure 503 {object} models.APIResponse "No dataset loaded"
// @Router /analysis/clustering [post]
func (h *Handler) Clustering(w http.ResponseWriter, r *http.Request) {
	var req models.ClusteringRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	params := cluster.Params{
		K:             req.Clusters,
		Seed:          req.Seed,
		MaxIterations: req.MaxIterations,
		Target:        h.config.Dataset.TargetColumn,
		Exclude:       req.ExcludeColumns,
	}

	runner := analysisRunner{handler: h}
	runner.Execute(w, r, models.RunKindClustering, params, func(table *dataset.Table) (interface{}, error) {
		return h.profiler.Run(table, params)
	})
}

// associationParams is the fully resolved parameter set of one mining
// run. It doubles as the cache key input and the archived params, so the
// resolved column list and the response truncation limit are both part
// of it.
type associationParams struct {
	Columns       []string `json:"columns"`
	MinSupport    float64  `json:"min_support"`
	MinConfidence float64  `json:"min_confidence"`
	MaxRules      int      `json:"max_rules"`
}

// AssociationResponse is the mining payload: the full run statistics with
// the rule list truncated to the requested size. TotalRules preserves the
// unabridged count. This wrapper lives here rather than in models because
// it embeds mining.Rule.
type AssociationResponse struct {
	Columns          []string      `json:"columns"`
	Rows             int           `json:"rows"`
	MinSupport       float64       `json:"min_support"`
	MinConfidence    float64       `json:"min_confidence"`
	FrequentItemsets int           `json:"frequent_itemsets"`
	TotalRules       int           `json:"total_rules"`
	Rules            []mining.Rule `json:"rules"`
	Empty            bool          `json:"empty"`
	Reason           string        `json:"reason,omitempty"`
}

// Association mines association rules over binary columns
//
// @Summary Run association rule mining
// @Description Mines Apriori association rules over the selected binary columns, or every strictly-binary column when none are named. Rules are sorted by descending lift and truncated to max_rules; a run where no rule clears the thresholds returns 200 with an explicit empty marker.
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body models.AssociationRequest true "Run parameters; all fields optional"
// @Success 200 {object} models.APIResponse{data=api.AssociationResponse} "Mining complete (possibly empty)"
// @Failure 400 {object} models.APIResponse "Validation failure or non-binary column selected"
// @Failure 503 {object} models.APIResponse "No dataset loaded"
// @Router /analysis/association [post]
func (h *Handler) Association(w http.ResponseWriter, r *http.Request) {
	var req models.AssociationRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	table, ok := h.store.Current()
	if !ok {
		respondError(w, http.StatusServiceUnavailable, ErrCodeDatasetError, "No dataset loaded", nil)
		return
	}

	columns := req.Columns
	if len(columns) == 0 {
		columns = binaryColumns(table)
	}
	minSupport := req.MinSupport
	if minSupport == 0 {
		minSupport = h.config.Analysis.MinSupport
	}
	minConfidence := req.MinConfidence
	if minConfidence == 0 {
		minConfidence = h.config.Analysis.MinConfidence
	}
	maxRules := req.MaxRules
	if maxRules == 0 {
		maxRules = h.config.Analysis.TopRules
	}

	params := associationParams{
		Columns:       columns,
		MinSupport:    minSupport,
		MinConfidence: minConfidence,
		MaxRules:      maxRules,
	}

	runner := analysisRunner{handler: h}
	runner.Execute(w, r, models.RunKindAssociation, params, func(table *dataset.Table) (interface{}, error) {
		result, err := h.miner.Run(table, mining.Params{
			Columns:       params.Columns,
			MinSupport:    params.MinSupport,
			MinConfidence: params.MinConfidence,
		})
		if err != nil {
			return nil, err
		}
		return &AssociationResponse{
			Columns:          result.Columns,
			Rows:             result.Rows,
			MinSupport:       result.MinSupport,
			MinConfidence:    result.MinConfidence,
			FrequentItemsets: result.FrequentItemsets,
			TotalRules:       len(result.Rules),
			Rules:            result.Top(params.MaxRules),
			Empty:            result.Empty,
			Reason:           result.Reason,
		}, nil
	})
}

// Regression evaluates regressors on a numeric target
//
// @Summary Run regression evaluation
// @Description Fits every registered regressor (or just the requested one) on the full dataset against the chosen numeric target and reports R², MAE, and RMSE. Metrics are in-sample; the report says so explicitly.
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body models.RegressionRequest true "Run parameters; target is required"
// @Success 200 {object} models.APIResponse{data=analytics.RegressionReport} "Evaluation complete"
// @Failure 400 {object} models.APIResponse "Validation failure, unknown model, or non-numeric target"
// @Failure 422 {object} models.APIResponse "Degenerate input (no features)"
// @Failure 503 {object} models.APIResponse "No dataset loaded"
// @Router /analysis/regression [post]
func (h *Handler) Regression(w http.ResponseWriter, r *http.Request) {
	var req models.RegressionRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	params := analytics.RegressionParams{
		Target:  req.Target,
		Model:   req.Model,
		Exclude: req.ExcludeColumns,
	}

	runner := analysisRunner{handler: h}
	runner.Execute(w, r, models.RunKindRegression, params, func(table *dataset.Table) (interface{}, error) {
		return h.engine.EvaluateRegression(table, params)
	})
}

// binaryColumns lists every strictly-binary column in file order.
func binaryColumns(table *dataset.Table) []string {
	var columns []string
	for _, p := range table.Profiles() {
		if p.Kind == models.ColumnKindBinary {
			columns = append(columns, p.Name)
		}
	}
	return columns
}
