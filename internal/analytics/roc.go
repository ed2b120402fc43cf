// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package analytics

import (
	"math"
	"sort"
)

// ROCPoint is one operating point on a curve.
type ROCPoint struct {
	FPR float64 `json:"fpr"`
	TPR float64 `json:"tpr"`
}

// ROCCurve is a one-vs-rest receiver operating characteristic for a
// single class, with its trapezoidal area under the curve.
type ROCCurve struct {
	Class  string     `json:"class"`
	AUC    float64    `json:"auc"`
	Points []ROCPoint `json:"points"`
}

// ROCOneVsRest sweeps each class's predicted probability as the decision
// threshold and traces true positive rate against false positive rate.
// probs rows align with yTrue; columns follow encoding order, as do the
// class names. A class with no positive or no negative rows in yTrue has
// no defined curve and is skipped.
func ROCOneVsRest(yTrue []float64, probs [][]float64, classes []string) []ROCCurve {
	curves := make([]ROCCurve, 0, len(classes))
	for c, class := range classes {
		curve, ok := rocForClass(yTrue, probs, c)
		if !ok {
			continue
		}
		curve.Class = class
		curves = append(curves, curve)
	}
	return curves
}

func rocForClass(yTrue []float64, probs [][]float64, class int) (ROCCurve, bool) {
	n := len(yTrue)
	if n == 0 || len(probs) != n || class >= len(probs[0]) {
		return ROCCurve{}, false
	}

	pos, neg := 0, 0
	scores := make([]float64, n)
	positive := make([]bool, n)
	for i := range yTrue {
		scores[i] = probs[i][class]
		if int(math.Round(yTrue[i])) == class {
			positive[i] = true
			pos++
		} else {
			neg++
		}
	}
	if pos == 0 || neg == 0 {
		return ROCCurve{}, false
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return scores[idx[a]] > scores[idx[b]] })

	points := []ROCPoint{{FPR: 0, TPR: 0}}
	tp, fp := 0, 0
	for i := 0; i < n; {
		// Consume a whole tie group before emitting a point so equal
		// scores cannot land on opposite sides of a threshold.
		threshold := scores[idx[i]]
		for i < n && scores[idx[i]] == threshold {
			if positive[idx[i]] {
				tp++
			} else {
				fp++
			}
			i++
		}
		points = append(points, ROCPoint{
			FPR: float64(fp) / float64(neg),
			TPR: float64(tp) / float64(pos),
		})
	}

	return ROCCurve{AUC: trapezoidArea(points), Points: points}, true
}

// trapezoidArea integrates TPR over FPR. Points must be sorted by
// ascending FPR, which the threshold sweep guarantees.
func trapezoidArea(points []ROCPoint) float64 {
	var area float64
	for i := 1; i < len(points); i++ {
		dx := points[i].FPR - points[i-1].FPR
		area += dx * (points[i].TPR + points[i-1].TPR) / 2
	}
	return area
}
