// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package analytics

import "math"

// ClassificationMetrics are macro-averaged over every encoded class.
// Each value lies in [0, 1].
type ClassificationMetrics struct {
	Accuracy  float64 `json:"accuracy"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

// MacroMetrics scores predictions against true labels over numClasses
// encoded classes. Precision, recall and F1 come from per-class
// one-vs-rest counts averaged unweighted, so rare classes count as much
// as common ones. A class with a zero denominator contributes zero to its
// averaged term.
func MacroMetrics(yTrue, yPred []float64, numClasses int) ClassificationMetrics {
	if len(yTrue) == 0 || len(yTrue) != len(yPred) || numClasses < 1 {
		return ClassificationMetrics{}
	}

	correct := 0
	tp := make([]int, numClasses)
	fp := make([]int, numClasses)
	fn := make([]int, numClasses)
	for i := range yTrue {
		t := clampClass(yTrue[i], numClasses)
		p := clampClass(yPred[i], numClasses)
		if t == p {
			correct++
			tp[t]++
			continue
		}
		fp[p]++
		fn[t]++
	}

	var precision, recall, f1 float64
	for c := 0; c < numClasses; c++ {
		var prec, rec float64
		if tp[c]+fp[c] > 0 {
			prec = float64(tp[c]) / float64(tp[c]+fp[c])
		}
		if tp[c]+fn[c] > 0 {
			rec = float64(tp[c]) / float64(tp[c]+fn[c])
		}
		precision += prec
		recall += rec
		if prec+rec > 0 {
			f1 += 2 * prec * rec / (prec + rec)
		}
	}

	k := float64(numClasses)
	return ClassificationMetrics{
		Accuracy:  float64(correct) / float64(len(yTrue)),
		Precision: precision / k,
		Recall:    recall / k,
		F1:        f1 / k,
	}
}

// ConfusionMatrix counts held-out outcomes. Rows index the true class,
// columns the predicted class, both in encoding order; the cell sum
// equals len(yTrue).
func ConfusionMatrix(yTrue, yPred []float64, numClasses int) [][]int {
	m := make([][]int, numClasses)
	for i := range m {
		m[i] = make([]int, numClasses)
	}
	for i := range yTrue {
		m[clampClass(yTrue[i], numClasses)][clampClass(yPred[i], numClasses)]++
	}
	return m
}

// clampClass rounds an encoded label to its integer code and clamps it
// into [0, numClasses) so a stray prediction cannot index out of range.
func clampClass(v float64, numClasses int) int {
	c := int(math.Round(v))
	if c < 0 {
		return 0
	}
	if c >= numClasses {
		return numClasses - 1
	}
	return c
}

// RegressionMetrics score a regressor's predictions on the target scale.
// RMSE is never below MAE; R2 is at most 1 and unbounded below.
type RegressionMetrics struct {
	R2   float64 `json:"r2"`
	MAE  float64 `json:"mae"`
	RMSE float64 `json:"rmse"`
}

// ScoreRegression computes R2, MAE and RMSE over aligned slices. A
// constant true vector has no variance to explain, so R2 is reported as
// zero then.
func ScoreRegression(yTrue, yPred []float64) RegressionMetrics {
	n := len(yTrue)
	if n == 0 || n != len(yPred) {
		return RegressionMetrics{}
	}

	var mean float64
	for _, v := range yTrue {
		mean += v
	}
	mean /= float64(n)

	var absSum, sqSum, ssTot float64
	for i := range yTrue {
		d := yTrue[i] - yPred[i]
		absSum += math.Abs(d)
		sqSum += d * d
		ssTot += (yTrue[i] - mean) * (yTrue[i] - mean)
	}

	r2 := 0.0
	if ssTot > 0 {
		r2 = 1 - sqSum/ssTot
	}
	return RegressionMetrics{
		R2:   r2,
		MAE:  absSum / float64(n),
		RMSE: math.Sqrt(sqSum / float64(n)),
	}
}
