// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package algorithms

import (
	"errors"
	"math"
)

// checkMatrix validates a row-major feature matrix against its target
// slice: non-empty, aligned lengths, rectangular rows.
func checkMatrix(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return errors.New("empty feature matrix")
	}
	if len(y) != len(X) {
		return errors.New("feature and target counts differ")
	}
	p := len(X[0])
	if p == 0 {
		return errors.New("feature matrix has no columns")
	}
	for i := range X {
		if len(X[i]) != p {
			return errors.New("ragged feature matrix")
		}
	}
	return nil
}

// numClasses infers the class count from encoded labels.
func numClasses(y []float64) int {
	highest := 0
	for _, v := range y {
		if c := int(math.Round(v)); c > highest {
			highest = c
		}
	}
	return highest + 1
}

// classCode rounds an encoded label and clamps it into [0, k).
func classCode(v float64, k int) int {
	c := int(math.Round(v))
	if c < 0 {
		return 0
	}
	if c >= k {
		return k - 1
	}
	return c
}

// classCounts tallies labels at the given row indices into k buckets.
func classCounts(y []float64, idx []int, k int) []int {
	counts := make([]int, k)
	for _, i := range idx {
		counts[classCode(y[i], k)]++
	}
	return counts
}

// isPure reports whether at most one class has any samples.
func isPure(counts []int) bool {
	nonZero := 0
	for _, c := range counts {
		if c > 0 {
			nonZero++
		}
	}
	return nonZero <= 1
}

// countsToProbas normalizes counts into a probability vector.
func countsToProbas(counts []int) []float64 {
	n := 0
	for _, c := range counts {
		n += c
	}
	p := make([]float64, len(counts))
	if n == 0 {
		return p
	}
	for i, c := range counts {
		p[i] = float64(c) / float64(n)
	}
	return p
}

// argmaxFloat returns the index of the largest value; the lowest index
// wins ties, which keeps predictions stable.
func argmaxFloat(values []float64) int {
	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] {
			best = i
		}
	}
	return best
}

func giniFromCounts(counts []int) float64 {
	n := 0.0
	for _, c := range counts {
		n += float64(c)
	}
	if n == 0 {
		return 0
	}
	res := 0.0
	for _, c := range counts {
		p := float64(c) / n
		res += p * (1 - p)
	}
	return res
}

func entropyFromCounts(counts []int) float64 {
	n := 0.0
	for _, c := range counts {
		n += float64(c)
	}
	if n == 0 {
		return 0
	}
	res := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		res -= p * math.Log2(p)
	}
	return res
}

// euclidSquared is the squared Euclidean distance between equal-length
// vectors.
func euclidSquared(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// accuracy is the fraction of matching prediction pairs.
func accuracy(yTrue, yPred []float64) float64 {
	if len(yTrue) == 0 || len(yTrue) != len(yPred) {
		return 0
	}
	correct := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(yTrue))
}

// rSquared is the coefficient of determination; zero when the truth has
// no variance.
func rSquared(yTrue, yPred []float64) float64 {
	n := len(yTrue)
	if n == 0 || n != len(yPred) {
		return 0
	}
	var mean float64
	for _, v := range yTrue {
		mean += v
	}
	mean /= float64(n)

	var ssRes, ssTot float64
	for i := range yTrue {
		d := yTrue[i] - yPred[i]
		ssRes += d * d
		ssTot += (yTrue[i] - mean) * (yTrue[i] - mean)
	}
	if ssTot == 0 {
		return 0
	}
	return 1 - ssRes/ssTot
}
