// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package cluster

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync"
)

// KMeans partitions rows into K clusters with Lloyd iterations seeded by
// k-means++ selection. All randomness flows from the constructor seed, so
// the same seed, data, and K always produce the same final assignment.
type KMeans struct {
	K       int
	MaxIter int

	seed       int64
	centroids  [][]float64
	inertia    float64
	iterations int
}

// NewKMeans returns an unfitted model. A non-positive iteration cap falls
// back to 300.
func NewKMeans(k, maxIter int, seed int64) *KMeans {
	if maxIter < 1 {
		maxIter = 300
	}
	return &KMeans{K: k, MaxIter: maxIter, seed: seed}
}

// Fit runs assignment/update rounds until assignments stop changing or the
// iteration cap is hit.
func (m *KMeans) Fit(X [][]float64) error {
	if err := checkRows(X); err != nil {
		return err
	}
	n, p := len(X), len(X[0])
	if m.K < 1 {
		return errors.New("kmeans: K must be positive")
	}
	if n < m.K {
		return fmt.Errorf("kmeans: %d rows cannot form %d clusters", n, m.K)
	}

	rng := rand.New(rand.NewSource(m.seed)) //nolint:gosec // reproducible seeding, not crypto
	m.centroids = m.initCenters(X, rng)

	assign := make([]int, n)
	for i := range assign {
		assign[i] = -1
	}
	next := make([]int, n)

	for it := 0; it < m.MaxIter; it++ {
		m.iterations = it + 1
		m.assignRows(X, next)

		changed := false
		for i := range next {
			if assign[i] != next[i] {
				changed = true
			}
			assign[i] = next[i]
		}
		if !changed {
			break
		}

		sums := make([][]float64, m.K)
		counts := make([]int, m.K)
		for k := range sums {
			sums[k] = make([]float64, p)
		}
		for i, k := range assign {
			counts[k]++
			for j, v := range X[i] {
				sums[k][j] += v
			}
		}
		for k, count := range counts {
			if count == 0 {
				continue // keep the previous centroid for a drained cluster
			}
			for j := range sums[k] {
				m.centroids[k][j] = sums[k][j] / float64(count)
			}
		}
	}

	m.inertia = 0
	for i, k := range assign {
		m.inertia += euclidSquared(X[i], m.centroids[k])
	}
	return nil
}

// Predict assigns each row to its nearest centroid; centroid-distance ties
// go to the lower cluster id.
func (m *KMeans) Predict(X [][]float64) ([]int, error) {
	if m.centroids == nil {
		return nil, errors.New("kmeans: not fitted")
	}
	if err := checkRows(X); err != nil {
		return nil, err
	}
	if len(X[0]) != len(m.centroids[0]) {
		return nil, fmt.Errorf("kmeans: rows have %d features, centroids have %d", len(X[0]), len(m.centroids[0]))
	}

	out := make([]int, len(X))
	m.assignRows(X, out)
	return out, nil
}

// Centroids returns a copy of the fitted cluster centers.
func (m *KMeans) Centroids() [][]float64 {
	out := make([][]float64, len(m.centroids))
	for i, c := range m.centroids {
		out[i] = append([]float64(nil), c...)
	}
	return out
}

// Inertia returns the summed squared distance of every row to its centroid
// after Fit.
func (m *KMeans) Inertia() float64 { return m.inertia }

// Iterations returns how many assignment rounds Fit ran.
func (m *KMeans) Iterations() int { return m.iterations }

// assignRows writes each row's nearest centroid into out, chunked across
// workers. Workers touch disjoint index ranges only.
func (m *KMeans) assignRows(X [][]float64, out []int) {
	n := len(X)
	workers := runtime.GOMAXPROCS(0)
	rowsPerWorker := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := start + rowsPerWorker
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				best, bestD := 0, math.MaxFloat64
				for k, c := range m.centroids {
					if d := euclidSquared(X[i], c); d < bestD {
						bestD = d
						best = k
					}
				}
				out[i] = best
			}
		}(start, end)
	}
	wg.Wait()
}

// initCenters picks K starting centroids: the first uniformly, the rest
// proportional to squared distance from the nearest existing center. Rows
// already chosen have zero weight and cannot be drawn again; if rounding
// ever pushes the draw past the accumulated total, the farthest row is
// taken instead.
func (m *KMeans) initCenters(X [][]float64, rng *rand.Rand) [][]float64 {
	centers := make([][]float64, 0, m.K)
	centers = append(centers, append([]float64(nil), X[rng.Intn(len(X))]...))

	distSq := make([]float64, len(X))
	for len(centers) < m.K {
		total := 0.0
		farthest := 0
		for i, row := range X {
			d := math.MaxFloat64
			for _, c := range centers {
				if d2 := euclidSquared(row, c); d2 < d {
					d = d2
				}
			}
			distSq[i] = d
			total += d
			if d > distSq[farthest] {
				farthest = i
			}
		}

		pick := farthest
		r := rng.Float64() * total
		cumulative := 0.0
		for i, d := range distSq {
			cumulative += d
			if cumulative > r {
				pick = i
				break
			}
		}
		centers = append(centers, append([]float64(nil), X[pick]...))
	}
	return centers
}

func checkRows(X [][]float64) error {
	if len(X) == 0 {
		return errors.New("kmeans: empty input")
	}
	p := len(X[0])
	if p == 0 {
		return errors.New("kmeans: rows have no features")
	}
	for _, row := range X {
		if len(row) != p {
			return errors.New("kmeans: ragged input")
		}
	}
	return nil
}

func euclidSquared(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
