// SPDX-License-Identifier: MIT
// Package: heatprint/netlsd
//
// trace.go — the time-scale grid and the heat kernel trace.

package netlsd

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const logBase = 10.0

// timeScales builds the grid of `steps` diffusion times, logarithmically
// spaced on [10^min, 10^max] inclusive. A single-step grid degenerates to
// the lower bound, matching numpy logspace. steps must be positive and
// min ≤ max (validated by New). Complexity: O(steps).
func timeScales(min, max float64, steps int) []float64 {
	if steps == 1 {
		return []float64{math.Pow(logBase, min)}
	}

	grid := make([]float64, steps)
	floats.LogSpan(grid, math.Pow(logBase, min), math.Pow(logBase, max))

	return grid
}

// heatTrace evaluates h(t) = Σ_i exp(-t·λ_i) / n at every grid point.
// The divisor is the node count n, not the spectrum length — the exact
// eigenvalue path supplies n-1 values and the quotient must reflect the
// graph, not the estimator branch. Pure; non-increasing in t since every
// term is a decaying exponential. Complexity: O(len(grid)·len(eigs)).
func heatTrace(eigs, grid []float64, n int) []float64 {
	out := make([]float64, len(grid))
	terms := make([]float64, len(eigs))
	for idx, t := range grid {
		for i, lambda := range eigs {
			terms[i] = math.Exp(-t * lambda)
		}
		out[idx] = floats.Sum(terms) / float64(n)
	}

	return out
}
