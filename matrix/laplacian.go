// SPDX-License-Identifier: MIT
// Package: heatprint/matrix
//
// laplacian.go — normalized Laplacian adapter from core graphs.
//
// Entry convention:
//   • L[i,i] = 1 if deg(i) > 0, else 0 (isolated nodes keep a zero row).
//   • L[i,j] = -1/sqrt(deg(i)·deg(j)) for each simple edge {i,j}.
// Self-loops would corrupt the degree normalization, so they are dropped
// before degrees are taken; parallel edges collapse to one. Both happen on
// a working view — the input graph is never mutated.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/heatprint/core"
)

const ctxLaplacian = "NormalizedLaplacian"

// NormalizedLaplacian builds L = I - D^{-1/2} A D^{-1/2} for g as a SymCSR
// in canonical 0..n-1 order. Every eigenvalue of L lies in [0, 2].
// Errors: ErrGraphNil, ErrEmptyGraph. Complexity: O(V + E log E).
func NormalizedLaplacian(g *core.Graph) (*SymCSR, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", ctxLaplacian, ErrGraphNil)
	}
	n := g.NodeCount()
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", ctxLaplacian, ErrEmptyGraph)
	}

	// Stage 1: working view — loop-free, deduplicated adjacency.
	adj := make([]map[int]struct{}, n)
	for _, e := range g.Edges() {
		if e.U == e.V {
			continue // drop self-loops
		}
		u, v := e.U, e.V
		if adj[u] == nil {
			adj[u] = make(map[int]struct{})
		}
		if adj[v] == nil {
			adj[v] = make(map[int]struct{})
		}
		adj[u][v] = struct{}{}
		adj[v][u] = struct{}{}
	}

	// Stage 2: simple-graph degrees and their inverse square roots.
	invSqrt := make([]float64, n)
	for i := 0; i < n; i++ {
		if d := len(adj[i]); d > 0 {
			invSqrt[i] = 1.0 / math.Sqrt(float64(d))
		}
	}

	// Stage 3: emit entries row by row; newSymCSR sorts columns.
	rows := make([][]entry, n)
	for i := 0; i < n; i++ {
		if len(adj[i]) == 0 {
			continue // isolated node: zero row
		}
		rows[i] = make([]entry, 0, len(adj[i])+1)
		rows[i] = append(rows[i], entry{col: i, val: 1.0})
		for j := range adj[i] {
			rows[i] = append(rows[i], entry{col: j, val: -invSqrt[i] * invSqrt[j]})
		}
	}

	return newSymCSR(n, rows), nil
}
