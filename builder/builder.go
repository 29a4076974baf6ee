// SPDX-License-Identifier: MIT
// Package: heatprint/builder
//
// builder.go — constructors for canonical topologies.
//
// Contract (shared by all constructors):
//   • Parameter minima are enforced up front; violations return
//     ErrTooFewNodes wrapped with the constructor name.
//   • Node indices are 0..n-1; edges are emitted in lexicographic (u,v)
//     order with u < v, each unordered pair at most once.
//   • No randomness, no global state.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/heatprint/core"
)

// ErrTooFewNodes indicates that n is below the minimum for the requested
// topology. Match with errors.Is.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// File-local constants: constructor tags and parameter minima.
const (
	methodComplete = "Complete"
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodEdgeless = "Edgeless"

	minCompleteNodes = 1
	minPathNodes     = 1
	minCycleNodes    = 3
	minStarNodes     = 2
	minEdgelessNodes = 0
)

// Complete builds the complete simple graph K_n.
// Complexity: O(n²).
func Complete(n int) (*core.Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewNodes)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodComplete, err)
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if err = g.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodComplete, u, v, err)
			}
		}
	}

	return g, nil
}

// Path builds the path graph P_n: 0-1-…-(n-1).
// Complexity: O(n).
func Path(n int) (*core.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPath, err)
	}
	for u := 0; u+1 < n; u++ {
		if err = g.AddEdge(u, u+1); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodPath, u, u+1, err)
		}
	}

	return g, nil
}

// Cycle builds the cycle graph C_n (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) (*core.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
	}

	g, err := Path(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCycle, err)
	}
	if err = g.AddEdge(0, n-1); err != nil {
		return nil, fmt.Errorf("%s: AddEdge(0,%d): %w", methodCycle, n-1, err)
	}

	return g, nil
}

// Star builds the star graph S_n: hub 0 joined to every leaf 1..n-1 (n ≥ 2).
// Complexity: O(n).
func Star(n int) (*core.Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodStar, err)
	}
	for v := 1; v < n; v++ {
		if err = g.AddEdge(0, v); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(0,%d): %w", methodStar, v, err)
		}
	}

	return g, nil
}

// Edgeless builds n isolated nodes — the degenerate all-zero-Laplacian case.
// Complexity: O(1).
func Edgeless(n int) (*core.Graph, error) {
	if n < minEdgelessNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodEdgeless, n, minEdgelessNodes, ErrTooFewNodes)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodEdgeless, err)
	}

	return g, nil
}
