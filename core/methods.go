// SPDX-License-Identifier: MIT
// Package: heatprint/core
//
// methods.go — mutation, accessors, Clone and Relabel.
//
// Locking model: AddEdge takes the write lock; every reader takes the read
// lock and returns copies so no caller ever aliases internal storage.

package core

import "fmt"

// Method tags for error context (no magic strings at call sites).
const (
	methodAddEdge = "AddEdge"
	methodRelabel = "Relabel"
)

// AddEdge records the undirected edge {u, v}. Self-loops (u == v) and
// parallel edges are accepted; the Laplacian builder ignores loops and
// collapses duplicates. Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= g.n {
		return fmt.Errorf("%s: u=%d, n=%d: %w", methodAddEdge, u, g.n, ErrNodeOutOfRange)
	}
	if v < 0 || v >= g.n {
		return fmt.Errorf("%s: v=%d, n=%d: %w", methodAddEdge, v, g.n, ErrNodeOutOfRange)
	}

	g.mu.Lock()
	g.edges = append(g.edges, Edge{U: u, V: v})
	g.mu.Unlock()

	return nil
}

// NodeCount reports n, the number of canonical node indices.
func (g *Graph) NodeCount() int { return g.n }

// EdgeCount reports the number of recorded edges, self-loops included.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Edges returns a copy of the edge list in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Degrees returns the loop-free degree of every node: self-loops contribute
// nothing, parallel edges are counted once per recorded copy. Consumers
// that need simple-graph degrees deduplicate first (see matrix package).
// Complexity: O(V + E).
func (g *Graph) Degrees() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	deg := make([]int, g.n)
	for _, e := range g.edges {
		if e.U == e.V {
			continue // loops never count toward degree
		}
		deg[e.U]++
		deg[e.V]++
	}

	return deg
}

// Clone returns an independent deep copy of g. Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{n: g.n, edges: make([]Edge, len(g.edges))}
	copy(c.edges, g.edges)

	return c
}

// Relabel returns a new Graph whose node i is the old node perm[i]'s image:
// every edge {u, v} becomes {perm[u], perm[v]}. perm must be a bijection of
// 0..n-1, otherwise ErrBadPermutation. The receiver is left untouched.
// Complexity: O(V + E).
func (g *Graph) Relabel(perm []int) (*Graph, error) {
	if len(perm) != g.n {
		return nil, fmt.Errorf("%s: len(perm)=%d, n=%d: %w", methodRelabel, len(perm), g.n, ErrBadPermutation)
	}

	seen := make([]bool, g.n)
	for i, p := range perm {
		if p < 0 || p >= g.n || seen[p] {
			return nil, fmt.Errorf("%s: perm[%d]=%d: %w", methodRelabel, i, p, ErrBadPermutation)
		}
		seen[p] = true
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{n: g.n, edges: make([]Edge, len(g.edges))}
	for i, e := range g.edges {
		out.edges[i] = Edge{U: perm[e.U], V: perm[e.V]}
	}

	return out, nil
}
