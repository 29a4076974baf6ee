// SPDX-License-Identifier: MIT
// Package: heatprint/core
//
// types.go — Graph, Edge, sentinel errors, constructor.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadNodeCount indicates a negative node count was requested.
	ErrBadNodeCount = errors.New("core: node count must be non-negative")

	// ErrNodeOutOfRange indicates an edge endpoint outside 0..n-1.
	ErrNodeOutOfRange = errors.New("core: node index out of range")

	// ErrBadPermutation indicates a relabeling that is not a bijection
	// of 0..n-1 (wrong length, out-of-range entry, or duplicate).
	ErrBadPermutation = errors.New("core: permutation is not a bijection of 0..n-1")
)

// Edge is one undirected edge between canonical node indices U and V.
// U == V records a self-loop; downstream spectral code drops loops.
type Edge struct {
	U, V int
}

// Graph is a canonically indexed undirected graph: n nodes labeled 0..n-1
// plus an edge list in insertion order.
//
// mu guards edges; n is immutable after construction. Accessors copy.
type Graph struct {
	mu    sync.RWMutex
	n     int
	edges []Edge
}

// NewGraph returns an empty Graph on n nodes (n may be zero; downstream
// consumers reject zero-node graphs themselves, per their own contracts).
// Complexity: O(1).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", n, ErrBadNodeCount)
	}

	return &Graph{n: n}, nil
}
