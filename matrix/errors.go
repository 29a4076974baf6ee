// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// Only package-level sentinels are exposed; callers branch with errors.Is.
// Implementations attach context via fmt.Errorf("ctx: %w", ErrX) at the
// detection site and never panic on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrGraphNil indicates a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrEmptyGraph indicates a zero-node graph; a 0×0 Laplacian is
	// malformed input for the spectral pipeline and is rejected up front.
	ErrEmptyGraph = errors.New("matrix: graph has no nodes")

	// ErrOutOfRange indicates a row or column index outside 0..n-1.
	// Public indexers return this, they do not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operand shapes that do not line up,
	// e.g. a MulVec vector whose length differs from the matrix order.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)
