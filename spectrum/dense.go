// SPDX-License-Identifier: MIT
// Package: heatprint/spectrum
//
// dense.go — the exact branch: dense symmetric eigendecomposition.

package spectrum

import (
	"fmt"

	"github.com/katalvlaran/heatprint/matrix"
	"gonum.org/v1/gonum/mat"
)

// Exact computes the n-1 smallest eigenvalues of m, ascending, via a full
// dense symmetric decomposition. The largest eigenvalue is intentionally
// omitted — the reference contract for the small-graph branch returns one
// value fewer than the matrix order (see package doc of netlsd).
// Errors: ErrNilMatrix, ErrNotConverged. Complexity: O(n³).
func Exact(m *matrix.SymCSR) ([]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("Exact: %w", ErrNilMatrix)
	}

	var es mat.EigenSym
	if ok := es.Factorize(m.ToSymDense(), false); !ok {
		return nil, fmt.Errorf("Exact: dense factorization: %w", ErrNotConverged)
	}

	vals := es.Values(nil) // ascending by contract

	return vals[:m.Order()-1], nil
}
