// SPDX-License-Identifier: MIT
// Package: heatprint/matrix
//
// sparse.go — SymCSR storage and its accessors.
//
// Layout invariants:
//   • rowPtr has length n+1; row i occupies vals[rowPtr[i]:rowPtr[i+1]].
//   • colIdx within each row is strictly ascending.
//   • Both (i,j) and (j,i) are stored for every off-diagonal entry, so the
//     structure is symmetric by construction and MulVec needs no mirroring.

package matrix

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Method tags for error context.
const (
	ctxAt     = "At"
	ctxMulVec = "MulVec"
)

// entry is a build-time (col, val) pair for one row.
type entry struct {
	col int
	val float64
}

// SymCSR is a symmetric sparse matrix in compressed sparse row form.
// Immutable after construction; safe for concurrent reads.
type SymCSR struct {
	n      int
	rowPtr []int
	colIdx []int
	vals   []float64
}

// newSymCSR assembles CSR storage from per-row entry lists, sorting each
// row by column for deterministic layout. rows must have length n and
// already contain both triangles. Complexity: O(nnz log nnz).
func newSymCSR(n int, rows [][]entry) *SymCSR {
	m := &SymCSR{n: n, rowPtr: make([]int, n+1)}

	nnz := 0
	for i := 0; i < n; i++ {
		nnz += len(rows[i])
	}
	m.colIdx = make([]int, 0, nnz)
	m.vals = make([]float64, 0, nnz)

	for i := 0; i < n; i++ {
		sort.Slice(rows[i], func(a, b int) bool { return rows[i][a].col < rows[i][b].col })
		for _, e := range rows[i] {
			m.colIdx = append(m.colIdx, e.col)
			m.vals = append(m.vals, e.val)
		}
		m.rowPtr[i+1] = len(m.colIdx)
	}

	return m
}

// Order reports n, the number of rows (= columns).
func (m *SymCSR) Order() int { return m.n }

// NNZ reports the number of stored entries (both triangles counted).
func (m *SymCSR) NNZ() int { return len(m.vals) }

// At returns the entry at (i, j); absent positions read as zero.
// Complexity: O(log nnz(row i)).
func (m *SymCSR) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("SymCSR.%s(%d,%d): %w", ctxAt, i, j, ErrOutOfRange)
	}

	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	k := lo + sort.SearchInts(m.colIdx[lo:hi], j)
	if k < hi && m.colIdx[k] == j {
		return m.vals[k], nil
	}

	return 0, nil
}

// MulVec writes m·x into dst. dst and x must both have length Order.
// Complexity: O(nnz).
func (m *SymCSR) MulVec(dst, x []float64) error {
	if len(x) != m.n || len(dst) != m.n {
		return fmt.Errorf("SymCSR.%s: len(dst)=%d len(x)=%d n=%d: %w",
			ctxMulVec, len(dst), len(x), m.n, ErrDimensionMismatch)
	}

	for i := 0; i < m.n; i++ {
		s := 0.0
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			s += m.vals[k] * x[m.colIdx[k]]
		}
		dst[i] = s
	}

	return nil
}

// ToSymDense materializes the matrix as a gonum SymDense for dense
// eigendecomposition. Complexity: O(n² + nnz).
func (m *SymCSR) ToSymDense() *mat.SymDense {
	d := mat.NewSymDense(m.n, nil)
	for i := 0; i < m.n; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			if j := m.colIdx[k]; j >= i {
				d.SetSym(i, j, m.vals[k])
			}
		}
	}

	return d
}
