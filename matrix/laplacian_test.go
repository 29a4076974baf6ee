// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/heatprint/builder"
	"github.com/katalvlaran/heatprint/core"
	"github.com/katalvlaran/heatprint/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

// at is a test helper that asserts the lookup itself succeeds.
func at(t *testing.T, m *matrix.SymCSR, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// TestNormalizedLaplacian_Guards covers nil and zero-node inputs.
func TestNormalizedLaplacian_Guards(t *testing.T) {
	_, err := matrix.NormalizedLaplacian(nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)

	g, err := core.NewGraph(0)
	require.NoError(t, err)
	_, err = matrix.NormalizedLaplacian(g)
	assert.ErrorIs(t, err, matrix.ErrEmptyGraph)
}

// TestNormalizedLaplacian_Triangle checks every entry of L(K_3):
// diagonal 1, off-diagonal -1/2.
func TestNormalizedLaplacian_Triangle(t *testing.T) {
	g, err := builder.Complete(3)
	require.NoError(t, err)

	L, err := matrix.NormalizedLaplacian(g)
	require.NoError(t, err)
	require.Equal(t, 3, L.Order())

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := -0.5
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, at(t, L, i, j), tol, "L[%d,%d]", i, j)
		}
	}
}

// TestNormalizedLaplacian_LoopsAndParallels verifies that self-loops are
// removed and parallel edges collapse, leaving the same matrix as the
// clean graph — and that the input graph is untouched.
func TestNormalizedLaplacian_LoopsAndParallels(t *testing.T) {
	dirty, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, dirty.AddEdge(0, 1))
	require.NoError(t, dirty.AddEdge(1, 0)) // parallel
	require.NoError(t, dirty.AddEdge(1, 2))
	require.NoError(t, dirty.AddEdge(2, 2)) // loop
	edgesBefore := dirty.EdgeCount()

	clean, err := builder.Path(3)
	require.NoError(t, err)

	Ld, err := matrix.NormalizedLaplacian(dirty)
	require.NoError(t, err)
	Lc, err := matrix.NormalizedLaplacian(clean)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, at(t, Lc, i, j), at(t, Ld, i, j), tol, "L[%d,%d]", i, j)
		}
	}
	assert.Equal(t, edgesBefore, dirty.EdgeCount(), "input graph must not be mutated")
}

// TestNormalizedLaplacian_IsolatedNode verifies the zero row/column for a
// degree-0 node alongside a connected pair.
func TestNormalizedLaplacian_IsolatedNode(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1)) // node 2 stays isolated

	L, err := matrix.NormalizedLaplacian(g)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, at(t, L, 0, 0), tol)
	assert.InDelta(t, 1.0, at(t, L, 1, 1), tol)
	assert.InDelta(t, -1.0, at(t, L, 0, 1), tol)
	for j := 0; j < 3; j++ {
		assert.InDelta(t, 0.0, at(t, L, 2, j), tol, "isolated row must be zero")
		assert.InDelta(t, 0.0, at(t, L, j, 2), tol, "isolated column must be zero")
	}
}

// TestNormalizedLaplacian_Edgeless verifies the all-zero matrix for
// isolated-only graphs.
func TestNormalizedLaplacian_Edgeless(t *testing.T) {
	g, err := builder.Edgeless(2)
	require.NoError(t, err)

	L, err := matrix.NormalizedLaplacian(g)
	require.NoError(t, err)
	assert.Equal(t, 0, L.NNZ())
}
