// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/katalvlaran/heatprint/builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComplete verifies node/edge counts and the degree profile of K_4.
func TestComplete(t *testing.T) {
	g, err := builder.Complete(4)
	require.NoError(t, err)

	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 6, g.EdgeCount())
	assert.Equal(t, []int{3, 3, 3, 3}, g.Degrees())

	_, err = builder.Complete(0)
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
}

// TestPath verifies the chain shape of P_5.
func TestPath(t *testing.T) {
	g, err := builder.Path(5)
	require.NoError(t, err)

	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, []int{1, 2, 2, 2, 1}, g.Degrees())

	_, err = builder.Path(0)
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
}

// TestCycle verifies C_n regularity and the n ≥ 3 minimum.
func TestCycle(t *testing.T) {
	g, err := builder.Cycle(6)
	require.NoError(t, err)

	assert.Equal(t, 6, g.EdgeCount())
	assert.Equal(t, []int{2, 2, 2, 2, 2, 2}, g.Degrees())

	_, err = builder.Cycle(2)
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
}

// TestStar verifies the hub/leaf degree split of S_5.
func TestStar(t *testing.T) {
	g, err := builder.Star(5)
	require.NoError(t, err)

	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, []int{4, 1, 1, 1, 1}, g.Degrees())

	_, err = builder.Star(1)
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
}

// TestEdgeless verifies the isolated-nodes fixture.
func TestEdgeless(t *testing.T) {
	g, err := builder.Edgeless(3)
	require.NoError(t, err)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, []int{0, 0, 0}, g.Degrees())
}
