// SPDX-License-Identifier: MIT

package spectrum_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/heatprint/builder"
	"github.com/katalvlaran/heatprint/core"
	"github.com/katalvlaran/heatprint/matrix"
	"github.com/katalvlaran/heatprint/spectrum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// bandTol absorbs the iterative solver's residual target with headroom.
const bandTol = 1e-6

// laplacianOf builds L(g) or fails the test.
func laplacianOf(t *testing.T, g *core.Graph) *matrix.SymCSR {
	t.Helper()
	L, err := matrix.NormalizedLaplacian(g)
	require.NoError(t, err)

	return L
}

// denseSpectrum computes the full ground-truth spectrum of L, ascending.
func denseSpectrum(t *testing.T, L *matrix.SymCSR) []float64 {
	t.Helper()
	var es mat.EigenSym
	require.True(t, es.Factorize(L.ToSymDense(), false))
	vals := es.Values(nil)
	sort.Float64s(vals)

	return vals
}

// TestExact_Triangle: L(K_3) has spectrum {0, 1.5, 1.5}; the exact branch
// returns the n-1 smallest, i.e. {0, 1.5}.
func TestExact_Triangle(t *testing.T) {
	g, err := builder.Complete(3)
	require.NoError(t, err)
	L := laplacianOf(t, g)

	eigs, err := spectrum.Exact(L)
	require.NoError(t, err)
	require.Len(t, eigs, 2)
	assert.InDelta(t, 0.0, eigs[0], bandTol)
	assert.InDelta(t, 1.5, eigs[1], bandTol)
}

// TestEstimate_Guards covers nil matrix and non-positive band size.
func TestEstimate_Guards(t *testing.T) {
	_, err := spectrum.Estimate(nil, 3, spectrum.Options{})
	assert.ErrorIs(t, err, spectrum.ErrNilMatrix)

	g, err := builder.Path(4)
	require.NoError(t, err)
	L := laplacianOf(t, g)

	_, err = spectrum.Estimate(L, 0, spectrum.Options{})
	assert.ErrorIs(t, err, spectrum.ErrBadBandSize)
}

// TestEstimate_ZeroMatrix: an edgeless graph's Laplacian short-circuits to
// the closed-form all-zero spectrum of full length n.
func TestEstimate_ZeroMatrix(t *testing.T) {
	g, err := builder.Edgeless(5)
	require.NoError(t, err)
	L := laplacianOf(t, g)

	eigs, err := spectrum.Estimate(L, 50, spectrum.Options{})
	require.NoError(t, err)
	require.Len(t, eigs, 5, "zero spectrum keeps full length n")
	for i, v := range eigs {
		assert.Zero(t, v, "eigenvalue %d", i)
	}
}

// TestEstimate_BranchSelection: at 2k+2 == n the exact branch runs (n-1
// values); one node more flips to the approximate branch (n values).
func TestEstimate_BranchSelection(t *testing.T) {
	const k = 3

	atThreshold, err := builder.Cycle(2*k + 2) // n = 8
	require.NoError(t, err)
	eigs, err := spectrum.Estimate(laplacianOf(t, atThreshold), k, spectrum.Options{})
	require.NoError(t, err)
	assert.Len(t, eigs, 2*k+1, "exact branch returns n-1 values")

	aboveThreshold, err := builder.Cycle(2*k + 3) // n = 9
	require.NoError(t, err)
	eigs, err = spectrum.Estimate(laplacianOf(t, aboveThreshold), k, spectrum.Options{})
	require.NoError(t, err)
	assert.Len(t, eigs, 2*k+3, "approximate branch returns n values")
}

// TestApproximate_BandTooLarge: forcing the banded path with 2k > n is a
// configuration error, distinct from non-convergence.
func TestApproximate_BandTooLarge(t *testing.T) {
	g, err := builder.Cycle(5)
	require.NoError(t, err)

	_, err = spectrum.Approximate(laplacianOf(t, g), 3, spectrum.Options{})
	assert.ErrorIs(t, err, spectrum.ErrBandTooLarge)
	assert.NotErrorIs(t, err, spectrum.ErrNotConverged)
}

// TestApproximate_BandsMatchDense verifies on C_12 with k=3 that both
// bands reproduce the dense ground truth, the assembled estimate has full
// length, is monotone, and keeps the overlapping boundary slots.
func TestApproximate_BandsMatchDense(t *testing.T) {
	const (
		n = 12
		k = 3
	)
	g, err := builder.Cycle(n)
	require.NoError(t, err)
	L := laplacianOf(t, g)
	truth := denseSpectrum(t, L)

	est, err := spectrum.Approximate(L, k, spectrum.Options{})
	require.NoError(t, err)
	require.Len(t, est, n)

	// Lower and upper bands against the dense decomposition.
	for i := 0; i < k; i++ {
		assert.InDelta(t, truth[i], est[i], bandTol, "lower band slot %d", i)
		assert.InDelta(t, truth[n-k+i], est[n-k+i], bandTol, "upper band slot %d", i)
	}

	// Whole estimate is sorted ascending (the interior is a linear fill
	// between lower-max and upper-min).
	assert.True(t, sort.Float64sAreSorted(est), "estimate must be monotone: %v", est)

	// Overlap: the fill is anchored exactly on the two boundary slots.
	assert.InDelta(t, est[k-1], truth[k-1], bandTol, "fill start anchors on lower-band max")
	assert.InDelta(t, est[n-k], truth[n-k], bandTol, "fill end anchors on upper-band min")

	// Interior spacing is uniform between the anchors.
	step := (est[n-k] - est[k-1]) / float64(n-2*k+1)
	for i := k - 1; i < n-k; i++ {
		assert.InDelta(t, est[k-1]+float64(i-(k-1))*step, est[i], bandTol, "interior slot %d", i)
	}
}

// TestApproximate_DegenerateMultiplicity: cycle spectra come in degenerate
// pairs (λ_j = 1 - cos(2πj/n)), so the bands must report repeated values,
// not the k smallest distinct ones. C_30 converges by residual well before
// the basis cap and C_600 stresses the same path at scale — both bands are
// checked against the dense truth with multiplicity.
func TestApproximate_DegenerateMultiplicity(t *testing.T) {
	const k = 5
	for _, n := range []int{30, 600} {
		g, err := builder.Cycle(n)
		require.NoError(t, err)
		L := laplacianOf(t, g)
		truth := denseSpectrum(t, L)

		est, err := spectrum.Approximate(L, k, spectrum.Options{})
		require.NoError(t, err)
		require.Len(t, est, n)
		for i := 0; i < k; i++ {
			assert.InDelta(t, truth[i], est[i], bandTol, "n=%d lower band slot %d", n, i)
			assert.InDelta(t, truth[n-k+i], est[n-k+i], bandTol, "n=%d upper band slot %d", n, i)
		}
	}
}

// TestApproximate_HighMultiplicity: L(Star_20) has spectrum {0, 1×18, 2},
// so both k=5 bands are dominated by a single eigenvalue of multiplicity
// far beyond one Krylov pass.
func TestApproximate_HighMultiplicity(t *testing.T) {
	const (
		n = 20
		k = 5
	)
	g, err := builder.Star(n)
	require.NoError(t, err)
	L := laplacianOf(t, g)

	est, err := spectrum.Approximate(L, k, spectrum.Options{})
	require.NoError(t, err)
	require.Len(t, est, n)

	wantLower := []float64{0, 1, 1, 1, 1}
	wantUpper := []float64{1, 1, 1, 1, 2}
	for i := 0; i < k; i++ {
		assert.InDelta(t, wantLower[i], est[i], bandTol, "lower band slot %d", i)
		assert.InDelta(t, wantUpper[i], est[n-k+i], bandTol, "upper band slot %d", i)
	}
}

// TestApproximate_Deterministic: two runs on the same matrix agree exactly.
func TestApproximate_Deterministic(t *testing.T) {
	g, err := builder.Cycle(14)
	require.NoError(t, err)
	L := laplacianOf(t, g)

	a, err := spectrum.Approximate(L, 4, spectrum.Options{})
	require.NoError(t, err)
	b, err := spectrum.Approximate(L, 4, spectrum.Options{})
	require.NoError(t, err)
	assert.Equal(t, a, b, "fixed seeds make the banded path reproducible")
}
