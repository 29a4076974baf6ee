// SPDX-License-Identifier: MIT

// Package spectrum estimates the eigenvalue spectrum of a normalized
// Laplacian, choosing between two strategies on a single size threshold:
//
//   - Exact (2k+2 ≥ n): the n-1 smallest eigenvalues from a dense symmetric
//     decomposition (gonum mat.EigenSym), ascending.
//   - Approximate (2k+2 < n): the k smallest and k largest eigenvalues via
//     a shift-invert Cayley-mode Lanczos iteration, with the interior of
//     the spectrum filled by linear interpolation between the two bands.
//
// The Cayley transform C = (L-σI)⁻¹(L+σI) with a shift σ outside [0, 2]
// maps the target band onto the extreme end of C's spectrum while keeping
// the shifted operator definite, so plain conjugate gradients serve the
// inner solves and Lanczos converges on the clustered eigenvalues near the
// normalization bounds. Repeated eigenvalues are recovered by deflation:
// certified Ritz vectors are locked and follow-up passes explore their
// orthogonal complement until the band is complete with multiplicity.
// Start vectors are seeded deterministically; for a fixed matrix the
// output never varies between runs.
//
// The interior fill spans from the lower band's maximum to the upper band's
// minimum inclusively and re-writes both boundary slots, reproducing the
// reference implementation's overlap exactly — downstream signatures depend
// on these precise values.
//
// Failure taxonomy: configuration errors (ErrBadBandSize, ErrBandTooLarge)
// are distinct from numerical failure (ErrNotConverged); an oversized band
// routed through Estimate falls back to the exact branch instead of failing.
package spectrum
