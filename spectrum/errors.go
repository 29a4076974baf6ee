// SPDX-License-Identifier: MIT
// Package spectrum: sentinel error set.
//
// Convergence failures and configuration failures are deliberately distinct
// sentinels so batch callers can retry the former and must fix the latter.

package spectrum

import "errors"

var (
	// ErrNilMatrix indicates a nil *matrix.SymCSR input.
	ErrNilMatrix = errors.New("spectrum: matrix is nil")

	// ErrBadBandSize indicates a non-positive approximation band size k.
	ErrBadBandSize = errors.New("spectrum: band size must be positive")

	// ErrBandTooLarge indicates that the two k-bands cannot fit into an
	// n-length spectrum. Estimate never returns this — it routes oversized
	// bands to the exact branch; only a forced Approximate call can see it.
	ErrBandTooLarge = errors.New("spectrum: band size too large for matrix order")

	// ErrNotConverged indicates the iterative eigensolver (or one of its
	// conjugate-gradient inner solves) exhausted its iteration budget.
	ErrNotConverged = errors.New("spectrum: eigensolver did not converge")
)
