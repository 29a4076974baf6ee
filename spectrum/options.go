// SPDX-License-Identifier: MIT
// Package: heatprint/spectrum
//
// options.go — solver tuning knobs and their documented defaults.

package spectrum

// Defaults — single source of truth for zero-value behavior. A zero or
// negative field in Options resolves to the matching constant.
const (
	// DefaultLanczosTol bounds the Ritz residual |β·s| accepted as
	// converged for every requested band value.
	DefaultLanczosTol = 1e-9

	// DefaultMaxLanczosDim caps the Krylov subspace dimension. When the
	// cap reaches the matrix order the decomposition is complete and is
	// accepted as exact regardless of the residual test.
	DefaultMaxLanczosDim = 256

	// DefaultCGTol is the relative residual target of the conjugate
	// gradient inner solves behind the Cayley transform.
	DefaultCGTol = 1e-12

	// DefaultMaxCGIter caps each conjugate gradient solve. The shifted
	// operators are well conditioned (κ ≤ 5 for the default shifts), so
	// the cap is generous.
	DefaultMaxCGIter = 200
)

// Options tunes the approximate (Lanczos) branch. The zero value selects
// every default, so spectrum.Options{} is always safe to pass.
type Options struct {
	// LanczosTol is the Ritz residual convergence threshold.
	LanczosTol float64

	// MaxLanczosDim caps the Krylov subspace dimension.
	MaxLanczosDim int

	// CGTol is the relative residual target of inner CG solves.
	CGTol float64

	// MaxCGIter caps each inner CG solve.
	MaxCGIter int
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{
		LanczosTol:    DefaultLanczosTol,
		MaxLanczosDim: DefaultMaxLanczosDim,
		CGTol:         DefaultCGTol,
		MaxCGIter:     DefaultMaxCGIter,
	}
}

// withDefaults resolves unset (non-positive) fields to the defaults.
func (o Options) withDefaults() Options {
	if o.LanczosTol <= 0 {
		o.LanczosTol = DefaultLanczosTol
	}
	if o.MaxLanczosDim <= 0 {
		o.MaxLanczosDim = DefaultMaxLanczosDim
	}
	if o.CGTol <= 0 {
		o.CGTol = DefaultCGTol
	}
	if o.MaxCGIter <= 0 {
		o.MaxCGIter = DefaultMaxCGIter
	}

	return o
}
