// SPDX-License-Identifier: MIT
// Package: heatprint/spectrum
//
// cayley.go — the shift-invert Cayley operator behind the Lanczos branch.
//
// For a shift σ outside [0,2] the operator
//
//	C = (L - σI)⁻¹ (L + σI)
//
// is symmetric with eigenvalues θ = (λ+σ)/(λ-σ), a monotone function of λ
// on [0,2]. σ < 0 makes L - σI positive definite; σ > 2 makes σI - L
// positive definite. Either way a single conjugate gradient solve per
// application suffices, with no factorizations and no extra storage beyond
// four scratch vectors.

package spectrum

import (
	"fmt"
	"math"

	"github.com/katalvlaran/heatprint/matrix"
	"gonum.org/v1/gonum/floats"
)

// cayleyOperator applies C to vectors. Not safe for concurrent use: the
// scratch buffers are reused across Apply calls.
type cayleyOperator struct {
	m     *matrix.SymCSR
	sigma float64
	cgTol float64
	maxCG int

	rhs, r, p, ap []float64 // scratch: CG right-hand side and work vectors
}

func newCayleyOperator(m *matrix.SymCSR, sigma float64, opts Options) *cayleyOperator {
	n := m.Order()

	return &cayleyOperator{
		m:     m,
		sigma: sigma,
		cgTol: opts.CGTol,
		maxCG: opts.MaxCGIter,
		rhs:   make([]float64, n),
		r:     make([]float64, n),
		p:     make([]float64, n),
		ap:    make([]float64, n),
	}
}

// Dim reports the operator order.
func (c *cayleyOperator) Dim() int { return c.m.Order() }

// Apply writes C·x into dst. dst and x must have length Dim and must not
// alias the receiver's scratch buffers.
func (c *cayleyOperator) Apply(dst, x []float64) error {
	// rhs = (L + σI)x
	if err := c.m.MulVec(c.rhs, x); err != nil {
		return fmt.Errorf("cayley: %w", err)
	}
	floats.AddScaled(c.rhs, c.sigma, x)

	// For σ > 2 the SPD form is (σI - L)y = -(L + σI)x.
	if c.sigma >= 0 {
		floats.Scale(-1, c.rhs)
	}

	return c.solve(dst, c.rhs)
}

// applySPD writes the positive definite shifted operator times x into dst:
// (L - σI)x when σ < 0, (σI - L)x when σ > 2.
func (c *cayleyOperator) applySPD(dst, x []float64) error {
	if err := c.m.MulVec(dst, x); err != nil {
		return fmt.Errorf("cayley: %w", err)
	}
	if c.sigma < 0 {
		floats.AddScaled(dst, -c.sigma, x)
	} else {
		floats.Scale(-1, dst)
		floats.AddScaled(dst, c.sigma, x)
	}

	return nil
}

// solve runs conjugate gradients on the SPD form, writing the solution of
// (L - σI)y = b (up to the sign handling above) into dst.
func (c *cayleyOperator) solve(dst, b []float64) error {
	for i := range dst {
		dst[i] = 0
	}

	bNorm := floats.Norm(b, 2)
	if bNorm == 0 {
		return nil // zero right-hand side: zero solution
	}
	lim := c.cgTol * bNorm

	copy(c.r, b)
	copy(c.p, c.r)
	rs := floats.Dot(c.r, c.r)

	for iter := 0; iter < c.maxCG; iter++ {
		if math.Sqrt(rs) <= lim {
			return nil
		}
		if err := c.applySPD(c.ap, c.p); err != nil {
			return err
		}
		alpha := rs / floats.Dot(c.p, c.ap)
		floats.AddScaled(dst, alpha, c.p)
		floats.AddScaled(c.r, -alpha, c.ap)

		rsNext := floats.Dot(c.r, c.r)
		// p = r + (rsNext/rs)·p
		floats.Scale(rsNext/rs, c.p)
		floats.Add(c.p, c.r)
		rs = rsNext
	}
	if math.Sqrt(rs) <= lim {
		return nil
	}

	return fmt.Errorf("cayley: cg exhausted %d iterations (sigma=%g): %w", c.maxCG, c.sigma, ErrNotConverged)
}

// invCayley maps a converged Ritz value of C back to an eigenvalue of L:
// λ = σ(θ+1)/(θ-1). θ = 1 corresponds to λ = ∞ and cannot arise from a
// spectrum inside [0,2]; the guard exists for numerical garbage only.
func invCayley(sigma, theta float64) (float64, error) {
	if math.Abs(theta-1) < 1e-12 {
		return 0, fmt.Errorf("cayley: ritz value %g at the transform pole: %w", theta, ErrNotConverged)
	}

	return sigma * (theta + 1) / (theta - 1), nil
}
