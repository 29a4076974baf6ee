// SPDX-License-Identifier: MIT
// Package: heatprint/spectrum
//
// lanczos.go — deflated Lanczos iteration with full reorthogonalization.
//
// The iteration targets the algebraically smallest eigenvalues of the
// Cayley operator: the transform is monotone on [0,2], so the band of
// interest always sits at the low end of the transformed spectrum. Full
// reorthogonalization (two modified Gram-Schmidt passes per step) trades
// memory for the numerical stability the clustered Laplacian spectra
// demand.
//
// A single Krylov space surfaces each distinct eigenvalue once, so one
// pass alone cannot certify a band on a degenerate spectrum (cycles,
// stars, complete graphs). The driver therefore locks every certified
// Ritz pair and runs the next pass in the orthogonal complement of the
// locked vectors, where the remaining copies of a repeated eigenvalue
// reappear. Passes stop once the complement can no longer contribute a
// value below the current band — at that point the pool provably holds
// the kb smallest eigenvalues counted with multiplicity.

package spectrum

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// breakdownEps is the β threshold below which the Krylov basis is treated
// as an exact invariant subspace.
const breakdownEps = 1e-14

// reorthPasses is the number of Gram-Schmidt sweeps per step; the second
// pass mops up the roundoff the first one leaves behind.
const reorthPasses = 2

// startAttempts bounds the random draws for a pass's start vector before
// the orthogonal complement is declared numerically empty.
const startAttempts = 3

// lanczosSmallest returns the kb algebraically smallest eigenvalues of op,
// ascending and counted with multiplicity. seed fixes the start-vector
// stream, keeping the routine deterministic for a fixed operator.
//
// Certification policy: each pass certifies Ritz pairs of the deflated
// operator — by residual bound ≤ tol, or exactly when its Krylov space
// goes invariant — and locks their vectors. The driver keeps launching
// passes into the shrinking complement until the latest pass's smallest
// value can no longer displace the pool's kb-th smallest; every remaining
// eigenvalue is at least that large, so the band is complete.
//
// Errors: ErrBandTooLarge (kb exceeds the permitted basis), ErrNotConverged.
func lanczosSmallest(op *cayleyOperator, kb int, opts Options, seed int64) ([]float64, error) {
	n := op.Dim()
	maxDim := opts.MaxLanczosDim
	if maxDim > n {
		maxDim = n
	}
	if kb > maxDim {
		return nil, fmt.Errorf("lanczos: band %d exceeds basis cap %d: %w", kb, maxDim, ErrBandTooLarge)
	}

	rng := rand.New(rand.NewSource(seed))

	var (
		locked [][]float64 // certified Ritz vectors, orthonormal
		pool   []float64   // certified eigenvalues, one per locked vector
	)
	for len(locked) < n {
		need := kb
		if free := n - len(locked); need > free {
			need = free
		}
		vals, vecs, err := lanczosPass(op, need, locked, opts, rng)
		if err != nil {
			return nil, err
		}
		if len(vals) == 0 {
			break // complement numerically empty
		}
		pool = append(pool, vals...)
		locked = append(locked, vecs...)
		sort.Float64s(pool)

		// vals[0] bounds every eigenvalue still left in the complement
		// from below; once it cannot undercut the band, the band is done.
		if len(pool) >= kb && vals[0] >= pool[kb-1] {
			break
		}
	}
	if len(pool) < kb {
		return nil, fmt.Errorf("lanczos: certified %d of %d band values: %w", len(pool), kb, ErrNotConverged)
	}

	return pool[:kb], nil
}

// lanczosPass runs one Lanczos iteration restricted to the orthogonal
// complement of locked and returns up to need certified eigenpairs of the
// deflated operator, values ascending. Residual convergence returns exactly
// need pairs; an invariant subspace returns min(need, dim) exact pairs.
// A nil, nil, nil return means the complement is numerically empty.
func lanczosPass(op *cayleyOperator, need int, locked [][]float64, opts Options, rng *rand.Rand) ([]float64, [][]float64, error) {
	n := op.Dim()
	limit := opts.MaxLanczosDim
	if free := n - len(locked); limit > free {
		limit = free
	}

	v0 := startVector(rng, n, locked)
	if v0 == nil {
		return nil, nil, nil
	}

	basis := [][]float64{v0}
	alpha := make([]float64, 0, limit)
	beta := make([]float64, 0, limit) // beta[j] couples basis[j] and basis[j+1]
	w := make([]float64, n)

	for {
		// Expand: one step of the three-term recurrence on the deflated
		// operator (I-QQᵀ)C restricted to span(locked)ᗮ.
		if err := op.Apply(w, basis[len(basis)-1]); err != nil {
			return nil, nil, err
		}
		alpha = append(alpha, floats.Dot(w, basis[len(basis)-1]))
		orthogonalize(w, locked)
		orthogonalize(w, basis)
		b := floats.Norm(w, 2)
		m := len(alpha)

		if b <= breakdownEps {
			// Invariant subspace: the projection is exact; hand back its
			// smallest pairs and let the driver explore what is left.
			take := need
			if take > m {
				take = m
			}

			return certifyRitz(alpha, beta, basis, take)
		}

		if m >= need {
			vals, s, err := projectionEigen(alpha, beta)
			if err != nil {
				return nil, nil, err
			}
			resid := 0.0
			for i := 0; i < need; i++ {
				if r := math.Abs(b * s.At(m-1, i)); r > resid {
					resid = r
				}
			}
			if resid <= opts.LanczosTol {
				return append([]float64(nil), vals[:need]...), ritzVectors(basis, s, need), nil
			}
		}
		if m >= limit {
			return nil, nil, fmt.Errorf("lanczos: %d-dim Krylov space exhausted: %w", limit, ErrNotConverged)
		}

		beta = append(beta, b)
		next := make([]float64, n)
		floats.ScaleTo(next, 1/b, w)
		basis = append(basis, next)
	}
}

// startVector draws a random unit vector orthogonal to locked, or nil when
// the complement is numerically empty.
func startVector(rng *rand.Rand, n int, locked [][]float64) []float64 {
	for attempt := 0; attempt < startAttempts; attempt++ {
		v := make([]float64, n)
		for i := range v {
			v[i] = rng.NormFloat64()
		}
		orthogonalize(v, locked)
		if b := floats.Norm(v, 2); b > breakdownEps {
			floats.Scale(1/b, v)

			return v
		}
	}

	return nil
}

// orthogonalize projects w against every basis vector, reorthPasses times.
func orthogonalize(w []float64, basis [][]float64) {
	for pass := 0; pass < reorthPasses; pass++ {
		for _, u := range basis {
			floats.AddScaled(w, -floats.Dot(w, u), u)
		}
	}
}

// certifyRitz finalizes an invariant (β-collapsed) projection: its Ritz
// pairs are exact for the explored subspace.
func certifyRitz(alpha, beta []float64, basis [][]float64, take int) ([]float64, [][]float64, error) {
	vals, s, err := projectionEigen(alpha, beta)
	if err != nil {
		return nil, nil, err
	}

	return append([]float64(nil), vals[:take]...), ritzVectors(basis, s, take), nil
}

// projectionEigen solves the m×m tridiagonal projection (diagonal alpha,
// off-diagonal beta) and returns its eigenvalues ascending together with
// the eigenvector matrix.
func projectionEigen(alpha, beta []float64) ([]float64, *mat.Dense, error) {
	m := len(alpha)
	T := mat.NewSymDense(m, nil)
	for i, a := range alpha {
		T.SetSym(i, i, a)
	}
	for i := 0; i+1 < m; i++ {
		T.SetSym(i, i+1, beta[i])
	}

	var es mat.EigenSym
	if ok := es.Factorize(T, true); !ok {
		return nil, nil, fmt.Errorf("lanczos: tridiagonal eigensolve: %w", ErrNotConverged)
	}
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	return es.Values(nil), &vecs, nil
}

// ritzVectors lifts the first take projection eigenvectors back to the full
// space: y_i = Σ_j s[j,i]·basis[j].
func ritzVectors(basis [][]float64, s *mat.Dense, take int) [][]float64 {
	out := make([][]float64, take)
	for i := 0; i < take; i++ {
		y := make([]float64, len(basis[0]))
		for j, v := range basis {
			floats.AddScaled(y, s.At(j, i), v)
		}
		out[i] = y
	}

	return out
}
