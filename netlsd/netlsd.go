// SPDX-License-Identifier: MIT
// Package: heatprint/netlsd
//
// netlsd.go — the Estimator: construction, the per-graph pipeline, and the
// parallel batch collector.

package netlsd

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/heatprint/core"
	"github.com/katalvlaran/heatprint/embedding"
	"github.com/katalvlaran/heatprint/matrix"
	"github.com/katalvlaran/heatprint/spectrum"
)

// Estimator computes NetLSD signatures. Configuration is frozen at New;
// only the fitted embedding mutates, guarded by mu and replaced wholesale
// on each successful Fit.
type Estimator struct {
	cfg  config
	grid []float64 // time-scale grid, shared read-only by all pipelines

	mu       sync.RWMutex
	fitted   bool
	rowCache [][]float64
}

// Estimator satisfies the shared embedding-model contract.
var _ embedding.Embedder = (*Estimator)(nil)

// New builds an Estimator from the defaults plus opts, validating the
// resolved configuration before anything else can run.
// Errors: ErrBadScaleSteps, ErrBadScaleRange, ErrBadApproximations.
func New(opts ...Option) (*Estimator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.scaleSteps <= 0 {
		return nil, fmt.Errorf("New: steps=%d: %w", cfg.scaleSteps, ErrBadScaleSteps)
	}
	if math.IsNaN(cfg.scaleMin) || math.IsNaN(cfg.scaleMax) ||
		math.IsInf(cfg.scaleMin, 0) || math.IsInf(cfg.scaleMax, 0) ||
		cfg.scaleMin > cfg.scaleMax {
		return nil, fmt.Errorf("New: min=%g max=%g: %w", cfg.scaleMin, cfg.scaleMax, ErrBadScaleRange)
	}
	if cfg.approximations <= 0 {
		return nil, fmt.Errorf("New: k=%d: %w", cfg.approximations, ErrBadApproximations)
	}
	if cfg.workers <= 0 {
		cfg.workers = defaultConfig().workers
	}

	return &Estimator{
		cfg:  cfg,
		grid: timeScales(cfg.scaleMin, cfg.scaleMax, cfg.scaleSteps),
	}, nil
}

// TimeScales returns a copy of the diffusion-time grid shared by every
// signature this Estimator produces.
func (e *Estimator) TimeScales() []float64 {
	out := make([]float64, len(e.grid))
	copy(out, e.grid)

	return out
}

// Signature runs the full single-graph pipeline — normalized Laplacian,
// spectrum estimate, heat trace — and returns the scaleSteps-length
// signature vector. Pure with respect to the Estimator's fitted state.
func (e *Estimator) Signature(g *core.Graph) ([]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	lap, err := matrix.NormalizedLaplacian(g)
	if err != nil {
		return nil, err
	}
	eigs, err := spectrum.Estimate(lap, e.cfg.approximations, e.cfg.spectrumOpts)
	if err != nil {
		return nil, err
	}

	return heatTrace(eigs, e.grid, g.NodeCount()), nil
}

// Fit computes one signature per graph, in input order, across a bounded
// worker pool. Results are written by index, so completion order never
// leaks into row order. Every failing graph is reported via a GraphError
// carrying its index, all failures joined into one error; on any failure
// the previously fitted state is left untouched (atomic replacement).
func (e *Estimator) Fit(graphs []*core.Graph) error {
	rows := make([][]float64, len(graphs))
	fails := make([]error, len(graphs))

	var pool errgroup.Group
	pool.SetLimit(e.cfg.workers)
	for i, g := range graphs {
		i, g := i, g
		pool.Go(func() error {
			row, err := e.Signature(g)
			if err != nil {
				fails[i] = &GraphError{Index: i, Err: err}

				return nil // keep sibling pipelines running
			}
			rows[i] = row

			return nil
		})
	}
	_ = pool.Wait() // tasks never return errors; failures live in fails

	if err := errors.Join(fails...); err != nil {
		return err
	}

	e.mu.Lock()
	e.rowCache = rows
	e.fitted = true
	e.mu.Unlock()

	return nil
}

// Embedding returns the fitted matrix: one row per graph passed to the
// last successful Fit, each of length scaleSteps, in input order. The
// returned matrix is a copy. Errors: ErrNotFitted.
func (e *Estimator) Embedding() ([][]float64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if !e.fitted {
		return nil, ErrNotFitted
	}

	out := make([][]float64, len(e.rowCache))
	for i, row := range e.rowCache {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}

	return out, nil
}
