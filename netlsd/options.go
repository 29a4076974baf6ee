// SPDX-License-Identifier: MIT
// Package: heatprint/netlsd
//
// options.go — functional configuration with documented defaults.
//
// All knobs are validated once, inside New; an Estimator that exists is
// correctly configured and its configuration never changes mid-fit.

package netlsd

import (
	"runtime"

	"github.com/katalvlaran/heatprint/spectrum"
)

// DEFAULTS — single source of truth for the reference configuration.
const (
	// DefaultScaleMin is the log10 lower bound of the time-scale grid.
	DefaultScaleMin = -2.0

	// DefaultScaleMax is the log10 upper bound of the time-scale grid.
	DefaultScaleMax = 2.0

	// DefaultScaleSteps is the number of grid points — the signature length.
	DefaultScaleSteps = 250

	// DefaultApproximations is the band size k of the approximate
	// eigenvalue path; graphs with more than 2k+2 nodes use it.
	DefaultApproximations = 50
)

// Option mutates the configuration under construction. Applied in order;
// validation happens once, after the last option.
type Option func(*config)

// config is the resolved configuration; unexported to keep it immutable
// from the outside.
type config struct {
	scaleMin       float64
	scaleMax       float64
	scaleSteps     int
	approximations int
	workers        int
	spectrumOpts   spectrum.Options
}

func defaultConfig() config {
	return config{
		scaleMin:       DefaultScaleMin,
		scaleMax:       DefaultScaleMax,
		scaleSteps:     DefaultScaleSteps,
		approximations: DefaultApproximations,
		workers:        runtime.GOMAXPROCS(0),
		spectrumOpts:   spectrum.DefaultOptions(),
	}
}

// WithScaleRange sets the log10 bounds of the time-scale grid.
// min == max is allowed (constant grid); min > max fails validation.
func WithScaleRange(min, max float64) Option {
	return func(c *config) { c.scaleMin, c.scaleMax = min, max }
}

// WithScaleSteps sets the number of grid points, i.e. the signature length.
func WithScaleSteps(steps int) Option {
	return func(c *config) { c.scaleSteps = steps }
}

// WithApproximations sets the band size k of the approximate eigenvalue
// path; graphs with at most 2k+2 nodes use the exact dense path instead.
func WithApproximations(k int) Option {
	return func(c *config) { c.approximations = k }
}

// WithWorkers caps the number of concurrent per-graph pipelines in Fit.
// Non-positive values fall back to GOMAXPROCS.
func WithWorkers(workers int) Option {
	return func(c *config) { c.workers = workers }
}

// WithSpectrum overrides the iterative eigensolver tuning; zero fields
// keep their spectrum defaults.
func WithSpectrum(opts spectrum.Options) Option {
	return func(c *config) { c.spectrumOpts = opts }
}
