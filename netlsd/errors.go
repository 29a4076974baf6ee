// SPDX-License-Identifier: MIT
// Package netlsd: sentinel error set and the per-graph failure wrapper.

package netlsd

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFitted indicates Embedding was called before a successful Fit.
	ErrNotFitted = errors.New("netlsd: model is not fitted")

	// ErrBadScaleSteps indicates a non-positive scale_steps configuration.
	ErrBadScaleSteps = errors.New("netlsd: scale steps must be positive")

	// ErrBadScaleRange indicates scale_min > scale_max or a non-finite
	// bound. Equal bounds are permitted and yield a constant grid.
	ErrBadScaleRange = errors.New("netlsd: invalid scale range")

	// ErrBadApproximations indicates a non-positive band size.
	ErrBadApproximations = errors.New("netlsd: approximations must be positive")

	// ErrNilGraph indicates a nil graph inside a Fit batch.
	ErrNilGraph = errors.New("netlsd: graph is nil")
)

// GraphError attributes a pipeline failure to one input graph of a batch.
// It unwraps to the underlying cause, so errors.Is sees through it.
type GraphError struct {
	Index int
	Err   error
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	return fmt.Sprintf("netlsd: graph %d: %v", e.Index, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *GraphError) Unwrap() error { return e.Err }
