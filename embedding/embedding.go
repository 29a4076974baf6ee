// SPDX-License-Identifier: MIT

// Package embedding declares the contract shared by whole-graph embedding
// models: fit a batch of graphs, then read back one feature row per input
// graph. Implementations share only this shape — no behavior.
package embedding

import "github.com/katalvlaran/heatprint/core"

// Embedder is a whole-graph embedding model.
//
// Fit computes and stores one feature vector per input graph; calling it
// again discards the previous state entirely. Embedding returns the stored
// matrix — row i belongs to graph i of the last Fit batch — and fails when
// no successful Fit has happened yet.
type Embedder interface {
	Fit(graphs []*core.Graph) error
	Embedding() ([][]float64, error)
}
