// SPDX-License-Identifier: MIT

// Package netlsd computes NetLSD heat-trace signatures ("NetLSD: Hearing
// the Shape of a Graph", KDD '18): for each graph, the heat kernel trace
// of its normalized Laplacian
//
//	h(t) = Σ_i exp(-t·λ_i) / n
//
// sampled over scale_steps diffusion times log-spaced between 10^scale_min
// and 10^scale_max. The signature length depends only on the configuration,
// never on the graph, and relabeling a graph's nodes never changes it.
//
// ⚙️ Usage:
//
//	est, err := netlsd.New(
//	    netlsd.WithScaleRange(-2, 2),
//	    netlsd.WithScaleSteps(250),
//	    netlsd.WithApproximations(50),
//	)
//	if err != nil { ... }
//	if err = est.Fit(graphs); err != nil { ... } // per-graph GraphError(s)
//	rows, err := est.Embedding()                 // len(graphs) × 250
//
// Fit runs every graph's pipeline (Laplacian → spectrum → trace) in
// parallel, writes results by input index, and replaces the fitted state
// atomically — a batch with failures reports every failing graph's index
// and leaves the previous embedding intact. Embedding before any
// successful Fit returns ErrNotFitted.
//
// Graphs larger than 2·approximations+2 nodes switch to the banded
// spectrum estimate (see heatprint/spectrum); smaller ones use the exact
// dense path, which follows the reference implementation in returning n-1
// eigenvalues while the trace still divides by n.
package netlsd
