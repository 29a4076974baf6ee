// Package heatprint computes compact, permutation-invariant spectral
// signatures of graphs — the heat kernel trace of the normalized Laplacian
// sampled over a logarithmic range of diffusion times (NetLSD).
//
// 🚀 What is heatprint?
//
//	A small, deterministic library that turns a graph into a fixed-length
//	numeric fingerprint and a batch of graphs into a feature matrix:
//		• core/      — canonical integer-indexed undirected graphs
//		• builder/   — deterministic graph constructors (Complete, Path, …)
//		• matrix/    — sparse symmetric storage + normalized Laplacian
//		• spectrum/  — exact & band-interpolated eigenvalue estimation
//		• netlsd/    — time-scale grid, heat trace, batch estimator
//		• embedding/ — the Fit/Embedding contract shared by embedding models
//
// ✨ Why choose heatprint?
//
//   - Size-invariant output — every graph maps to the same vector length
//   - Permutation-invariant — relabeling nodes never changes the signature
//   - Scales up — large graphs switch to a band + interpolation spectrum
//   - Deterministic — fixed seeds, stable iteration orders, no global state
//
// Quick start:
//
//	g, _ := builder.Complete(3)
//	est, _ := netlsd.New()
//	_ = est.Fit([]*core.Graph{g})
//	rows, _ := est.Embedding() // 1×250 matrix
//
// See netlsd/example_test.go for runnable examples.
package heatprint
