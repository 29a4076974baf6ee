// SPDX-License-Identifier: MIT

// Package matrix provides the sparse symmetric storage used by the spectral
// pipeline and the normalized-Laplacian adapter from heatprint/core graphs.
//
// Storage:
//
//	SymCSR — compressed sparse row storage of a symmetric matrix with both
//	triangles materialized, so MulVec is a single forward CSR sweep. Column
//	indices within each row are sorted ascending, making construction
//	deterministic and At an O(log nnz(row)) lookup.
//
// Adapter:
//
//	NormalizedLaplacian(g) builds L = I - D^{-1/2} A D^{-1/2} on a working
//	view of g: self-loops dropped, parallel edges collapsed, the input graph
//	never mutated. Diagonal entries are 1 for nodes of positive degree and 0
//	for isolated nodes; every eigenvalue of L lies in [0, 2].
//
// Error policy: sentinel errors with the "matrix: " prefix, matched via
// errors.Is; call sites attach context with %w.
package matrix
