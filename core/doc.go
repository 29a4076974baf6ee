// SPDX-License-Identifier: MIT

// Package core defines the canonical Graph value consumed by the spectral
// pipeline: a set of nodes densely indexed 0..n-1 and an undirected edge
// multiset, with thread-safe mutation and copy-on-read accessors.
//
// Design:
//   - Nodes are plain integer indices; callers own the mapping from their
//     external identifiers to the canonical range.
//   - Edges are undirected and unweighted; self-loops may be recorded (they
//     are ignored by degree and Laplacian computations downstream).
//   - A Graph may be built incrementally via AddEdge and is safe for
//     concurrent use; accessors return copies, never internal storage.
//   - Relabel produces a new Graph under a node bijection — the tool behind
//     permutation-invariance guarantees and their tests.
//
// Errors follow the sentinel policy: package-level errors with a "core: "
// prefix, matched via errors.Is.
package core
