// SPDX-License-Identifier: MIT

// Package builder provides deterministic constructors for canonical test
// and fixture topologies on heatprint/core graphs.
//
// Constructors:
//   - Complete(n) — K_n, every unordered pair once
//   - Path(n)     — P_n, chain 0-1-…-(n-1)
//   - Cycle(n)    — C_n, the ring on n nodes (n ≥ 3)
//   - Star(n)     — S_n, hub 0 joined to 1..n-1
//   - Edgeless(n) — n isolated nodes, no edges
//
// Every constructor emits edges in a fixed lexicographic order, so two
// calls with equal parameters yield structurally identical graphs.
package builder
