// Package periodicnet turns a cleaned-up crystallographic record into a
// canonical periodic net: a labeled, ℤ³-periodic graph placed at its
// topological equilibrium and reduced to a single, orientation- and
// labeling-independent representative.
//
// 🚀 What is periodicnet?
//
//	An exact-arithmetic pipeline that brings together:
//		• Cell geometry: fractional/Cartesian conversion under triclinic cells
//		• Symmetry expansion: apply a space group's equivalent positions
//		• Bond-to-edge resolution: minimum-image offsets, tie-aware
//		• Periodic graphs: ℤ³-labeled edges, degree-1/2 topology reduction
//		• Dimensionality analysis: connected components ranked 0..3
//		• Equilibrium solve: exact-ℚ Bareiss elimination on the net Laplacian
//		• Canonicalization: fold, sort, and relabel to a unique representative
//		• Clustering: secondary building unit contraction ahead of the solve
//
// ✨ Why choose periodicnet?
//
//   - Exact – rational arithmetic from the equilibrium solve onward, no
//     accumulated floating-point drift in the part that defines identity
//   - Deterministic – every tie-breaking and ordering rule is total
//   - Pure Go – gonum for graph/component primitives, math/big for exactness
//   - Composable – each pipeline stage is a small, independently testable
//     package; pipeline.Build wires them for the common case
//
// Under the hood, everything is organized under one subpackage per stage:
//
//	cell/           — unit cell geometry, fractional/Cartesian conversion
//	symmetry/       — space-group equivalent positions
//	cifrecord/      — record cleanup: dedup, collision pruning, symmetry expansion
//	edgebuild/      — bonds → periodic edges, minimum-image resolution
//	pgraph/         — periodic graphs, adjacency, topology reduction
//	dimensionality/ — connected components ranked by periodicity
//	netsolve/       — anchored equilibrium solve over the net Laplacian
//	netcanon/       — fold/sort/relabel canonicalization
//	crystal/        — the tagged crystal/clustering data model
//	sbu/            — secondary building unit detection
//	cluster/        — clustering-mode dispatch ahead of the solve
//	pipeline/       — end-to-end orchestration
//
// Quick shape:
//
//	rec, mode := &cifrecord.Record{...}, cluster.EachVertexClustering
//	net, err := pipeline.Build(rec, mode)
//
// See pipeline's tests for a worked tied-neighborhood net.
package periodicnet
