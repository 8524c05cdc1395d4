// SPDX-License-Identifier: MIT

// Package pipeline wires the data-flow end to end: a cifrecord.Record in,
// a cluster.CrystalNet out. It runs the cifrecord cleanup and symmetry
// expansion, builds and reduces the periodic graph, applies
// dimensionality filtering, then hands the result to cluster.Build to
// drive the equilibrium solve and canonicalization under a chosen
// clustering mode.
package pipeline
