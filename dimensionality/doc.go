// Package dimensionality implements the dimensionality(graph) collaborator:
// for each connected component of a periodic graph, the rank (0..3) of
// the ℤ-module spanned by its independent cycle offsets, used by the
// pipeline to keep only genuinely 3-periodic structure.
package dimensionality
