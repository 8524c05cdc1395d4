// Package pgraph implements the periodic graph model: vertices with no
// embedded position, edges carrying a ℤ³ lattice offset, and the
// alternating degree-≤1 / degree-2 reduction (TrimTopology).
package pgraph
