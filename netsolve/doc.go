// Package netsolve implements the equilibrium solver: assembling the
// Laplacian-like system from a periodic graph, solving it exactly over ℚ
// by anchoring one vertex at the origin, and selecting the narrowest
// integer width that expresses the result.
package netsolve
