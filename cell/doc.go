// Package cell implements triclinic unit-cell geometry: the conversion
// between (a, b, c, α, β, γ) and the upper-triangular Cartesian basis
// matrix, and back.
//
// Arithmetic here is arbitrary-precision binary floating point
// (math/big.Float) rather than float64 or an exact rational, keeping
// this rounding orthogonal to the exact-rational side of the pipeline
// (rational, netsolve). math/big provides no transcendental functions,
// so bigmath.go supplies small hand-rolled cos/sin/sqrt/acos kernels
// over big.Float, in the same iterative-refinement spirit as the
// teacher's matrix/ops numeric kernels.
package cell
