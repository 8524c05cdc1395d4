// Package rational provides exact ℚ arithmetic for the periodic-net core:
// a thin wrapper over math/big.Rat, a 3×3 rational-matrix singularity test,
// a rank-3 test for a set of 3-vectors, and the integer-width ladder used to
// pick the narrowest lossless representation for a solved placement.
//
// Nothing in this package is approximate. Every value is an exact rational;
// the only thing that varies across the "width ladder" is how a finished
// value is later reported (see Width and SelectWidth), never how it was
// computed.
package rational
