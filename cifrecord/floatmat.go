// SPDX-License-Identifier: MIT

package cifrecord

import "math/big"

// Float3 is a triple of arbitrary-precision floats, a fractional or
// Cartesian coordinate. It mirrors rational.Rat3's shape one precision
// tier down: cleanup and edge-building work in big.Float, not exact ℚ —
// the equilibrium solve is where the pipeline switches to exact
// arithmetic.
type Float3 [3]*big.Float

func newFloat3(prec uint) Float3 {
	return Float3{
		new(big.Float).SetPrec(prec),
		new(big.Float).SetPrec(prec),
		new(big.Float).SetPrec(prec),
	}
}

// Sub returns f - g componentwise.
func (f Float3) Sub(g Float3) Float3 {
	prec := f[0].Prec()
	out := newFloat3(prec)
	for i := 0; i < 3; i++ {
		out[i].Sub(f[i], g[i])
	}

	return out
}

// Clone returns a deep copy of f.
func (f Float3) Clone() Float3 {
	prec := f[0].Prec()
	out := newFloat3(prec)
	for i := 0; i < 3; i++ {
		out[i].Copy(f[i])
	}

	return out
}

// FloatMat3xN is a 3×N matrix of Float3 columns: N fractional or
// Cartesian positions. Grounded on rational.Mat3xN's column-slice shape.
type FloatMat3xN struct {
	cols []Float3
}

// NewFloatMat3xN returns an n-column matrix of zeroed Float3s at prec bits.
func NewFloatMat3xN(n int, prec uint) *FloatMat3xN {
	cols := make([]Float3, n)
	for i := range cols {
		cols[i] = newFloat3(prec)
	}

	return &FloatMat3xN{cols: cols}
}

// NewFloatMat3xNFromCols wraps the given columns directly (no copy).
func NewFloatMat3xNFromCols(cols []Float3) *FloatMat3xN {
	return &FloatMat3xN{cols: cols}
}

// N returns the column count.
func (m *FloatMat3xN) N() int { return len(m.cols) }

// Col returns column i.
func (m *FloatMat3xN) Col(i int) Float3 { return m.cols[i] }

// SetCol replaces column i.
func (m *FloatMat3xN) SetCol(i int, v Float3) { m.cols[i] = v }

// Cols returns the underlying column slice.
func (m *FloatMat3xN) Cols() []Float3 { return m.cols }

// Clone returns a deep copy.
func (m *FloatMat3xN) Clone() *FloatMat3xN {
	out := make([]Float3, len(m.cols))
	for i, c := range m.cols {
		out[i] = c.Clone()
	}

	return &FloatMat3xN{cols: out}
}

// Select returns a new matrix containing only the given column indices,
// in the order given.
func (m *FloatMat3xN) Select(idxs []int) *FloatMat3xN {
	out := make([]Float3, len(idxs))
	for i, oi := range idxs {
		out[i] = m.cols[oi].Clone()
	}

	return &FloatMat3xN{cols: out}
}
