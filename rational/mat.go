// SPDX-License-Identifier: MIT

package rational

// Rat3 is an exact rational 3-vector, e.g. a column of a fractional
// position matrix or a lattice offset promoted to ℚ.
type Rat3 [3]*Rat

// NewRat3 builds a Rat3 from three rationals.
func NewRat3(x, y, z *Rat) Rat3 { return Rat3{x, y, z} }

// ZeroRat3 returns (0,0,0).
func ZeroRat3() Rat3 { return Rat3{Zero(), Zero(), Zero()} }

// Add returns the componentwise sum.
func (v Rat3) Add(o Rat3) Rat3 {
	return Rat3{v[0].Add(o[0]), v[1].Add(o[1]), v[2].Add(o[2])}
}

// Sub returns the componentwise difference.
func (v Rat3) Sub(o Rat3) Rat3 {
	return Rat3{v[0].Sub(o[0]), v[1].Sub(o[1]), v[2].Sub(o[2])}
}

// AddInt returns v shifted by an integer lattice offset o.
func (v Rat3) AddInt(o [3]int) Rat3 {
	return Rat3{
		v[0].Add(NewInt(int64(o[0]))),
		v[1].Add(NewInt(int64(o[1]))),
		v[2].Add(NewInt(int64(o[2]))),
	}
}

// SubInt returns v minus an integer lattice offset o.
func (v Rat3) SubInt(o [3]int) Rat3 {
	return Rat3{
		v[0].Sub(NewInt(int64(o[0]))),
		v[1].Sub(NewInt(int64(o[1]))),
		v[2].Sub(NewInt(int64(o[2]))),
	}
}

// Clone returns an independent deep copy.
func (v Rat3) Clone() Rat3 { return Rat3{v[0].Clone(), v[1].Clone(), v[2].Clone()} }

// FloorInt3 returns the componentwise floor of v as a plain integer triple.
func FloorInt3(v Rat3) [3]int {
	return [3]int{int(v[0].Floor().Int64()), int(v[1].Floor().Int64()), int(v[2].Floor().Int64())}
}

// BackToUnit3 folds each component of v into [0,1) via BackToUnit.
func BackToUnit3(v Rat3) Rat3 {
	return Rat3{BackToUnit(v[0]), BackToUnit(v[1]), BackToUnit(v[2])}
}

// Less lexicographically orders two Rat3 values, used by netcanon to
// sort vertices by position.
func (v Rat3) Less(o Rat3) bool {
	for i := 0; i < 3; i++ {
		c := v[i].Cmp(o[i])
		if c != 0 {
			return c < 0
		}
	}

	return false
}

// Mat3xN is a dense 3×N matrix of exact rationals, stored column-major
// (one Rat3 per vertex) as the 3×N position matrix passed between
// pipeline stages.
type Mat3xN struct {
	cols []Rat3
}

// NewMat3xN allocates an n-column matrix, every entry initialized to 0.
func NewMat3xN(n int) *Mat3xN {
	cols := make([]Rat3, n)
	for i := range cols {
		cols[i] = ZeroRat3()
	}

	return &Mat3xN{cols: cols}
}

// NewMat3xNFromCols wraps an existing column slice without copying.
func NewMat3xNFromCols(cols []Rat3) *Mat3xN { return &Mat3xN{cols: cols} }

// N returns the number of columns (vertices).
func (m *Mat3xN) N() int { return len(m.cols) }

// Col returns column i (0-indexed).
func (m *Mat3xN) Col(i int) Rat3 { return m.cols[i] }

// SetCol overwrites column i.
func (m *Mat3xN) SetCol(i int, v Rat3) { m.cols[i] = v }

// Cols returns the underlying column slice (not copied).
func (m *Mat3xN) Cols() []Rat3 { return m.cols }

// Clone returns a deep copy.
func (m *Mat3xN) Clone() *Mat3xN {
	cols := make([]Rat3, len(m.cols))
	for i, c := range m.cols {
		cols[i] = c.Clone()
	}

	return &Mat3xN{cols: cols}
}
