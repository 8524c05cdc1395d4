// SPDX-License-Identifier: MIT

package pgraph

// BoolMatrix is a symmetric N×N boolean adjacency matrix with a zero
// diagonal. It backs cifrecord's bond set before edgebuild turns bonded
// pairs into periodic edges.
type BoolMatrix struct {
	n    int
	data []bool
}

// NewBoolMatrix returns an n×n matrix with no bonds set.
func NewBoolMatrix(n int) *BoolMatrix {
	return &BoolMatrix{n: n, data: make([]bool, n*n)}
}

// N returns the matrix dimension.
func (b *BoolMatrix) N() int { return b.n }

// Any reports whether any bond is set.
func (b *BoolMatrix) Any() bool {
	for _, v := range b.data {
		if v {
			return true
		}
	}

	return false
}

// Get reports whether i and j are bonded. i == j always returns false.
func (b *BoolMatrix) Get(i, j int) bool {
	if i == j {
		return false
	}

	return b.data[i*b.n+j]
}

// Set marks (or clears) the bond between i and j symmetrically. Setting
// i == j is a no-op: the diagonal stays zero.
func (b *BoolMatrix) Set(i, j int, v bool) {
	if i == j {
		return
	}
	b.data[i*b.n+j] = v
	b.data[j*b.n+i] = v
}

// Neighbors returns the indices bonded to i, in ascending order.
func (b *BoolMatrix) Neighbors(i int) []int {
	var out []int
	for j := 0; j < b.n; j++ {
		if b.Get(i, j) {
			out = append(out, j)
		}
	}

	return out
}

// Submatrix extracts the bond relations among the given indices, in the
// order given, into a fresh matrix of size len(idxs).
func (b *BoolMatrix) Submatrix(idxs []int) *BoolMatrix {
	out := NewBoolMatrix(len(idxs))
	for i, oi := range idxs {
		for j, oj := range idxs {
			if i != j && b.Get(oi, oj) {
				out.Set(i, j, true)
			}
		}
	}

	return out
}

// Resize returns a copy of b enlarged to n×n (n >= b.N()), preserving all
// existing bonds.
func (b *BoolMatrix) Resize(n int) *BoolMatrix {
	out := NewBoolMatrix(n)
	for i := 0; i < b.n; i++ {
		for j := 0; j < b.n; j++ {
			if b.data[i*b.n+j] {
				out.Set(i, j, true)
			}
		}
	}

	return out
}
