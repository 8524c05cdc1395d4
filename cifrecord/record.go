// SPDX-License-Identifier: MIT

package cifrecord

import (
	"github.com/nets-lab/periodicnet/cell"
	"github.com/nets-lab/periodicnet/pgraph"
)

// Record is the input the core receives from the CIF collaborator:
// metadata, a cell, an element palette, one palette index per atom, a
// fractional position for each atom, and a symmetric bond matrix.
type Record struct {
	Meta    map[string]any
	Cell    *cell.Cell
	Palette []string
	Types   []int
	Pos     *FloatMat3xN
	Bonds   *pgraph.BoolMatrix
}

// NewRecord builds a Record from its component fields without copying
// them; callers that need isolation should Clone the result.
func NewRecord(meta map[string]any, c *cell.Cell, palette []string, types []int, pos *FloatMat3xN, bonds *pgraph.BoolMatrix) *Record {
	return &Record{Meta: meta, Cell: c, Palette: palette, Types: types, Pos: pos, Bonds: bonds}
}

// N returns the atom count.
func (r *Record) N() int { return len(r.Types) }

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	meta := make(map[string]any, len(r.Meta))
	for k, v := range r.Meta {
		meta[k] = v
	}
	palette := append([]string(nil), r.Palette...)
	types := append([]int(nil), r.Types...)

	return &Record{
		Meta:    meta,
		Cell:    r.Cell,
		Palette: palette,
		Types:   types,
		Pos:     r.Pos.Clone(),
		Bonds:   r.Bonds.Submatrix(identityPerm(r.N())),
	}
}

func identityPerm(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}

// withSelection returns a new Record restricted to the given atom
// indices, in the order given, without touching the palette (KeepAtoms,
// the only transform that compacts the palette, does so itself after
// the selection).
func (r *Record) withSelection(idxs []int) *Record {
	types := make([]int, len(idxs))
	for i, oi := range idxs {
		types[i] = r.Types[oi]
	}
	meta := make(map[string]any, len(r.Meta))
	for k, v := range r.Meta {
		meta[k] = v
	}

	return &Record{
		Meta:    meta,
		Cell:    r.Cell,
		Palette: append([]string(nil), r.Palette...),
		Types:   types,
		Pos:     r.Pos.Select(idxs),
		Bonds:   r.Bonds.Submatrix(idxs),
	}
}
