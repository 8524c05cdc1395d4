// SPDX-License-Identifier: MIT

package netcanon

import (
	"github.com/nets-lab/periodicnet/cell"
	"github.com/nets-lab/periodicnet/pgraph"
	"github.com/nets-lab/periodicnet/rational"
)

// CrystalNet is the canonical output of Canonicalize: a cell with its
// equivalents cleared, one element symbol and one folded position per
// vertex, and a periodic graph whose offsets have been adjusted to
// match the folded positions.
//
// Invariant: every position lies in [0,1)³ componentwise; vertices are
// sorted in ascending position order; for every edge (u,v,o), o is the
// exact ℤ³ offset between the folded positions, i.e. pos_v + o − pos_u
// equals the raw (unfolded) placement difference the solver produced.
type CrystalNet struct {
	Cell  *cell.Cell
	Types []string
	Pos   *rational.Mat3xN
	Graph *pgraph.PeriodicGraph3D
}

// N returns the vertex count.
func (c *CrystalNet) N() int {
	return c.Pos.N()
}
