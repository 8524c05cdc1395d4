// SPDX-License-Identifier: MIT

package netcanon

import (
	"sort"

	"github.com/nets-lab/periodicnet/cell"
	"github.com/nets-lab/periodicnet/pgraph"
	"github.com/nets-lab/periodicnet/rational"
)

// Canonicalize runs the four canonicalization steps: split each column
// of x into an integer lattice offset and a folded [0,1)³ position, sort
// vertices by folded position, relabel the graph to match, and adjust
// every edge's offset for the per-vertex shift. The input cell's
// equivalents are dropped from the result: a CrystalNet is expressed in
// its asymmetric unit directly.
func Canonicalize(cellIn *cell.Cell, types []string, g *pgraph.PeriodicGraph3D, x *rational.Mat3xN) (*CrystalNet, error) {
	n := g.N
	if n != x.N() || n != len(types) {
		return nil, ErrDimensionMismatch
	}

	offsets := make([][3]int, n)
	folded := make([]rational.Rat3, n)
	for i := 0; i < n; i++ {
		offsets[i] = rational.FloorInt3(x.Col(i))
		folded[i] = rational.BackToUnit3(x.Col(i))
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return folded[order[a]].Less(folded[order[b]])
	})

	newIndex := make([]int, n)
	newPos := rational.NewMat3xN(n)
	newTypes := make([]string, n)
	for newI, oldI := range order {
		newIndex[oldI] = newI
		newPos.SetCol(newI, folded[oldI])
		newTypes[newI] = types[oldI]
	}

	outGraph := pgraph.NewPeriodicGraph3D(n)
	for _, e := range g.Edges {
		o := addOffset(e.O, subOffset(offsets[e.V], offsets[e.U]))
		u, v := newIndex[e.U], newIndex[e.V]
		if u > v {
			u, v, o = v, u, negOffset(o)
		}
		outGraph.AddEdge(u, v, o)
	}

	return &CrystalNet{
		Cell:  cellIn.WithoutEquivalents(),
		Types: newTypes,
		Pos:   newPos,
		Graph: outGraph,
	}, nil
}

func addOffset(a, b [3]int) [3]int {
	return [3]int{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func subOffset(a, b [3]int) [3]int {
	return [3]int{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func negOffset(o [3]int) [3]int {
	return [3]int{-o[0], -o[1], -o[2]}
}
