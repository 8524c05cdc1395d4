// SPDX-License-Identifier: MIT

package netsolve

import "github.com/nets-lab/periodicnet/pgraph"

// Assemble builds the equilibrium system: A[i,i] = -deg(i) counting only
// non-self-loop incidences, A[i,j] (i != j) the number of periodic edges
// between i and j, and Y[i,:] minus the sum of offsets of edges leaving i.
//
// Self-loops are omitted entirely: a self-loop (v,v,o) always contributes
// two mirrored neighbor descriptors (v,o) and (v,-o), whose diagonal and
// offset contributions cancel exactly, so they carry no information into
// the linear system.
func Assemble(g *pgraph.PeriodicGraph3D) ([][]int, [][3]int) {
	n := g.N
	a := make([][]int, n)
	for i := range a {
		a[i] = make([]int, n)
	}
	y := make([][3]int, n)

	for _, e := range g.Edges {
		if e.IsSelfLoop() {
			continue
		}
		a[e.U][e.U]--
		a[e.U][e.V]++
		a[e.V][e.V]--
		a[e.V][e.U]++

		for d := 0; d < 3; d++ {
			y[e.U][d] -= e.O[d]
			y[e.V][d] += e.O[d]
		}
	}

	return a, y
}
