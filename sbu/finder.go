// SPDX-License-Identifier: MIT

package sbu

import (
	"math/big"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/nets-lab/periodicnet/cell"
	"github.com/nets-lab/periodicnet/crystal"
	"github.com/nets-lab/periodicnet/rational"
)

// Finder is the SBU-detection collaborator, plugged in as an external
// heuristic: given a crystal with no prior clustering, it proposes one.
type Finder interface {
	FindSBUs(cr crystal.Crystal[crystal.NoClusters]) (crystal.Clusters, error)
}

// DefaultFinder is a reference Finder: it contracts every bond shorter
// than CutoffAngstrom into a connected component and reports each
// component of size > 1 as a candidate SBU. It is deliberately naive
// (real SBU detection depends on chemistry-specific metal/ligand
// classification, which this module does not attempt) but exercises the
// same Finder contract a production heuristic would.
type DefaultFinder struct {
	CutoffAngstrom float64
}

// NewDefaultFinder returns a DefaultFinder with the given distance cutoff.
func NewDefaultFinder(cutoffAngstrom float64) *DefaultFinder {
	return &DefaultFinder{CutoffAngstrom: cutoffAngstrom}
}

// FindSBUs implements Finder.
func (f *DefaultFinder) FindSBUs(cr crystal.Crystal[crystal.NoClusters]) (crystal.Clusters, error) {
	n := cr.Graph.N
	cutoff := new(big.Float).SetPrec(cell.DefaultPrecision).SetFloat64(f.CutoffAngstrom)

	g := simple.NewUndirectedGraph()
	for v := 0; v < n; v++ {
		g.AddNode(simple.Node(v))
	}

	type shortEdge struct {
		u, v int
		o    [3]int
	}
	var kept []shortEdge
	for _, e := range cr.Graph.Edges {
		if e.IsSelfLoop() {
			continue
		}
		d := bondDistance(cr.Cell, cr.Pos.Col(e.U), cr.Pos.Col(e.V), e.O)
		if d.Cmp(cutoff) <= 0 {
			g.SetEdge(simple.Edge{F: simple.Node(e.U), T: simple.Node(e.V)})
			kept = append(kept, shortEdge{u: e.U, v: e.V, o: e.O})
		}
	}

	adj := make(map[int][]shortEdge, n)
	for _, e := range kept {
		adj[e.u] = append(adj[e.u], e)
		adj[e.v] = append(adj[e.v], shortEdge{u: e.v, v: e.u, o: negOffset(e.o)})
	}

	attribution := make([]int, n)
	offset := make([][3]int, n)
	for _, comp := range topo.ConnectedComponents(g) {
		verts := make([]int, len(comp))
		for i, node := range comp {
			verts[i] = int(node.ID())
		}
		ref := min3(verts)

		potential := map[int][3]int{ref: {0, 0, 0}}
		visited := map[int]bool{ref: true}
		queue := []int{ref}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, e := range adj[v] {
				if visited[e.v] {
					continue
				}
				visited[e.v] = true
				potential[e.v] = addOffset(potential[v], e.o)
				queue = append(queue, e.v)
			}
		}

		for _, v := range verts {
			attribution[v] = ref
			offset[v] = potential[v]
		}
	}

	return crystal.Clusters{Attribution: attribution, Offset: offset}, nil
}

// bondDistance is the Cartesian distance implied by an already-chosen
// bond offset (not folded to a minimum image: edgebuild already picked
// the offset that minimizes it).
func bondDistance(c *cell.Cell, pu, pv rational.Rat3, o [3]int) *big.Float {
	prec := uint(cell.DefaultPrecision)
	var diff [3]*big.Float
	for i := 0; i < 3; i++ {
		du := new(big.Float).SetPrec(prec).SetRat(pu[i].Big())
		dv := new(big.Float).SetPrec(prec).SetRat(pv[i].Big())
		oi := new(big.Float).SetPrec(prec).SetInt64(int64(o[i]))
		diff[i] = new(big.Float).SetPrec(prec).Add(dv, oi)
		diff[i].Sub(diff[i], du)
	}

	var cart [3]*big.Float
	for i := 0; i < 3; i++ {
		sum := new(big.Float).SetPrec(prec)
		for j := 0; j < 3; j++ {
			term := new(big.Float).SetPrec(prec).Mul(c.Matrix[i][j], diff[j])
			sum.Add(sum, term)
		}
		cart[i] = sum
	}

	return cell.Norm3(prec, cart)
}

func addOffset(a, b [3]int) [3]int {
	return [3]int{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func negOffset(o [3]int) [3]int {
	return [3]int{-o[0], -o[1], -o[2]}
}

func min3(xs []int) int {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}

	return m
}
