// SPDX-License-Identifier: MIT

package cluster

import (
	"github.com/nets-lab/periodicnet/crystal"
	"github.com/nets-lab/periodicnet/pgraph"
)

// coalesce merges a Crystal's atoms into one super-vertex per cluster
// reference, adjusting every surviving edge's offset the same way
// netcanon's canonicalizer adjusts vertex offsets — by the per-vertex
// offset shift stored in Clusters. An edge that contracts to a
// same-cluster, zero-offset self-loop carries no topological
// information and is dropped, matching the self-loop invariant
// enforced elsewhere (pgraph, edgebuild).
func coalesce(cr crystal.Crystal[crystal.Clusters]) crystal.Crystal[crystal.NoClusters] {
	groups := cr.Tag.Groups()
	m := len(groups)

	newIndex := make(map[int]int, m)
	types := make([]string, m)
	for gi, members := range groups {
		ref := cr.Tag.Attribution[members[0].Vertex]
		newIndex[ref] = gi
		types[gi] = cr.Types[ref]
	}

	out := crystal.Crystal[crystal.NoClusters]{
		Cell:  cr.Cell,
		Types: types,
		Graph: pgraph.NewPeriodicGraph3D(m),
	}

	for _, e := range cr.Graph.Edges {
		cu, cv := cr.Tag.Attribution[e.U], cr.Tag.Attribution[e.V]
		gu, gv := newIndex[cu], newIndex[cv]
		o := addOffset(e.O, subOffset(cr.Tag.Offset[e.V], cr.Tag.Offset[e.U]))

		if gu == gv && o == [3]int{0, 0, 0} {
			continue
		}
		if gu > gv {
			gu, gv, o = gv, gu, negOffset(o)
		}
		out.Graph.AddEdge(gu, gv, o)
	}

	return out
}

func addOffset(a, b [3]int) [3]int { return [3]int{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }
func subOffset(a, b [3]int) [3]int { return [3]int{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }
func negOffset(o [3]int) [3]int    { return [3]int{-o[0], -o[1], -o[2]} }
