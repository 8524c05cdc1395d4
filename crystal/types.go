// SPDX-License-Identifier: MIT

package crystal

import (
	"sort"

	"github.com/nets-lab/periodicnet/cell"
	"github.com/nets-lab/periodicnet/pgraph"
	"github.com/nets-lab/periodicnet/rational"
)

// NoClusters tags a Crystal that carries no clustering information.
type NoClusters struct{}

// Member is one atom's membership in a cluster: its vertex index and its
// ℤ³ offset relative to the cluster's reference vertex (the member with
// the smallest index).
type Member struct {
	Vertex int
	Offset [3]int
}

// Clusters is a partition of atoms into groups (SBUs): for every
// vertex i, Attribution[i] names the vertex index chosen as its
// cluster's reference, and Offset[i] is i's ℤ³ offset relative to that
// reference. A cluster is "empty" (trivial) iff Attribution[i] == i for
// every i — every vertex is its own cluster with zero offset.
type Clusters struct {
	Attribution []int
	Offset      [][3]int
}

// IsEmpty reports whether every vertex is its own trivial cluster.
func (c Clusters) IsEmpty() bool {
	for i, a := range c.Attribution {
		if a != i {
			return false
		}
	}

	return true
}

// Groups derives the per-cluster (vertex, offset) view, keyed by
// reference vertex, in ascending reference order.
func (c Clusters) Groups() [][]Member {
	byRef := map[int][]Member{}
	for v, ref := range c.Attribution {
		byRef[ref] = append(byRef[ref], Member{Vertex: v, Offset: c.Offset[v]})
	}

	refs := make([]int, 0, len(byRef))
	for ref := range byRef {
		refs = append(refs, ref)
	}
	sort.Ints(refs)

	groups := make([][]Member, len(refs))
	for i, ref := range refs {
		groups[i] = byRef[ref]
	}

	return groups
}

// NonTrivialCount returns the number of clusters with more than one
// member — the count MOFClustering's "collapses to ≤1 cluster" check
// operates on, since singleton clusters carry no SBU information.
func (c Clusters) NonTrivialCount() int {
	n := 0
	for _, g := range c.Groups() {
		if len(g) > 1 {
			n++
		}
	}

	return n
}

// Crystal is a tagged variant over the clustering payload C: NoClusters
// when no partition is attached, Clusters when one is. Cell, Types, and
// Graph describe the periodic structure; Pos is the raw fractional
// placement available before the equilibrium solve runs (used by sbu's
// distance-based heuristics, not consumed by netsolve itself).
type Crystal[C any] struct {
	Cell  *cell.Cell
	Types []string
	Pos   *rational.Mat3xN
	Graph *pgraph.PeriodicGraph3D
	Tag   C
}
