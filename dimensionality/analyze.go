// SPDX-License-Identifier: MIT

package dimensionality

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/nets-lab/periodicnet/pgraph"
	"github.com/nets-lab/periodicnet/rational"
)

// incidence is one endpoint's view of an edge, referencing the edge's
// index in the graph's Edges slice so a spanning-tree pass can mark which
// edges it consumed.
type incidence struct {
	edgeIdx int
	other   int
	off     [3]int
}

// Analyze implements the dimensionality(graph) collaborator: it groups
// g's vertices into connected components (via gonum's topo package,
// ignoring self-loops which never affect connectivity) and computes each
// component's periodicity rank as the rank of the ℤ-module spanned by its
// independent cycle offsets (a spanning tree assigns each vertex a
// cumulative lattice potential; every edge outside the tree, including
// self-loops, contributes one cycle vector). Each component's vertex list
// is in ascending index order.
func Analyze(g *pgraph.PeriodicGraph3D) map[int][][]int {
	adj := buildAdjacency(g)

	ug := simple.NewUndirectedGraph()
	for v := 0; v < g.N; v++ {
		ug.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges {
		if e.IsSelfLoop() {
			continue
		}
		ug.SetEdge(simple.Edge{F: simple.Node(e.U), T: simple.Node(e.V)})
	}

	out := map[int][][]int{}
	for _, comp := range topo.ConnectedComponents(ug) {
		verts := make([]int, len(comp))
		for i, n := range comp {
			verts[i] = int(n.ID())
		}
		sort.Ints(verts)
		rank := componentRank(verts, adj)
		out[rank] = append(out[rank], verts)
	}

	return out
}

func buildAdjacency(g *pgraph.PeriodicGraph3D) [][]incidence {
	adj := make([][]incidence, g.N)
	for i, e := range g.Edges {
		if e.IsSelfLoop() {
			adj[e.U] = append(adj[e.U], incidence{edgeIdx: i, other: e.U, off: e.O})
			continue
		}
		adj[e.U] = append(adj[e.U], incidence{edgeIdx: i, other: e.V, off: e.O})
		adj[e.V] = append(adj[e.V], incidence{edgeIdx: i, other: e.U, off: negOffset(e.O)})
	}

	return adj
}

func componentRank(verts []int, adj [][]incidence) int {
	inComponent := make(map[int]bool, len(verts))
	for _, v := range verts {
		inComponent[v] = true
	}

	potential := make(map[int][3]int, len(verts))
	visited := make(map[int]bool, len(verts))
	treeEdge := make(map[int]bool)

	root := verts[0]
	potential[root] = [3]int{0, 0, 0}
	visited[root] = true
	queue := []int{root}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		for _, inc := range adj[v] {
			if inc.other == v {
				continue // self-loop: never a tree edge
			}
			if treeEdge[inc.edgeIdx] || visited[inc.other] {
				continue
			}
			treeEdge[inc.edgeIdx] = true
			potential[inc.other] = addOffset(potential[v], inc.off)
			visited[inc.other] = true
			queue = append(queue, inc.other)
		}
	}

	var cycles []rational.Rat3
	seen := make(map[int]bool)
	for _, v := range verts {
		for _, inc := range adj[v] {
			if treeEdge[inc.edgeIdx] || seen[inc.edgeIdx] {
				continue
			}
			seen[inc.edgeIdx] = true
			pv := potential[v]
			po := addOffset(pv, inc.off)
			pu := potential[inc.other]
			cycles = append(cycles, rational.NewRat3(
				rational.NewInt(int64(po[0]-pu[0])),
				rational.NewInt(int64(po[1]-pu[1])),
				rational.NewInt(int64(po[2]-pu[2])),
			))
		}
	}

	return moduleRank(cycles)
}

func addOffset(a, b [3]int) [3]int {
	return [3]int{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func negOffset(o [3]int) [3]int {
	return [3]int{-o[0], -o[1], -o[2]}
}
