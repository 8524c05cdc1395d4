// SPDX-License-Identifier: MIT

package pgraph

// PeriodicEdge3D is an edge of a periodic graph: an unordered pair of
// vertex indices U, V and the ℤ³ lattice offset O such that the image
// of V connected by this edge sits at O relative to U. U == V is a
// self-loop and requires O != [0,0,0]: a self-loop with a zero offset
// would connect a vertex to itself within the same cell, which carries
// no topological information.
type PeriodicEdge3D struct {
	U, V int
	O    [3]int
}

// IsSelfLoop reports whether e connects a vertex to one of its own
// periodic images.
func (e PeriodicEdge3D) IsSelfLoop() bool {
	return e.U == e.V
}

// Reversed returns e traversed from V to U: the mirror offset, endpoints
// swapped.
func (e PeriodicEdge3D) Reversed() PeriodicEdge3D {
	return PeriodicEdge3D{U: e.V, V: e.U, O: negOffset(e.O)}
}

// PeriodicGraph3D is an undirected graph on N vertices (0..N-1) whose
// edges carry ℤ³ offsets. Multi-edges and self-loops are permitted;
// vertices are otherwise unlabeled here, labels live alongside in
// whatever structure produced the graph (cifrecord.Record, netcanon.CrystalNet).
type PeriodicGraph3D struct {
	N     int
	Edges []PeriodicEdge3D
}

// NewPeriodicGraph3D returns an edgeless graph on n vertices.
func NewPeriodicGraph3D(n int) *PeriodicGraph3D {
	return &PeriodicGraph3D{N: n}
}

// AddEdge appends an edge. It does not validate against the self-loop
// invariant; callers that build edges programmatically (edgebuild) are
// expected to skip zero-offset self-loops themselves.
func (g *PeriodicGraph3D) AddEdge(u, v int, o [3]int) {
	g.Edges = append(g.Edges, PeriodicEdge3D{U: u, V: v, O: o})
}

// neighbor is one endpoint of an edge as seen from the other endpoint:
// the neighboring vertex and the offset of its image relative to the
// vertex the neighbor list belongs to.
type neighbor struct {
	to int
	o  [3]int
}

// neighborsOf returns v's periodic neighbor descriptors, one per
// incidence: a self-loop contributes two (it counts twice toward
// degree), a normal edge contributes one to each endpoint.
func neighborsOf(v int, edges []PeriodicEdge3D) []neighbor {
	var out []neighbor
	for _, e := range edges {
		switch {
		case e.U == v && e.V == v:
			out = append(out, neighbor{to: v, o: e.O}, neighbor{to: v, o: negOffset(e.O)})
		case e.U == v:
			out = append(out, neighbor{to: e.V, o: e.O})
		case e.V == v:
			out = append(out, neighbor{to: e.U, o: negOffset(e.O)})
		}
	}

	return out
}

// Degree returns v's periodic degree: the number of incidences, with a
// self-loop counted twice.
func (g *PeriodicGraph3D) Degree(v int) int {
	return len(neighborsOf(v, g.Edges))
}

func negOffset(o [3]int) [3]int {
	return [3]int{-o[0], -o[1], -o[2]}
}

func subOffset(a, b [3]int) [3]int {
	return [3]int{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}
