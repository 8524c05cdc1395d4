// SPDX-License-Identifier: MIT

package pgraph

// workingEdge is an edge under active mutation during TrimTopology: dead
// edges stay in the slice (indices double as edge identity for the
// splice step) but are skipped everywhere else.
type workingEdge struct {
	u, v int
	o    [3]int
	dead bool
}

// TrimTopology reduces g by alternating two passes until neither applies:
//
//  1. any vertex of periodic degree ≤ 1 is removed, along with its
//     incident edge (a dangling branch contributes nothing to the
//     periodic topology);
//  2. any vertex of periodic degree exactly 2 is spliced out: its two
//     neighbor descriptors (v1, o1) and (v2, o2) are replaced by a
//     single edge (v1, v2, o2 - o1).
//
// It returns the reduced graph and a vmap from reduced vertex index to
// the original index in g, so labels (types, positions) can be carried
// over by the caller.
//
// A vertex whose only incidence is a single self-loop has degree 2 but
// no genuine neighbor to splice into (both its neighbor descriptors
// name itself); such a vertex is left in place rather than spliced,
// since collapsing it would require connecting the vertex to itself
// through the very vertex being removed.
func TrimTopology(g *PeriodicGraph3D) (*PeriodicGraph3D, []int) {
	edges := make([]workingEdge, len(g.Edges))
	for i, e := range g.Edges {
		edges[i] = workingEdge{u: e.U, v: e.V, o: e.O}
	}

	removed := make([]bool, g.N)
	frozen := make([]bool, g.N)

	degree := func(v int) int {
		d := 0
		for _, e := range edges {
			if e.dead {
				continue
			}
			switch {
			case e.u == v && e.v == v:
				d += 2
			case e.u == v || e.v == v:
				d++
			}
		}

		return d
	}

	incidentOf := func(v int) []int {
		var idx []int
		for i, e := range edges {
			if !e.dead && (e.u == v || e.v == v) {
				idx = append(idx, i)
			}
		}

		return idx
	}

	descriptor := func(ei, v int) neighbor {
		e := edges[ei]
		if e.u == v {
			return neighbor{to: e.v, o: e.o}
		}

		return neighbor{to: e.u, o: negOffset(e.o)}
	}

	changed := true
	for changed {
		changed = false

		for v := 0; v < g.N; v++ {
			if removed[v] || frozen[v] {
				continue
			}
			if degree(v) <= 1 {
				for _, ei := range incidentOf(v) {
					edges[ei].dead = true
				}
				removed[v] = true
				changed = true
			}
		}

		for v := 0; v < g.N; v++ {
			if removed[v] || frozen[v] {
				continue
			}
			if degree(v) != 2 {
				continue
			}

			idx := incidentOf(v)
			if len(idx) != 2 {
				// A single self-loop edge accounts for the whole degree.
				frozen[v] = true
				continue
			}

			n1 := descriptor(idx[0], v)
			n2 := descriptor(idx[1], v)
			edges[idx[0]].dead = true
			edges[idx[1]].dead = true
			removed[v] = true
			changed = true

			newOff := subOffset(n2.o, n1.o)
			if n1.to == n2.to && newOff == [3]int{0, 0, 0} {
				// Two parallel paths through v cancel exactly; the
				// reduction is to no edge at all, per the self-loop
				// invariant on PeriodicEdge3D in types.go.
				continue
			}

			edges = append(edges, workingEdge{u: n1.to, v: n2.to, o: newOff})
		}
	}

	vmap := make([]int, 0, g.N)
	newIndex := make([]int, g.N)
	for v := 0; v < g.N; v++ {
		if !removed[v] {
			newIndex[v] = len(vmap)
			vmap = append(vmap, v)
		}
	}

	out := NewPeriodicGraph3D(len(vmap))
	for _, e := range edges {
		if e.dead || removed[e.u] || removed[e.v] {
			continue
		}
		u, v, o := newIndex[e.u], newIndex[e.v], e.o
		if u > v {
			u, v, o = v, u, negOffset(o)
		}
		out.AddEdge(u, v, o)
	}

	return out, vmap
}
