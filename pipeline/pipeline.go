// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"

	"github.com/nets-lab/periodicnet/cifrecord"
	"github.com/nets-lab/periodicnet/cluster"
	"github.com/nets-lab/periodicnet/crystal"
	"github.com/nets-lab/periodicnet/dimensionality"
	"github.com/nets-lab/periodicnet/edgebuild"
	"github.com/nets-lab/periodicnet/pgraph"
	"github.com/nets-lab/periodicnet/rational"
	"github.com/nets-lab/periodicnet/warn"
)

// Build runs the full pipeline: cifrecord cleanup and symmetry expansion,
// periodic edge construction, topology reduction, dimensionality
// filtering, and finally the clustering-driven solve and canonicalization.
func Build(rec *cifrecord.Record, mode cluster.Mode, opts ...Option) (*cluster.CrystalNet[crystal.NoClusters], error) {
	cfg := newConfig(opts...)

	cleaned := cifrecord.RemovePartialOccupancy(rec, cfg.warn)
	cleaned = cifrecord.PruneCollisions(cleaned, cfg.warn)
	cleaned = cifrecord.ExpandSymmetry(cleaned, cfg.warn)

	edges, err := edgebuild.BuildEdges(cleaned.Bonds, cleaned.Cell.Matrix, cleaned.Pos)
	if err != nil {
		return nil, fmt.Errorf("pipeline: build edges: %w", err)
	}
	raw := pgraph.NewPeriodicGraph3D(cleaned.N())
	raw.Edges = edges

	trimmed, vmap := pgraph.TrimTopology(raw)

	verts, err := selectCrystallineComponent(trimmed, cfg.warn)
	if err != nil {
		return nil, err
	}

	cr := buildCrystal(cleaned, trimmed, vmap, verts, cfg)

	net, err := cluster.Build(mode, cr, cfg.finder)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	return net, nil
}

// selectCrystallineComponent applies dimensionality filtering: strip
// rank-0 components (warning), then strip any remaining non-rank-3
// components (warning), and require exactly one rank-3 component.
func selectCrystallineComponent(g *pgraph.PeriodicGraph3D, warnFn warn.Func) ([]int, error) {
	byRank := dimensionality.Analyze(g)

	if comps := byRank[0]; len(comps) > 0 {
		warn.Emit(warnFn, "pipeline: stripped %d rank-0 component(s)", len(comps))
	}

	nonRank3 := len(byRank[1]) + len(byRank[2])
	if nonRank3 > 0 {
		warn.Emit(warnFn, "pipeline: stripped %d non-rank-3 component(s)", nonRank3)
	}

	rank3 := byRank[3]
	if len(rank3) != 1 {
		return nil, NonCrystallineInput
	}

	return rank3[0], nil
}

// buildCrystal assembles the crystal.Crystal handed to cluster.Build:
// the selected rank-3 vertices, relabeled to 0..k-1, with their element
// symbols resolved from the cleaned record's palette and their raw
// fractional positions carried over exactly (a big.Float position is
// exactly representable as a rational, so the conversion loses nothing
// beyond what the float already rounded away).
func buildCrystal(rec *cifrecord.Record, trimmed *pgraph.PeriodicGraph3D, vmap, verts []int, cfg config) crystal.Crystal[any] {
	k := len(verts)
	newIndex := make(map[int]int, k)
	for newI, trimIdx := range verts {
		newIndex[trimIdx] = newI
	}

	types := make([]string, k)
	pos := rational.NewMat3xN(k)
	for newI, trimIdx := range verts {
		origIdx := vmap[trimIdx]
		types[newI] = rec.Palette[rec.Types[origIdx]]
		col := rec.Pos.Col(origIdx)
		pos.SetCol(newI, rational.NewRat3(floatToRat(col[0]), floatToRat(col[1]), floatToRat(col[2])))
	}

	g := pgraph.NewPeriodicGraph3D(k)
	for _, e := range trimmed.Edges {
		u, uOK := newIndex[e.U]
		v, vOK := newIndex[e.V]
		if !uOK || !vOK {
			continue
		}
		g.AddEdge(u, v, e.O)
	}

	var tag any = crystal.NoClusters{}
	if cfg.clusters != nil {
		tag = *cfg.clusters
	}

	return crystal.Crystal[any]{
		Cell:  rec.Cell,
		Types: types,
		Pos:   pos,
		Graph: g,
		Tag:   tag,
	}
}
