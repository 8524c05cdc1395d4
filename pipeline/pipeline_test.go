// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nets-lab/periodicnet/cell"
	"github.com/nets-lab/periodicnet/cifrecord"
	"github.com/nets-lab/periodicnet/cluster"
	"github.com/nets-lab/periodicnet/pgraph"
	"github.com/nets-lab/periodicnet/pipeline"
)

func bf(v float64) *big.Float { return big.NewFloat(v).SetPrec(cell.DefaultPrecision) }

func float3(x, y, z float64) cifrecord.Float3 { return cifrecord.Float3{bf(x), bf(y), bf(z)} }

func cubicCell(t *testing.T, a float64) *cell.Cell {
	t.Helper()
	c, err := cell.NewCell("cubic", "P1", 1, bf(a), bf(a), bf(a), bf(90), bf(90), bf(90))
	require.NoError(t, err)

	return c
}

// twoAtomRecord places atom 1 at the cell's symmetric point (0.5,0.5,0.5),
// bonded to atom 0 at the origin: every one of the 8 offsets in {-1,0}³
// ties for the minimum image, so BuildEdges retains all 8 and TrimTopology
// leaves both vertices untouched (each has periodic degree 8).
func twoAtomRecord(t *testing.T) *cifrecord.Record {
	t.Helper()
	pos := cifrecord.NewFloatMat3xNFromCols([]cifrecord.Float3{
		float3(0, 0, 0),
		float3(0.5, 0.5, 0.5),
	})
	bonds := pgraph.NewBoolMatrix(2)
	bonds.Set(0, 1, true)

	return cifrecord.NewRecord(nil, cubicCell(t, 10), []string{"C", "O"}, []int{0, 1}, pos, bonds)
}

// TestBuild_TiedNeighborhoodResolvesToSymmetricPoint hand-verifies the
// full pipeline on twoAtomRecord: the anchored solve places vertex 1 at
// exactly (1/2,1/2,1/2), which canonicalization leaves untouched since
// that point already folds into [0,1)³ and sorts after the origin.
func TestBuild_TiedNeighborhoodResolvesToSymmetricPoint(t *testing.T) {
	net, err := pipeline.Build(twoAtomRecord(t), cluster.EachVertexClustering)
	require.NoError(t, err)
	require.NotNil(t, net)

	assert.Equal(t, 2, net.N())
	assert.Equal(t, []string{"C", "O"}, net.Types)
	assert.Len(t, net.Graph.Edges, 8)

	p0 := net.Pos.Col(0)
	zero := big.NewRat(0, 1)
	for d := 0; d < 3; d++ {
		assert.Equal(t, 0, p0[d].Big().Cmp(zero))
	}

	p1 := net.Pos.Col(1)
	half := big.NewRat(1, 2)
	for d := 0; d < 3; d++ {
		assert.Equal(t, 0, p1[d].Big().Cmp(half))
	}

	for _, e := range net.Graph.Edges {
		assert.Equal(t, 0, e.U)
		assert.Equal(t, 1, e.V)
	}
}

// TestBuild_FiniteMoleculeIsNonCrystalline covers the rejection case: a
// dangling bonded pair with a unique minimum image has periodic degree
// 1 at both ends, so TrimTopology empties the graph and there is no
// rank-3 component to report.
func TestBuild_FiniteMoleculeIsNonCrystalline(t *testing.T) {
	pos := cifrecord.NewFloatMat3xNFromCols([]cifrecord.Float3{
		float3(0, 0, 0),
		float3(0, 0, 0.9),
	})
	bonds := pgraph.NewBoolMatrix(2)
	bonds.Set(0, 1, true)
	rec := cifrecord.NewRecord(nil, cubicCell(t, 10), []string{"C"}, []int{0, 0}, pos, bonds)

	_, err := pipeline.Build(rec, cluster.EachVertexClustering)
	assert.ErrorIs(t, err, pipeline.NonCrystallineInput)
}

// TestBuild_MultipleCrystallineComponentsIsNonCrystalline stacks two
// independent copies of twoAtomRecord's tied neighborhood with no bond
// between them: both halves reduce to their own rank-3 component, and
// Build requires exactly one.
func TestBuild_MultipleCrystallineComponentsIsNonCrystalline(t *testing.T) {
	c := cubicCell(t, 10)
	pos := cifrecord.NewFloatMat3xNFromCols([]cifrecord.Float3{
		float3(0, 0, 0),
		float3(0.5, 0.5, 0.5),
		float3(0.25, 0, 0),
		float3(0.75, 0.5, 0.5),
	})
	bonds := pgraph.NewBoolMatrix(4)
	bonds.Set(0, 1, true)
	bonds.Set(2, 3, true)
	rec := cifrecord.NewRecord(nil, c, []string{"C", "O"}, []int{0, 1, 0, 1}, pos, bonds)

	_, err := pipeline.Build(rec, cluster.EachVertexClustering)
	assert.ErrorIs(t, err, pipeline.NonCrystallineInput)
}
