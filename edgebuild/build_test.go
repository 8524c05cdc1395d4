package edgebuild_test

import (
	"math/big"
	"testing"

	"github.com/nets-lab/periodicnet/cell"
	"github.com/nets-lab/periodicnet/cifrecord"
	"github.com/nets-lab/periodicnet/edgebuild"
	"github.com/nets-lab/periodicnet/pgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bf(v float64) *big.Float { return big.NewFloat(v).SetPrec(cell.DefaultPrecision) }

func float3(x, y, z float64) cifrecord.Float3 { return cifrecord.Float3{bf(x), bf(y), bf(z)} }

func cubicCell(t *testing.T, a float64) *cell.Cell {
	t.Helper()
	c, err := cell.NewCell("cubic", "P1", 1, bf(a), bf(a), bf(a), bf(90), bf(90), bf(90))
	require.NoError(t, err)

	return c
}

// TestBuildEdges_SingleMinimumImage covers a bonded pair whose true
// minimum image crosses one cell boundary.
func TestBuildEdges_SingleMinimumImage(t *testing.T) {
	c := cubicCell(t, 10)
	pos := cifrecord.NewFloatMat3xNFromCols([]cifrecord.Float3{
		float3(0, 0, 0),
		float3(0, 0, 0.9),
	})
	bonds := pgraph.NewBoolMatrix(2)
	bonds.Set(0, 1, true)

	edges, err := edgebuild.BuildEdges(bonds, c.Matrix, pos)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, 0, edges[0].U)
	assert.Equal(t, 1, edges[0].V)
	assert.Equal(t, [3]int{0, 0, -1}, edges[0].O)
}

// TestBuildEdges_TiedOffsetsBothRetained exercises the equidistant-tie
// rule: two offsets exactly 5 Å apart in a 10 Å cubic cell both survive.
func TestBuildEdges_TiedOffsetsBothRetained(t *testing.T) {
	c := cubicCell(t, 10)
	pos := cifrecord.NewFloatMat3xNFromCols([]cifrecord.Float3{
		float3(0, 0, 0),
		float3(0.5, 0, 0),
	})
	bonds := pgraph.NewBoolMatrix(2)
	bonds.Set(0, 1, true)

	edges, err := edgebuild.BuildEdges(bonds, c.Matrix, pos)
	require.NoError(t, err)
	require.Len(t, edges, 2)

	offsets := map[[3]int]bool{}
	for _, e := range edges {
		offsets[e.O] = true
	}
	assert.True(t, offsets[[3]int{0, 0, 0}])
	assert.True(t, offsets[[3]int{-1, 0, 0}])
}

func TestBuildEdges_EmptyGraph(t *testing.T) {
	_, err := edgebuild.BuildEdges(pgraph.NewBoolMatrix(0), [3][3]*big.Float{}, cifrecord.NewFloatMat3xN(0, cell.DefaultPrecision))
	assert.ErrorIs(t, err, edgebuild.ErrEmptyGraph)
}

// TestBuildEdges_NoBondsSet covers the atoms-present-but-nothing-bonded
// case: an all-zero bond matrix is empty in the same sense as no atoms
// at all, even though n > 0.
func TestBuildEdges_NoBondsSet(t *testing.T) {
	c := cubicCell(t, 10)
	pos := cifrecord.NewFloatMat3xNFromCols([]cifrecord.Float3{
		float3(0, 0, 0),
		float3(0.5, 0, 0),
	})

	_, err := edgebuild.BuildEdges(pgraph.NewBoolMatrix(2), c.Matrix, pos)
	assert.ErrorIs(t, err, edgebuild.ErrEmptyGraph)
}
