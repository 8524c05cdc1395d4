package sbu_test

import (
	"math/big"
	"testing"

	"github.com/nets-lab/periodicnet/cell"
	"github.com/nets-lab/periodicnet/crystal"
	"github.com/nets-lab/periodicnet/pgraph"
	"github.com/nets-lab/periodicnet/rational"
	"github.com/nets-lab/periodicnet/sbu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cubicCell(t *testing.T, a float64) *cell.Cell {
	t.Helper()
	bf := func(v float64) *big.Float { return big.NewFloat(v).SetPrec(cell.DefaultPrecision) }
	c, err := cell.NewCell("cubic", "P1", 1, bf(a), bf(a), bf(a), bf(90), bf(90), bf(90))
	require.NoError(t, err)

	return c
}

func rat(n, d int64) *rational.Rat { return rational.NewRat(n, d) }

// TestDefaultFinder_ContractsShortBondsAcrossImages exercises the
// periodic-offset bookkeeping: vertex 2's short bond to vertex 0 crosses
// a cell boundary, and its reported cluster offset must reflect that.
func TestDefaultFinder_ContractsShortBondsAcrossImages(t *testing.T) {
	c := cubicCell(t, 10)
	pos := rational.NewMat3xN(4)
	pos.SetCol(0, rational.NewRat3(rat(0, 1), rational.Zero(), rational.Zero()))
	pos.SetCol(1, rational.NewRat3(rat(1, 10), rational.Zero(), rational.Zero()))
	pos.SetCol(2, rational.NewRat3(rat(9, 10), rational.Zero(), rational.Zero()))
	pos.SetCol(3, rational.NewRat3(rat(1, 2), rat(1, 2), rat(1, 2)))

	g := pgraph.NewPeriodicGraph3D(4)
	g.AddEdge(0, 1, [3]int{0, 0, 0})  // 1 Å apart
	g.AddEdge(0, 2, [3]int{-1, 0, 0}) // 1 Å apart through the -x image

	cr := crystal.Crystal[crystal.NoClusters]{
		Cell:  c,
		Types: []string{"Fe", "Fe", "Fe", "O"},
		Pos:   pos,
		Graph: g,
	}

	f := sbu.NewDefaultFinder(1.5)
	clusters, err := f.FindSBUs(cr)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 0, 0, 3}, clusters.Attribution)
	assert.Equal(t, [3]int{0, 0, 0}, clusters.Offset[0])
	assert.Equal(t, [3]int{0, 0, 0}, clusters.Offset[1])
	assert.Equal(t, [3]int{-1, 0, 0}, clusters.Offset[2])
	assert.Equal(t, 1, clusters.NonTrivialCount())
}

func TestDefaultFinder_NoBondsWithinCutoffIsAllSingletons(t *testing.T) {
	c := cubicCell(t, 10)
	pos := rational.NewMat3xN(2)
	pos.SetCol(0, rational.ZeroRat3())
	pos.SetCol(1, rational.NewRat3(rat(1, 2), rational.Zero(), rational.Zero()))

	g := pgraph.NewPeriodicGraph3D(2)
	g.AddEdge(0, 1, [3]int{0, 0, 0}) // 5 Å apart

	cr := crystal.Crystal[crystal.NoClusters]{Cell: c, Types: []string{"C", "C"}, Pos: pos, Graph: g}

	f := sbu.NewDefaultFinder(1.5)
	clusters, err := f.FindSBUs(cr)
	require.NoError(t, err)

	assert.True(t, clusters.IsEmpty())
	assert.Equal(t, 0, clusters.NonTrivialCount())
}
