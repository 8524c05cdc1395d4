package netcanon_test

import (
	"math/big"
	"testing"

	"github.com/nets-lab/periodicnet/cell"
	"github.com/nets-lab/periodicnet/netcanon"
	"github.com/nets-lab/periodicnet/pgraph"
	"github.com/nets-lab/periodicnet/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bf(v float64) *big.Float { return big.NewFloat(v).SetPrec(cell.DefaultPrecision) }

func cubicCell(t *testing.T, a float64) *cell.Cell {
	t.Helper()
	c, err := cell.NewCell("cubic", "P1", 1, bf(a), bf(a), bf(a), bf(90), bf(90), bf(90))
	require.NoError(t, err)

	return c
}

// TestCanonicalize_TwoVertexChain re-canonicalizes netsolve's hand-verified
// chain: vertex 0 at the origin, vertex 1 at (-1/2, 0, 0). Vertex 1's
// position has a non-trivial floor split (offset (-1,0,0), folded
// position (1/2,0,0)); vertex 0 sorts first since (0,0,0) < (1/2,0,0).
func TestCanonicalize_TwoVertexChain(t *testing.T) {
	c := cubicCell(t, 10)
	g := pgraph.NewPeriodicGraph3D(2)
	g.AddEdge(0, 1, [3]int{0, 0, 0})
	g.AddEdge(0, 1, [3]int{1, 0, 0})

	x := rational.NewMat3xN(2)
	x.SetCol(0, rational.ZeroRat3())
	x.SetCol(1, rational.NewRat3(rational.NewRat(-1, 2), rational.Zero(), rational.Zero()))

	net, err := netcanon.Canonicalize(c, []string{"C", "N"}, g, x)
	require.NoError(t, err)
	require.Equal(t, 2, net.N())
	assert.Empty(t, net.Cell.Equivalents)

	assert.True(t, net.Pos.Col(0)[0].IsZero())
	assert.True(t, net.Pos.Col(1)[0].Equal(rational.NewRat(1, 2)))
	assert.Equal(t, []string{"C", "N"}, net.Types)

	require.Len(t, net.Graph.Edges, 2)
	offsets := map[[3]int]int{}
	for _, e := range net.Graph.Edges {
		assert.Equal(t, 0, e.U)
		assert.Equal(t, 1, e.V)
		offsets[e.O]++
	}
	assert.Equal(t, 1, offsets[[3]int{0, 0, 0}])
	assert.Equal(t, 1, offsets[[3]int{-1, 0, 0}])
}

// TestCanonicalize_SortSwapsVertexOrder checks that relabeling actually
// permutes edge endpoints when the folded order reverses the input order.
func TestCanonicalize_SortSwapsVertexOrder(t *testing.T) {
	c := cubicCell(t, 10)
	g := pgraph.NewPeriodicGraph3D(2)
	g.AddEdge(0, 1, [3]int{0, 0, 1})

	x := rational.NewMat3xN(2)
	x.SetCol(0, rational.NewRat3(rational.NewRat(3, 4), rational.Zero(), rational.Zero()))
	x.SetCol(1, rational.NewRat3(rational.NewRat(1, 4), rational.Zero(), rational.Zero()))

	net, err := netcanon.Canonicalize(c, []string{"Fe", "O"}, g, x)
	require.NoError(t, err)

	// vertex 1 (pos 1/4) now sorts before vertex 0 (pos 3/4).
	assert.Equal(t, []string{"O", "Fe"}, net.Types)
	require.Len(t, net.Graph.Edges, 1)
	e := net.Graph.Edges[0]
	assert.Equal(t, 0, e.U)
	assert.Equal(t, 1, e.V)
	assert.Equal(t, [3]int{0, 0, -1}, e.O)
}

func TestCanonicalize_DimensionMismatch(t *testing.T) {
	c := cubicCell(t, 10)
	g := pgraph.NewPeriodicGraph3D(2)
	x := rational.NewMat3xN(1)

	_, err := netcanon.Canonicalize(c, []string{"C"}, g, x)
	assert.ErrorIs(t, err, netcanon.ErrDimensionMismatch)
}
