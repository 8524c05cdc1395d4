package netsolve_test

import (
	"testing"

	"github.com/nets-lab/periodicnet/netsolve"
	"github.com/nets-lab/periodicnet/pgraph"
	"github.com/nets-lab/periodicnet/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolve_PrimitiveCubicIsTrivial covers the single-vertex-with-self-loops
// case: the only vertex is the anchor, already at the origin.
func TestSolve_PrimitiveCubicIsTrivial(t *testing.T) {
	g := pgraph.NewPeriodicGraph3D(1)
	g.AddEdge(0, 0, [3]int{1, 0, 0})
	g.AddEdge(0, 0, [3]int{0, 1, 0})
	g.AddEdge(0, 0, [3]int{0, 0, 1})

	a, y := netsolve.Assemble(g)
	x, err := netsolve.Solve(a, y)
	require.NoError(t, err)

	require.Equal(t, 1, x.N())
	assert.True(t, x.Col(0)[0].IsZero())
	assert.True(t, x.Col(0)[1].IsZero())
	assert.True(t, x.Col(0)[2].IsZero())
}

// TestSolve_TwoVertexChain is a hand-verified two-vertex 1D periodic
// chain: vertex 0 bonds to vertex 1 in the same cell and to vertex 1's
// image one cell over along x. Anchoring vertex 0 at the origin forces
// vertex 1 to (-1/2, 0, 0), the exact mean of its two neighbor images.
func TestSolve_TwoVertexChain(t *testing.T) {
	g := pgraph.NewPeriodicGraph3D(2)
	g.AddEdge(0, 1, [3]int{0, 0, 0})
	g.AddEdge(0, 1, [3]int{1, 0, 0})

	a, y := netsolve.Assemble(g)
	x, err := netsolve.Solve(a, y)
	require.NoError(t, err)

	want := rational.NewRat(-1, 2)
	assert.True(t, x.Col(1)[0].Equal(want))
	assert.True(t, x.Col(1)[1].IsZero())
	assert.True(t, x.Col(1)[2].IsZero())
}

func TestSelectWidth_Narrow(t *testing.T) {
	x := rational.NewMat3xN(1)
	x.SetCol(0, rational.NewRat3(rational.NewRat(1, 2), rational.Zero(), rational.Zero()))

	assert.Equal(t, rational.W8, netsolve.SelectWidth(x))
}
