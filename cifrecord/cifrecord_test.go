package cifrecord_test

import (
	"math/big"
	"testing"

	"github.com/nets-lab/periodicnet/cell"
	"github.com/nets-lab/periodicnet/cifrecord"
	"github.com/nets-lab/periodicnet/pgraph"
	"github.com/nets-lab/periodicnet/symmetry"
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

func float3(x, y, z float64) cifrecord.Float3 {
	return cifrecord.Float3{bf(x), bf(y), bf(z)}
}

func TestRemovePartialOccupancy(t *testing.T) {
	c := cubicCell(t, 10)
	pos := cifrecord.NewFloatMat3xNFromCols([]cifrecord.Float3{
		float3(0.1, 0.1, 0.1),
		float3(0.100001, 0.1, 0.1), // duplicate of index 0, kept as smaller idx
		float3(0.5, 0.5, 0.5),
	})
	rec := cifrecord.NewRecord(nil, c, []string{"C"}, []int{0, 0, 0}, pos, pgraph.NewBoolMatrix(3))

	var warned bool
	out := cifrecord.RemovePartialOccupancy(rec, func(string, ...any) { warned = true })

	assert.True(t, warned)
	assert.Equal(t, 2, out.N())
}

func TestPruneCollisions(t *testing.T) {
	c := cubicCell(t, 10)
	// Two atoms 0.01 Å apart in a 10 Å cubic cell: 0.001 fractional * 10 = 0.01 Å.
	pos := cifrecord.NewFloatMat3xNFromCols([]cifrecord.Float3{
		float3(0.1, 0.1, 0.1),
		float3(0.101, 0.1, 0.1),
		float3(0.9, 0.9, 0.9),
	})
	rec := cifrecord.NewRecord(nil, c, []string{"C"}, []int{0, 0, 0}, pos, pgraph.NewBoolMatrix(3))

	var warned bool
	out := cifrecord.PruneCollisions(rec, func(string, ...any) { warned = true })

	assert.True(t, warned)
	require.Equal(t, 1, out.N())
}

func TestKeepAtoms(t *testing.T) {
	c := cubicCell(t, 10)
	pos := cifrecord.NewFloatMat3xNFromCols([]cifrecord.Float3{
		float3(0.1, 0.1, 0.1),
		float3(0.2, 0.2, 0.2),
		float3(0.3, 0.3, 0.3),
	})
	// palette has 2 entries; type 1 ("O") is only used by atom 1, which we drop.
	rec := cifrecord.NewRecord(nil, c, []string{"C", "O"}, []int{0, 1, 0}, pos, pgraph.NewBoolMatrix(3))

	out := cifrecord.KeepAtoms(rec, []int{0, 2}, nil)

	require.Equal(t, 2, out.N())
	assert.Equal(t, []string{"C"}, out.Palette)
	assert.Equal(t, []int{0, 0}, out.Types)
}

func TestExpandSymmetry_IdentityIsNoOp(t *testing.T) {
	c := cubicCell(t, 10)
	c.Equivalents = []*symmetry.EquivalentPosition{symmetry.Identity()}

	pos := cifrecord.NewFloatMat3xNFromCols([]cifrecord.Float3{
		float3(0.1, 0.1, 0.1),
		float3(0.5, 0.5, 0.5),
	})
	rec := cifrecord.NewRecord(nil, c, []string{"C"}, []int{0, 0}, pos, pgraph.NewBoolMatrix(2))

	out := cifrecord.ExpandSymmetry(rec, nil)
	assert.Equal(t, 2, out.N())
}
