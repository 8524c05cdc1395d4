package cell_test

import (
	"math/big"
	"testing"

	"github.com/nets-lab/periodicnet/cell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bf(v float64) *big.Float { return big.NewFloat(v).SetPrec(cell.DefaultPrecision) }

func closeTo(t *testing.T, want float64, got *big.Float, tol float64) {
	t.Helper()
	f, _ := got.Float64()
	assert.InDelta(t, want, f, tol)
}

// TestNewCell_Cubic covers a (10,10,10,90,90,90) cell, which should
// produce a Cartesian basis equal to 10·I.
func TestNewCell_Cubic(t *testing.T) {
	c, err := cell.NewCell("cubic", "P1", 1, bf(10), bf(10), bf(10), bf(90), bf(90), bf(90))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 10.0
			}
			closeTo(t, want, c.Matrix[i][j], 1e-30)
		}
	}
}

func TestCellParameters_RoundTrip(t *testing.T) {
	c, err := cell.NewCell("triclinic", "P1", 1, bf(5), bf(6), bf(7), bf(80), bf(95), bf(110))
	require.NoError(t, err)

	a, b, cc, alpha, beta, gamma := cell.CellParameters(c.Matrix)
	closeTo(t, 5, a, 1e-20)
	closeTo(t, 6, b, 1e-20)
	closeTo(t, 7, cc, 1e-20)
	closeTo(t, 80, alpha, 1e-15)
	closeTo(t, 95, beta, 1e-15)
	closeTo(t, 110, gamma, 1e-15)
}

func TestNewCell_Degenerate(t *testing.T) {
	_, err := cell.NewCell("x", "P1", 1, bf(1), bf(1), bf(1), bf(90), bf(90), bf(0))
	assert.ErrorIs(t, err, cell.ErrDegenerateCell)
}

func TestCell_WithEquivalents(t *testing.T) {
	c, err := cell.NewCell("cubic", "P1", 1, bf(1), bf(1), bf(1), bf(90), bf(90), bf(90))
	require.NoError(t, err)

	cp := c.WithEquivalents(nil)
	assert.NotSame(t, c, cp)
	assert.Nil(t, cp.Equivalents)
}
