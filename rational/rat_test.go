package rational_test

import (
	"testing"

	"github.com/nets-lab/periodicnet/rational"
	"github.com/stretchr/testify/assert"
)

func TestRat_Arithmetic(t *testing.T) {
	a := rational.NewRat(1, 2)
	b := rational.NewRat(1, 3)

	assert.Equal(t, "5/6", a.Add(b).String())
	assert.Equal(t, "1/6", a.Sub(b).String())
	assert.Equal(t, "1/6", a.Mul(b).String())
	assert.Equal(t, "3/2", a.Quo(b).String())
	assert.True(t, rational.Zero().IsZero())
	assert.False(t, a.IsZero())
}

func TestBackToUnit(t *testing.T) {
	cases := []struct {
		num, den int64
		want     string
	}{
		{3, 2, "1/2"},
		{-3, 2, "1/2"},
		{5, 1, "0"},
		{-1, 4, "3/4"},
		{7, 4, "3/4"},
	}
	for _, c := range cases {
		r := rational.NewRat(c.num, c.den)
		got := rational.BackToUnit(r)
		assert.Equal(t, c.want, got.String(), "BackToUnit(%d/%d)", c.num, c.den)

		// Property 2: back_to_unit(r) ∈ [0,1) and r - back_to_unit(r) ∈ ℤ.
		assert.True(t, got.Sign() >= 0)
		assert.True(t, got.Cmp(rational.One()) < 0)
		diff := r.Sub(got)
		assert.Equal(t, int64(1), diff.Denom().Int64())
	}
}
