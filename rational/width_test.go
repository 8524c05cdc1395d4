package rational_test

import (
	"testing"

	"github.com/nets-lab/periodicnet/rational"
	"github.com/stretchr/testify/assert"
)

func TestSelectWidth(t *testing.T) {
	small := []*rational.Rat{rational.NewRat(1, 2), rational.NewRat(-3, 4)}
	assert.Equal(t, rational.W8, rational.SelectWidth(small))

	big64 := []*rational.Rat{rational.NewRat(1<<40, 1)}
	assert.Equal(t, rational.W64, rational.SelectWidth(big64))

	assert.True(t, rational.Fits(rational.W8, rational.NewRat(100, 1)))
	assert.False(t, rational.Fits(rational.W8, rational.NewRat(1000, 1)))
	assert.True(t, rational.Fits(rational.WBig, rational.NewRat(1<<62, 1)))
}
