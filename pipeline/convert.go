// SPDX-License-Identifier: MIT

package pipeline

import (
	"math/big"

	"github.com/nets-lab/periodicnet/rational"
)

// floatToRat converts a big.Float to the exact rational it represents.
// Binary floating-point values are always exactly rational (a
// power-of-two denominator), so this loses nothing the float itself
// hadn't already rounded away.
func floatToRat(x *big.Float) *rational.Rat {
	r, _ := x.Rat(nil)

	return rational.FromBigRat(r)
}
