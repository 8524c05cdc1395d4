// SPDX-License-Identifier: MIT

package symmetry

import (
	"math/big"
	"strings"

	"github.com/nets-lab/periodicnet/rational"
)

// Render applies the rendering rule: each row is emitted as a sum of
// terms "sign·coeff·identifier" (coefficient ±1 printed as just the sign,
// leading '+' suppressed) followed by a bare rational offset term if
// nonzero, rows joined with ','. A row whose coefficients are all zero is
// written with an explicit zero coefficient on the first identifier
// ("0x"). The result is whitespace-free and always
// re-parses to the same (M, t) under the same identifiers.
func Render(e *EquivalentPosition, ids [3]string) string {
	rows := make([]string, 3)
	for d := 0; d < 3; d++ {
		var b strings.Builder
		first := true
		for c := 0; c < 3; c++ {
			coeff := e.M[d][c]
			if coeff.IsZero() {
				continue
			}
			b.WriteString(term(coeff, ids[c], first))
			first = false
		}
		if first {
			// A row with all-zero coefficients is written with an explicit
			// zero coefficient so that it still re-parses.
			b.WriteString("0" + ids[0])
			first = false
		}
		if !e.T[d].IsZero() {
			b.WriteString(term(e.T[d], "", first))
		}
		rows[d] = b.String()
	}

	return strings.Join(rows, ",")
}

var bigOne = big.NewInt(1)

// term renders one signed term. When suffix is non-empty (an identifier)
// and the magnitude is exactly 1, the magnitude is omitted.
func term(r *rational.Rat, suffix string, first bool) string {
	sign := "+"
	abs := r
	if r.Sign() < 0 {
		sign = "-"
		abs = r.Neg()
	}
	if first && sign == "+" {
		sign = ""
	}

	var mag string
	switch {
	case suffix != "" && abs.Cmp(rational.One()) == 0:
		mag = ""
	case abs.Denom().Cmp(bigOne) == 0:
		mag = abs.Num().String()
	default:
		mag = abs.Num().String() + "/" + abs.Denom().String()
	}

	return sign + mag + suffix
}
