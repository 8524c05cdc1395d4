// SPDX-License-Identifier: MIT

package netsolve

import "github.com/nets-lab/periodicnet/rational"

// SelectWidth computes the width-selection step over a solved placement,
// delegating to rational.SelectWidth.
func SelectWidth(x *rational.Mat3xN) rational.Width {
	rs := make([]*rational.Rat, 0, x.N()*3)
	for _, col := range x.Cols() {
		rs = append(rs, col[0], col[1], col[2])
	}

	return rational.SelectWidth(rs)
}
