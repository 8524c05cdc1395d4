// SPDX-License-Identifier: MIT

package dimensionality

import "github.com/nets-lab/periodicnet/rational"

// moduleRank returns the rank (0..3) of the ℤ-module spanned by vectors,
// built the same way rational.IsRank3 tests for rank 3: greedily grow an
// independent basis, testing each new candidate against the current basis
// with a cross-product parallelism check (basis size 1) or a 3×3
// singularity test (basis size 2), stopping once the basis reaches 3.
func moduleRank(vectors []rational.Rat3) int {
	var basis []rational.Rat3

	for _, v := range vectors {
		if isZero3(v) {
			continue
		}

		switch len(basis) {
		case 0:
			basis = append(basis, v)
		case 1:
			if !parallel3(basis[0], v) {
				basis = append(basis, v)
			}
		case 2:
			m := rational.Mat3{
				{basis[0][0], basis[1][0], v[0]},
				{basis[0][1], basis[1][1], v[1]},
				{basis[0][2], basis[1][2], v[2]},
			}
			singular, err := rational.IsSingular3x3(m)
			if err == nil && !singular {
				basis = append(basis, v)
			}
		}

		if len(basis) == 3 {
			break
		}
	}

	return len(basis)
}

func isZero3(v rational.Rat3) bool {
	return v[0].IsZero() && v[1].IsZero() && v[2].IsZero()
}

// parallel3 reports whether v is a rational multiple of u, via the
// cross-product test.
func parallel3(u, v rational.Rat3) bool {
	cx := u[1].Mul(v[2]).Sub(u[2].Mul(v[1]))
	cy := u[2].Mul(v[0]).Sub(u[0].Mul(v[2]))
	cz := u[0].Mul(v[1]).Sub(u[1].Mul(v[0]))

	return cx.IsZero() && cy.IsZero() && cz.IsZero()
}
