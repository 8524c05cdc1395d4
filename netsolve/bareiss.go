// SPDX-License-Identifier: MIT

package netsolve

import "math/big"

// bareissSolve solves A·X = B exactly over ℚ for a k×k integer matrix A
// and a k×m integer right-hand side B, via fraction-free (Bareiss)
// Gaussian elimination: every intermediate entry stays an exact integer
// (division at each step is guaranteed to be exact by the Bareiss
// identity), and only the final back-substitution introduces rationals.
//
// bareissSolve is the reduced system's exact solver; it does the work a
// black-box rational linear solver would, without pulling in an external
// CAS dependency for what is at most a few dozen unknowns per net.
func bareissSolve(a [][]*big.Int, b [][]*big.Int) ([][]*big.Rat, error) {
	k := len(a)
	if k == 0 {
		return nil, nil
	}
	m := len(b[0])

	// Work on copies so callers keep their originals.
	mat := make([][]*big.Int, k)
	rhs := make([][]*big.Int, k)
	for i := 0; i < k; i++ {
		mat[i] = append([]*big.Int(nil), a[i]...)
		rhs[i] = append([]*big.Int(nil), b[i]...)
	}

	prev := big.NewInt(1)
	for p := 0; p < k-1; p++ {
		if mat[p][p].Sign() == 0 {
			pivotRow := -1
			for r := p + 1; r < k; r++ {
				if mat[r][p].Sign() != 0 {
					pivotRow = r
					break
				}
			}
			if pivotRow == -1 {
				return nil, ErrSingularSystem
			}
			mat[p], mat[pivotRow] = mat[pivotRow], mat[p]
			rhs[p], rhs[pivotRow] = rhs[pivotRow], rhs[p]
		}

		for i := p + 1; i < k; i++ {
			for j := p + 1; j < k; j++ {
				num := new(big.Int).Sub(
					new(big.Int).Mul(mat[p][p], mat[i][j]),
					new(big.Int).Mul(mat[i][p], mat[p][j]),
				)
				mat[i][j] = new(big.Int).Div(num, prev)
			}
			for c := 0; c < m; c++ {
				num := new(big.Int).Sub(
					new(big.Int).Mul(mat[p][p], rhs[i][c]),
					new(big.Int).Mul(mat[i][p], rhs[p][c]),
				)
				rhs[i][c] = new(big.Int).Div(num, prev)
			}
			mat[i][p] = big.NewInt(0)
		}

		prev = mat[p][p]
	}

	if mat[k-1][k-1].Sign() == 0 {
		return nil, ErrSingularSystem
	}

	x := make([][]*big.Rat, k)
	for i := range x {
		x[i] = make([]*big.Rat, m)
	}

	for i := k - 1; i >= 0; i-- {
		for c := 0; c < m; c++ {
			sum := new(big.Rat).SetInt(rhs[i][c])
			for j := i + 1; j < k; j++ {
				term := new(big.Rat).Mul(new(big.Rat).SetInt(mat[i][j]), x[j][c])
				sum.Sub(sum, term)
			}
			x[i][c] = new(big.Rat).Quo(sum, new(big.Rat).SetInt(mat[i][i]))
		}
	}

	return x, nil
}
