// SPDX-License-Identifier: MIT

package netsolve

import (
	"fmt"
	"math/big"

	"github.com/nets-lab/periodicnet/rational"
)

// Solve performs the anchored solve: vertex 0 is fixed at the origin, and
// the reduced (n-1)×(n-1) system on the remaining rows/columns is solved
// exactly via bareissSolve.
func Solve(a [][]int, y [][3]int) (*rational.Mat3xN, error) {
	n := len(a)
	out := rational.NewMat3xN(n)
	if n == 0 {
		return out, nil
	}
	if n == 1 {
		return out, nil // the sole vertex is the anchor, already at the origin.
	}

	k := n - 1
	aInt := make([][]*big.Int, k)
	bInt := make([][]*big.Int, k)
	for i := 0; i < k; i++ {
		row := make([]*big.Int, k)
		for j := 0; j < k; j++ {
			row[j] = big.NewInt(int64(a[i+1][j+1]))
		}
		aInt[i] = row
		bInt[i] = []*big.Int{
			big.NewInt(int64(y[i+1][0])),
			big.NewInt(int64(y[i+1][1])),
			big.NewInt(int64(y[i+1][2])),
		}
	}

	x, err := bareissSolve(aInt, bInt)
	if err != nil {
		return nil, fmt.Errorf("netsolve: solve reduced system: %w", err)
	}

	for i := 0; i < k; i++ {
		out.SetCol(i+1, rational.NewRat3(
			rational.FromBigRat(x[i][0]),
			rational.FromBigRat(x[i][1]),
			rational.FromBigRat(x[i][2]),
		))
	}

	return out, nil
}
