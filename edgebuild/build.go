// SPDX-License-Identifier: MIT

package edgebuild

import (
	"math/big"

	"github.com/nets-lab/periodicnet/cell"
	"github.com/nets-lab/periodicnet/cifrecord"
	"github.com/nets-lab/periodicnet/pgraph"
)

// offsets is {-1,0,1}³ in fixed lexicographic order: candidate offsets
// are always iterated in this order so tie-break results stay
// deterministic across runs.
var offsets = func() [][3]int {
	var out [][3]int
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				out = append(out, [3]int{x, y, z})
			}
		}
	}

	return out
}()

// tieTolerance is the 10⁻³ Å equidistance tolerance for candidate offsets.
const tieTolerance = 1e-3

// BuildEdges resolves bonded atom pairs to periodic edges. For every
// bonded pair (i, k) with i < k, it enumerates the 27 candidate offsets
// and retains those tying for the minimum Cartesian distance between
// pos[:,i] and pos[:,k]+offset. The per-pair running minimum starts at
// d0 = ‖mat·(1,1,1)‖ and drifts to the running average of tied
// candidates as they're found — this drift is intentional and must not
// be "corrected" to a strict minimum-image search.
func BuildEdges(bonds *pgraph.BoolMatrix, mat [3][3]*big.Float, pos *cifrecord.FloatMat3xN) ([]pgraph.PeriodicEdge3D, error) {
	n := bonds.N()
	if n == 0 || !bonds.Any() {
		return nil, ErrEmptyGraph
	}

	prec := pos.Col(0)[0].Prec()
	d0 := referenceDiagonal(mat, prec)
	tol := new(big.Float).SetPrec(prec).SetFloat64(tieTolerance)

	var edges []pgraph.PeriodicEdge3D
	for i := 0; i < n; i++ {
		for k := i + 1; k < n; k++ {
			if !bonds.Get(i, k) {
				continue
			}
			for _, o := range buildPairOffsets(pos.Col(i), pos.Col(k), mat, prec, d0, tol) {
				edges = append(edges, pgraph.PeriodicEdge3D{U: i, V: k, O: o})
			}
		}
	}

	return edges, nil
}

func referenceDiagonal(mat [3][3]*big.Float, prec uint) *big.Float {
	one := new(big.Float).SetPrec(prec).SetInt64(1)
	var cart [3]*big.Float
	for r := 0; r < 3; r++ {
		sum := new(big.Float).SetPrec(prec)
		for c := 0; c < 3; c++ {
			term := new(big.Float).SetPrec(prec).Mul(mat[r][c], one)
			sum.Add(sum, term)
		}
		cart[r] = sum
	}

	return cell.Norm3(prec, cart)
}

func buildPairOffsets(pi, pk cifrecord.Float3, mat [3][3]*big.Float, prec uint, d0, tol *big.Float) [][3]int {
	dmin := new(big.Float).SetPrec(prec).Copy(d0)
	runningSum := new(big.Float).SetPrec(prec)
	runningCount := 0
	var kept [][3]int

	for _, o := range offsets {
		d := candidateDistance(pi, pk, o, mat, prec)

		lower := new(big.Float).SetPrec(prec).Sub(dmin, tol)
		if d.Cmp(lower) < 0 {
			dmin = d
			runningSum = new(big.Float).SetPrec(prec).Copy(d)
			runningCount = 1
			kept = [][3]int{o}
			continue
		}

		diff := new(big.Float).SetPrec(prec).Sub(d, dmin)
		diff.Abs(diff)
		if diff.Cmp(tol) < 0 {
			runningSum.Add(runningSum, d)
			runningCount++
			dmin = new(big.Float).SetPrec(prec).Quo(runningSum, new(big.Float).SetPrec(prec).SetInt64(int64(runningCount)))
			kept = append(kept, o)
		}
	}

	return kept
}

func candidateDistance(pi, pk cifrecord.Float3, o [3]int, mat [3][3]*big.Float, prec uint) *big.Float {
	var diffFrac cifrecord.Float3
	for i := 0; i < 3; i++ {
		shifted := new(big.Float).SetPrec(prec).Add(pk[i], new(big.Float).SetPrec(prec).SetInt64(int64(o[i])))
		diffFrac[i] = new(big.Float).SetPrec(prec).Sub(pi[i], shifted)
	}

	var cart [3]*big.Float
	for r := 0; r < 3; r++ {
		sum := new(big.Float).SetPrec(prec)
		for c := 0; c < 3; c++ {
			term := new(big.Float).SetPrec(prec).Mul(mat[r][c], diffFrac[c])
			sum.Add(sum, term)
		}
		cart[r] = sum
	}

	return cell.Norm3(prec, cart)
}
