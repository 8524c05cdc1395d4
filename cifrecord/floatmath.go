// SPDX-License-Identifier: MIT

package cifrecord

import (
	"math/big"

	"github.com/nets-lab/periodicnet/cell"
)

// Cleanup thresholds, in the units the record's fields are already
// expressed in.
const (
	// partialOccupancyEps is the fractional-coordinate distance below
	// which two consecutive (lexicographically sorted) sites are the
	// same atom split by partial occupancy.
	partialOccupancyEps = 4e-4
	// collisionEps is the periodic (Cartesian, Å) distance below which
	// two atoms are considered a collision.
	collisionEps = 0.55
	// symmetryMergeEps is the periodic (Cartesian, Å) distance within
	// which a symmetry image is merged into an existing vertex instead
	// of appended as a new one.
	symmetryMergeEps = 0.5
)

func bigFloor(x *big.Float) *big.Float {
	prec := x.Prec()
	i := new(big.Int)
	x.Int(i)
	xi := new(big.Float).SetPrec(prec).SetInt(i)
	if x.Sign() < 0 && xi.Cmp(x) != 0 {
		xi.Sub(xi, new(big.Float).SetPrec(prec).SetInt64(1))
	}

	return xi
}

func bigCeil(x *big.Float) *big.Float {
	prec := x.Prec()
	f := bigFloor(x)
	if f.Cmp(x) == 0 {
		return f
	}

	return new(big.Float).SetPrec(prec).Add(f, new(big.Float).SetPrec(prec).SetInt64(1))
}

// foldUnit folds x into [0, 1) by subtracting its floor: x - floor(x).
func foldUnit(x *big.Float) *big.Float {
	prec := x.Prec()

	return new(big.Float).SetPrec(prec).Sub(x, bigFloor(x))
}

// foldUnit3 folds each component of v into [0, 1).
func foldUnit3(v Float3) Float3 {
	return Float3{foldUnit(v[0]), foldUnit(v[1]), foldUnit(v[2])}
}

// foldHalfOpen folds x into (-0.5, 0.5]: x - ceil(x - 0.5).
func foldHalfOpen(x *big.Float) *big.Float {
	prec := x.Prec()
	half := new(big.Float).SetPrec(prec).SetFloat64(0.5)
	shifted := new(big.Float).SetPrec(prec).Sub(x, half)

	return new(big.Float).SetPrec(prec).Sub(x, bigCeil(shifted))
}

// euclideanDistance3 is the plain (non-periodic) Euclidean distance
// between two fractional-coordinate triples, used by remove_partial_occupancy.
func euclideanDistance3(a, b Float3) *big.Float {
	prec := a[0].Prec()
	sum := new(big.Float).SetPrec(prec)
	for i := 0; i < 3; i++ {
		d := new(big.Float).SetPrec(prec).Sub(a[i], b[i])
		d.Mul(d, d)
		sum.Add(sum, d)
	}

	return cell.Sqrt(sum)
}

// periodicDistance is the minimum-image periodic distance: the componentwise
// fractional difference folded to (-0.5, 0.5], carried into Cartesian
// space through mat, then measured with the Euclidean norm.
func periodicDistance(mat [3][3]*big.Float, a, b Float3) *big.Float {
	prec := a[0].Prec()
	diff := a.Sub(b)
	folded := Float3{foldHalfOpen(diff[0]), foldHalfOpen(diff[1]), foldHalfOpen(diff[2])}

	var cart [3]*big.Float
	for i := 0; i < 3; i++ {
		sum := new(big.Float).SetPrec(prec)
		for j := 0; j < 3; j++ {
			term := new(big.Float).SetPrec(prec).Mul(mat[i][j], folded[j])
			sum.Add(sum, term)
		}
		cart[i] = sum
	}

	return cell.Norm3(prec, cart)
}

func lt(x, y *big.Float) bool { return x.Cmp(y) < 0 }

// bigConst returns v at the precision r's positions are carried at,
// falling back to cell.DefaultPrecision when r has no atoms yet.
func bigConst(r *Record, v float64) *big.Float {
	prec := uint(cell.DefaultPrecision)
	if r.N() > 0 {
		prec = r.Pos.Col(0)[0].Prec()
	}

	return new(big.Float).SetPrec(prec).SetFloat64(v)
}
