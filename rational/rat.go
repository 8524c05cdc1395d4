// SPDX-License-Identifier: MIT

package rational

import (
	"math/big"
)

// maxOperandBits bounds the bit-length of any numerator or denominator this
// package will carry through an intermediate computation, standing in for
// fixed-width multiplication overflow: with arbitrary-precision backing
// arithmetic the only realistic overflow is unbounded resource growth on
// a pathological input, so operations that would cross this guard fail
// with ErrSolverOverflow instead of silently consuming unbounded memory.
const maxOperandBits = 1 << 20 // 1,048,576 bits (~131 KB per operand)

// Rat is an exact rational number. The zero value is not usable; construct
// with NewRat, NewInt, or FromBigRat.
type Rat struct {
	v *big.Rat
}

// NewRat returns the exact rational num/den, reduced to lowest terms.
// Panics if den == 0 (programmer error, mirrors big.Rat.SetFrac).
func NewRat(num, den int64) *Rat {
	return &Rat{v: new(big.Rat).SetFrac64(num, den)}
}

// NewInt returns the exact rational n/1.
func NewInt(n int64) *Rat {
	return &Rat{v: new(big.Rat).SetInt64(n)}
}

// Zero returns the exact rational 0.
func Zero() *Rat { return NewInt(0) }

// One returns the exact rational 1.
func One() *Rat { return NewInt(1) }

// FromBigRat returns a Rat holding a copy of r, so later changes to r do
// not affect it; Rat's arithmetic methods always allocate fresh results.
func FromBigRat(r *big.Rat) *Rat {
	return &Rat{v: new(big.Rat).Set(r)}
}

// FromBigInts returns the exact rational num/den.
func FromBigInts(num, den *big.Int) *Rat {
	return &Rat{v: new(big.Rat).SetFrac(num, den)}
}

// Big returns the underlying *big.Rat (a defensive copy).
func (r *Rat) Big() *big.Rat {
	return new(big.Rat).Set(r.v)
}

// Num returns the (signed) numerator in lowest terms.
func (r *Rat) Num() *big.Int { return new(big.Int).Set(r.v.Num()) }

// Denom returns the (positive) denominator in lowest terms.
func (r *Rat) Denom() *big.Int { return new(big.Int).Set(r.v.Denom()) }

// checkBits guards against pathological operand growth; see maxOperandBits.
func checkBits(ints ...*big.Int) error {
	for _, x := range ints {
		if x.BitLen() > maxOperandBits {
			return ErrSolverOverflow
		}
	}

	return nil
}

// Add returns r+o.
func (r *Rat) Add(o *Rat) *Rat { return &Rat{v: new(big.Rat).Add(r.v, o.v)} }

// Sub returns r-o.
func (r *Rat) Sub(o *Rat) *Rat { return &Rat{v: new(big.Rat).Sub(r.v, o.v)} }

// Mul returns r*o.
func (r *Rat) Mul(o *Rat) *Rat { return &Rat{v: new(big.Rat).Mul(r.v, o.v)} }

// Neg returns -r.
func (r *Rat) Neg() *Rat { return &Rat{v: new(big.Rat).Neg(r.v)} }

// Quo returns r/o. Panics if o is zero, mirroring big.Rat.Quo.
func (r *Rat) Quo(o *Rat) *Rat { return &Rat{v: new(big.Rat).Quo(r.v, o.v)} }

// Cmp compares r and o: -1, 0, or +1.
func (r *Rat) Cmp(o *Rat) int { return r.v.Cmp(o.v) }

// Sign returns -1, 0, or +1 according to the sign of r.
func (r *Rat) Sign() int { return r.v.Sign() }

// IsZero reports whether r == 0.
func (r *Rat) IsZero() bool { return r.v.Sign() == 0 }

// Equal reports whether r == o.
func (r *Rat) Equal(o *Rat) bool { return r.v.Cmp(o.v) == 0 }

// Clone returns an independent copy of r.
func (r *Rat) Clone() *Rat { return &Rat{v: new(big.Rat).Set(r.v)} }

// String renders r as "num/den" (or "num" when the denominator is 1),
// matching big.Rat.RatString.
func (r *Rat) String() string { return r.v.RatString() }

// Float64 returns the nearest float64 to r. It exists only for diagnostics
// and test assertions; the pipeline itself never uses it for placement.
func (r *Rat) Float64() float64 {
	f, _ := r.v.Float64()

	return f
}

// Floor returns ⌊r⌋ as a *big.Int, and BackToUnit returns
// r-⌊r⌋ ∈ [0,1). Both use Euclidean integer division on numerator/denominator
// (the denominator of a reduced big.Rat is always positive, so Euclidean
// DivMod coincides with floor division).
func (r *Rat) Floor() *big.Int {
	q, m := new(big.Int), new(big.Int)
	q.DivMod(r.v.Num(), r.v.Denom(), m)

	return q
}

// BackToUnit folds r into [0,1): r - ⌊r⌋.
func BackToUnit(r *Rat) *Rat {
	num, den := r.v.Num(), r.v.Denom()
	q, m := new(big.Int), new(big.Int)
	q.DivMod(num, den, m)

	return FromBigInts(m, new(big.Int).Set(den))
}
