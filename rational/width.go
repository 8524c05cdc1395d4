// SPDX-License-Identifier: MIT

package rational

import "math/big"

// Width names a rung on the integer-widening ladder: the
// numerator/denominator width a solved placement's rationals are reported
// in. The ladder is finite and static, chosen up front rather than derived
// through reflection.
type Width int

const (
	// W8 fits signed 8-bit numerators/denominators, i.e. [-128, 127].
	W8 Width = iota
	// W16 fits signed 16-bit values.
	W16
	// W32 fits signed 32-bit values.
	W32
	// W64 fits signed 64-bit values.
	W64
	// W128 fits signed 128-bit values.
	W128
	// WBig means no fixed width sufficed; values are arbitrary precision.
	WBig
)

// widthLadder enumerates the fixed widths in ascending order, matching the
// ladder text 8 → 16 → 32 → 64 → 128 → arbitrary-precision.
var widthLadder = []Width{W8, W16, W32, W64, W128}

// String renders the width's conventional name.
func (w Width) String() string {
	switch w {
	case W8:
		return "int8"
	case W16:
		return "int16"
	case W32:
		return "int32"
	case W64:
		return "int64"
	case W128:
		return "int128"
	default:
		return "bigint"
	}
}

// bits returns the signed-integer bit width for a fixed rung, or 0 for WBig.
func (w Width) bits() int {
	switch w {
	case W8:
		return 8
	case W16:
		return 16
	case W32:
		return 32
	case W64:
		return 64
	case W128:
		return 128
	default:
		return 0
	}
}

// bounds returns the inclusive [lo, hi] signed range representable at w.
// WBig has no finite bound; callers must special-case it.
func (w Width) bounds() (lo, hi *big.Int) {
	bits := w.bits()
	hi = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(bits-1)), big.NewInt(1))
	lo = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), uint(bits-1)))

	return lo, hi
}

// Fits reports whether every numerator and denominator in r would be
// representable at width w. WBig always fits.
func Fits(w Width, r *Rat) bool {
	if w == WBig {
		return true
	}
	lo, hi := w.bounds()
	n, d := r.Num(), r.Denom()

	return n.Cmp(lo) >= 0 && n.Cmp(hi) <= 0 && d.Cmp(lo) >= 0 && d.Cmp(hi) <= 0
}

// SelectWidth applies the width-selection rule: let m and M be the
// minimum and maximum over every numerator and denominator appearing in rs,
// and return the first rung of the ladder whose range contains [m, M],
// falling back to WBig when no fixed rung suffices. An empty rs selects W8.
func SelectWidth(rs []*Rat) Width {
	if len(rs) == 0 {
		return W8
	}

	m, M := rs[0].Num(), rs[0].Num()
	consider := func(x *big.Int) {
		if x.Cmp(m) < 0 {
			m = x
		}
		if x.Cmp(M) > 0 {
			M = x
		}
	}
	for _, r := range rs {
		consider(r.Num())
		consider(r.Denom())
	}

	for _, w := range widthLadder {
		lo, hi := w.bounds()
		if m.Cmp(lo) >= 0 && M.Cmp(hi) <= 0 {
			return w
		}
	}

	return WBig
}
