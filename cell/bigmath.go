// SPDX-License-Identifier: MIT

package cell

import (
	"math"
	"math/big"
)

// DefaultPrecision is the working precision, in bits, used for the
// arbitrary-precision floating-point kernels below. 200 bits is roughly
// 60 decimal digits, comfortably beyond float64's ~15.
const DefaultPrecision = 200

// piDigits is π to 101 decimal places, enough to seed a big.Float at
// DefaultPrecision without computing a series for π itself.
const piDigits = "3.14159265358979323846264338327950288419716939937510582097494459230781640628620899862803482534211706798"

func bigPi(prec uint) *big.Float {
	pi, _, _ := big.ParseFloat(piDigits, 10, prec, big.ToNearestEven)

	return pi
}

func bf(prec uint, v float64) *big.Float {
	return new(big.Float).SetPrec(prec).SetFloat64(v)
}

// bigSqrt returns √x via Newton's method, seeded from a float64 estimate.
// x must be non-negative.
func bigSqrt(x *big.Float) *big.Float {
	prec := x.Prec()
	if x.Sign() <= 0 {
		return new(big.Float).SetPrec(prec)
	}
	f64, _ := x.Float64()
	y := bf(prec, math.Sqrt(f64))
	two := bf(prec, 2)
	for i := 0; i < 64; i++ {
		// y = (y + x/y) / 2
		next := new(big.Float).SetPrec(prec).Quo(x, y)
		next.Add(next, y)
		next.Quo(next, two)
		if next.Cmp(y) == 0 {
			return next
		}
		y = next
	}

	return y
}

// bigSin returns sin(x) via Taylor series, x in radians, after reducing x
// into [-π, π].
func bigSin(x *big.Float) *big.Float {
	prec := x.Prec()
	pi := bigPi(prec)
	xr := reduceToPi(x, pi)

	term := new(big.Float).SetPrec(prec).Copy(xr)
	sum := new(big.Float).SetPrec(prec).Copy(term)
	x2 := new(big.Float).SetPrec(prec).Mul(xr, xr)

	for k := 1; k < 60; k++ {
		denom := bf(prec, float64((2*k)*(2*k+1)))
		term = new(big.Float).SetPrec(prec).Mul(term, x2)
		term.Quo(term, denom)
		term.Neg(term)
		sum.Add(sum, term)
		if isNegligible(term, sum) {
			break
		}
	}

	return sum
}

// bigCos returns cos(x) via Taylor series, x in radians, after reducing x
// into [-π, π].
func bigCos(x *big.Float) *big.Float {
	prec := x.Prec()
	pi := bigPi(prec)
	xr := reduceToPi(x, pi)

	term := bf(prec, 1)
	sum := bf(prec, 1)
	x2 := new(big.Float).SetPrec(prec).Mul(xr, xr)

	for k := 1; k < 60; k++ {
		denom := bf(prec, float64((2*k-1)*(2*k)))
		term = new(big.Float).SetPrec(prec).Mul(term, x2)
		term.Quo(term, denom)
		term.Neg(term)
		sum.Add(sum, term)
		if isNegligible(term, sum) {
			break
		}
	}

	return sum
}

// bigAcos returns acos(x) for x in [-1, 1] via Newton's method on
// cos(θ) - x = 0, seeded from the float64 arccosine.
func bigAcos(x *big.Float) *big.Float {
	prec := x.Prec()
	f64, _ := x.Float64()
	f64 = math.Max(-1, math.Min(1, f64))
	theta := bf(prec, math.Acos(f64))

	for i := 0; i < 40; i++ {
		c := bigCos(theta)
		s := bigSin(theta)
		if s.Sign() == 0 {
			break
		}
		delta := new(big.Float).SetPrec(prec).Sub(c, x)
		delta.Quo(delta, s)
		theta.Add(theta, delta)
		if isNegligible(delta, theta) {
			break
		}
	}

	return theta
}

// reduceToPi folds x into [-π, π] by subtracting the nearest multiple of 2π.
func reduceToPi(x, pi *big.Float) *big.Float {
	prec := x.Prec()
	twoPi := new(big.Float).SetPrec(prec).Mul(pi, bf(prec, 2))
	q := new(big.Float).SetPrec(prec).Quo(x, twoPi)
	f64, _ := q.Float64()
	n := math.Round(f64)
	shift := new(big.Float).SetPrec(prec).Mul(twoPi, bf(prec, n))

	return new(big.Float).SetPrec(prec).Sub(x, shift)
}

// isNegligible reports whether term is small enough relative to sum that
// continuing the series would not change the result at the working
// precision.
func isNegligible(term, sum *big.Float) bool {
	if term.Sign() == 0 {
		return true
	}
	prec := sum.Prec()
	scale := new(big.Float).SetPrec(prec).SetMantExp(bf(prec, 1), -int(prec))
	bound := new(big.Float).SetPrec(prec).Abs(sum)
	bound.Mul(bound, scale)

	return new(big.Float).Abs(term).Cmp(bound) < 0
}

// degToRad converts a degree value to radians at the given precision.
func degToRad(deg *big.Float, prec uint) *big.Float {
	pi := bigPi(prec)
	r := new(big.Float).SetPrec(prec).Mul(deg, pi)
	r.Quo(r, bf(prec, 180))

	return r
}

// radToDeg converts a radian value to degrees at the given precision.
func radToDeg(rad *big.Float, prec uint) *big.Float {
	pi := bigPi(prec)
	d := new(big.Float).SetPrec(prec).Mul(rad, bf(prec, 180))
	d.Quo(d, pi)

	return d
}
