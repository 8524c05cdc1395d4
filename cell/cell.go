// SPDX-License-Identifier: MIT

package cell

import (
	"math/big"

	"github.com/nets-lab/periodicnet/symmetry"
)

// Cell is a triclinic unit cell: a lattice-system tag, a Hermann–
// Mauguin space-group symbol, a tabulated group number, an upper-triangular
// Cartesian basis Matrix (columns are the Cartesian coordinates of a, b, c),
// and the cell's EquivalentPositions. Created once per CIF record and
// thereafter only copy-with-replaced via With* methods.
type Cell struct {
	LatticeSystem string
	HMSymbol      string
	GroupNumber   int
	Matrix        [3][3]*big.Float
	Equivalents   []*symmetry.EquivalentPosition
}

// NewCell builds a Cell's Cartesian basis from (a, b, c, α, β, γ) with
// lengths in Å and angles in degrees, using the closed form:
//
//	[ a   b·cosγ   c·cosβ
//	  0   b·sinγ   c·(cosα − cosβ·cosγ)/sinγ
//	  0   0        c·ω/sinγ ]
//
// with ω = √(1 − cos²α − cos²β − cos²γ + 2·cosα·cosβ·cosγ). Returns
// ErrDegenerateCell if sinγ == 0 or the ω radicand is negative.
func NewCell(latticeSystem, hmSymbol string, groupNumber int, a, b, c, alpha, beta, gamma *big.Float) (*Cell, error) {
	prec := uint(DefaultPrecision)

	radA := degToRad(alpha, prec)
	radB := degToRad(beta, prec)
	radG := degToRad(gamma, prec)

	cosA, cosB, cosG := bigCos(radA), bigCos(radB), bigCos(radG)
	sinG := bigSin(radG)

	if sinG.Sign() == 0 {
		return nil, ErrDegenerateCell
	}

	// ω² = 1 - cos²α - cos²β - cos²γ + 2·cosα·cosβ·cosγ
	one := bf(prec, 1)
	omega2 := new(big.Float).SetPrec(prec).Copy(one)
	omega2.Sub(omega2, mul(prec, cosA, cosA))
	omega2.Sub(omega2, mul(prec, cosB, cosB))
	omega2.Sub(omega2, mul(prec, cosG, cosG))
	omega2.Add(omega2, mul(prec, bf(prec, 2), mul(prec, cosA, mul(prec, cosB, cosG))))
	if omega2.Sign() < 0 {
		return nil, ErrDegenerateCell
	}
	omega := bigSqrt(omega2)

	m := [3][3]*big.Float{}
	m[0][0] = new(big.Float).SetPrec(prec).Copy(a)
	m[0][1] = mul(prec, b, cosG)
	m[0][2] = mul(prec, c, cosB)

	m[1][0] = bf(prec, 0)
	m[1][1] = mul(prec, b, sinG)
	m[1][2] = new(big.Float).SetPrec(prec).Quo(mul(prec, c, new(big.Float).SetPrec(prec).Sub(cosA, mul(prec, cosB, cosG))), sinG)

	m[2][0] = bf(prec, 0)
	m[2][1] = bf(prec, 0)
	m[2][2] = new(big.Float).SetPrec(prec).Quo(mul(prec, c, omega), sinG)

	return &Cell{
		LatticeSystem: latticeSystem,
		HMSymbol:      hmSymbol,
		GroupNumber:   groupNumber,
		Matrix:        m,
	}, nil
}

func mul(prec uint, a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(prec).Mul(a, b)
}

// CellParameters is the stated inverse of NewCell: it recovers
// (a, b, c, α, β, γ) from an upper-triangular Cartesian basis matrix via
// column norms and pairwise angles (acos).
func CellParameters(m [3][3]*big.Float) (a, b, c, alpha, beta, gamma *big.Float) {
	prec := uint(DefaultPrecision)
	colA := [3]*big.Float{m[0][0], m[1][0], m[2][0]}
	colB := [3]*big.Float{m[0][1], m[1][1], m[2][1]}
	colC := [3]*big.Float{m[0][2], m[1][2], m[2][2]}

	a = norm3(prec, colA)
	b = norm3(prec, colB)
	c = norm3(prec, colC)

	alpha = radToDeg(angleBetween(prec, colB, colC, b, c), prec)
	beta = radToDeg(angleBetween(prec, colA, colC, a, c), prec)
	gamma = radToDeg(angleBetween(prec, colA, colB, a, b), prec)

	return a, b, c, alpha, beta, gamma
}

func norm3(prec uint, v [3]*big.Float) *big.Float {
	sum := bf(prec, 0)
	for _, x := range v {
		sum.Add(sum, mul(prec, x, x))
	}

	return bigSqrt(sum)
}

// Norm3 is the exported form of norm3, reused by cifrecord for periodic
// distance computation so both packages share one Euclidean-norm kernel
// over big.Float.
func Norm3(prec uint, v [3]*big.Float) *big.Float {
	return norm3(prec, v)
}

// Sqrt is the exported form of bigSqrt.
func Sqrt(x *big.Float) *big.Float {
	return bigSqrt(x)
}

func dot3(prec uint, u, v [3]*big.Float) *big.Float {
	sum := bf(prec, 0)
	for i := 0; i < 3; i++ {
		sum.Add(sum, mul(prec, u[i], v[i]))
	}

	return sum
}

func angleBetween(prec uint, u, v [3]*big.Float, normU, normV *big.Float) *big.Float {
	d := dot3(prec, u, v)
	denom := mul(prec, normU, normV)
	if denom.Sign() == 0 {
		return bf(prec, 0)
	}
	cosT := new(big.Float).SetPrec(prec).Quo(d, denom)

	return bigAcos(cosT)
}

// WithEquivalents returns a copy of c with its Equivalents replaced; a
// Cell is otherwise immutable once built.
func (c *Cell) WithEquivalents(eqs []*symmetry.EquivalentPosition) *Cell {
	cp := *c
	cp.Equivalents = eqs

	return &cp
}

// WithMatrix returns a copy of c with its Matrix replaced.
func (c *Cell) WithMatrix(m [3][3]*big.Float) *Cell {
	cp := *c
	cp.Matrix = m

	return &cp
}

// WithoutEquivalents returns a copy of c with Equivalents cleared, used
// by netcanon to express a net in its asymmetric form directly.
func (c *Cell) WithoutEquivalents() *Cell {
	return c.WithEquivalents(nil)
}
