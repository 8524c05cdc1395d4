// SPDX-License-Identifier: MIT

package cifrecord

import (
	"math/big"

	"github.com/nets-lab/periodicnet/pgraph"
	"github.com/nets-lab/periodicnet/symmetry"
	"github.com/nets-lab/periodicnet/warn"
)

// ExpandSymmetry applies every one of the cell's equivalent positions to
// each atom of r's original vertex set. The source set stays fixed at
// its original size across operators rather than growing as images are
// appended: a CIF's listed equivalents already form a complete coset of
// the space group, so applying each operator once to the original atoms
// reproduces the same orbit as recursively re-applying operators to
// their own images, without that recursion's risk of runaway growth. An
// image within 0.5 Å periodic distance of an already-present vertex is
// merged into it; otherwise it is appended, copying the source atom's
// palette index. Bonds of the original record are carried onto the
// corresponding image pairs. The expanded record is finally passed
// through PruneCollisions.
func ExpandSymmetry(r *Record, warnFn warn.Func) *Record {
	n0 := r.N()
	prec := precisionOf(r)

	positions := make([]Float3, n0)
	types := make([]int, n0)
	for i := 0; i < n0; i++ {
		positions[i] = r.Pos.Col(i).Clone()
		types[i] = r.Types[i]
	}

	type pair struct{ u, v int }
	bondSet := map[pair]bool{}
	for i := 0; i < n0; i++ {
		for j := i + 1; j < n0; j++ {
			if r.Bonds.Get(i, j) {
				bondSet[pair{i, j}] = true
			}
		}
	}

	for _, eq := range r.Cell.Equivalents {
		imageOf := make([]int, n0)
		for v := 0; v < n0; v++ {
			img := foldUnit3(applyEquivalentFloat(eq, r.Pos.Col(v), prec))

			found := -1
			for k := 0; k < len(positions); k++ {
				d := periodicDistance(r.Cell.Matrix, img, positions[k])
				if lt(d, bigConst(r, symmetryMergeEps)) {
					found = k
					break
				}
			}

			if found >= 0 {
				imageOf[v] = found
				continue
			}

			positions = append(positions, img)
			types = append(types, r.Types[v])
			imageOf[v] = len(positions) - 1
		}

		for i := 0; i < n0; i++ {
			for j := i + 1; j < n0; j++ {
				if !r.Bonds.Get(i, j) {
					continue
				}
				u, v := imageOf[i], imageOf[j]
				if u == v {
					continue
				}
				if u > v {
					u, v = v, u
				}
				bondSet[pair{u, v}] = true
			}
		}
	}

	n := len(positions)
	bonds := pgraph.NewBoolMatrix(n)
	for p := range bondSet {
		bonds.Set(p.u, p.v, true)
	}

	meta := make(map[string]any, len(r.Meta))
	for k, v := range r.Meta {
		meta[k] = v
	}

	expanded := &Record{
		Meta:    meta,
		Cell:    r.Cell,
		Palette: append([]string(nil), r.Palette...),
		Types:   types,
		Pos:     NewFloatMat3xNFromCols(positions),
		Bonds:   bonds,
	}

	return PruneCollisions(expanded, warnFn)
}

func precisionOf(r *Record) uint {
	if r.N() > 0 {
		return r.Pos.Col(0)[0].Prec()
	}

	return 200
}

// applyEquivalentFloat applies eq's affine map M·v + t to v, converting
// eq's exact rational coefficients to big.Float at prec bits.
func applyEquivalentFloat(eq *symmetry.EquivalentPosition, v Float3, prec uint) Float3 {
	out := newFloat3(prec)
	for i := 0; i < 3; i++ {
		sum := new(big.Float).SetPrec(prec).SetRat(eq.T[i].Big())
		for j := 0; j < 3; j++ {
			coef := new(big.Float).SetPrec(prec).SetRat(eq.M[i][j].Big())
			term := new(big.Float).SetPrec(prec).Mul(coef, v[j])
			sum.Add(sum, term)
		}
		out[i] = sum
	}

	return out
}
