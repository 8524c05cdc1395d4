// SPDX-License-Identifier: MIT

package cifrecord

import "github.com/nets-lab/periodicnet/warn"

// PruneCollisions removes colliding atoms: any atom that
// participates in a pair with periodic distance below 0.55 Å is removed,
// with a warning if the removed set is non-empty.
func PruneCollisions(r *Record, warnFn warn.Func) *Record {
	n := r.N()
	eps := bigConst(r, collisionEps)
	remove := make([]bool, n)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := periodicDistance(r.Cell.Matrix, r.Pos.Col(i), r.Pos.Col(j))
			if lt(d, eps) {
				remove[i] = true
				remove[j] = true
			}
		}
	}

	removedAny := false
	var idxs []int
	for i := 0; i < n; i++ {
		if remove[i] {
			removedAny = true
			continue
		}
		idxs = append(idxs, i)
	}

	if !removedAny {
		return r.withSelection(identityPerm(n))
	}
	warn.Emit(warnFn, "cifrecord: PruneCollisions removed colliding sites")

	return r.withSelection(idxs)
}
