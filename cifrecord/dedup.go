// SPDX-License-Identifier: MIT

package cifrecord

import (
	"sort"

	"github.com/nets-lab/periodicnet/warn"
)

// RemovePartialOccupancy collapses partial-occupancy duplicates: sort
// atoms by fractional position lexicographically, treat consecutive sites
// closer than 4·10⁻⁴ as the same atom (keeping the smaller original
// index), and warn if any were removed.
func RemovePartialOccupancy(r *Record, warnFn warn.Func) *Record {
	n := r.N()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return lexLess(r.Pos.Col(order[i]), r.Pos.Col(order[j]))
	})

	keep := make([]bool, n)
	for i := range keep {
		keep[i] = true
	}

	eps := bigConst(r, partialOccupancyEps)
	removedAny := false
	if n > 0 {
		prev := order[0]
		for i := 1; i < n; i++ {
			cur := order[i]
			d := euclideanDistance3(r.Pos.Col(prev), r.Pos.Col(cur))
			if lt(d, eps) {
				survivor, dropped := prev, cur
				if cur < prev {
					survivor, dropped = cur, prev
				}
				keep[dropped] = false
				removedAny = true
				prev = survivor
			} else {
				prev = cur
			}
		}
	}

	if !removedAny {
		return r.withSelection(identityPerm(n))
	}
	warn.Emit(warnFn, "cifrecord: RemovePartialOccupancy removed duplicate sites")

	var idxs []int
	for i := 0; i < n; i++ {
		if keep[i] {
			idxs = append(idxs, i)
		}
	}

	return r.withSelection(idxs)
}

func lexLess(a, b Float3) bool {
	for i := 0; i < 3; i++ {
		if c := a[i].Cmp(b[i]); c != 0 {
			return c < 0
		}
	}

	return false
}
