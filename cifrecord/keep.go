// SPDX-License-Identifier: MIT

package cifrecord

import "github.com/nets-lab/periodicnet/warn"

// KeepAtoms restricts the record to the given vertex indices, then
// drops any palette entries no longer referenced by the remaining
// atoms and remaps the survivors' palette indices densely.
func KeepAtoms(r *Record, keepIdxs []int, warnFn warn.Func) *Record {
	restricted := r.withSelection(keepIdxs)

	referenced := make([]bool, len(r.Palette))
	for _, t := range restricted.Types {
		referenced[t] = true
	}

	remap := make([]int, len(r.Palette))
	var newPalette []string
	for old, keep := range referenced {
		if !keep {
			remap[old] = -1
			continue
		}
		remap[old] = len(newPalette)
		newPalette = append(newPalette, r.Palette[old])
	}

	for i, t := range restricted.Types {
		restricted.Types[i] = remap[t]
	}
	restricted.Palette = newPalette

	warn.Emit(warnFn, "cifrecord: KeepAtoms restricted to %d atoms", len(keepIdxs))

	return restricted
}
