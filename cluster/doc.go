// SPDX-License-Identifier: MIT

// Package cluster implements the clustering selector: the Mode enum,
// the mode-dispatch table that decides whether a periodic net's
// vertices are individual atoms or SBU super-vertices, and the final
// CrystalNet[C] wrapper that wraps the canonical net once that choice
// is resolved.
package cluster
