// SPDX-License-Identifier: MIT

// Package netcanon implements net canonicalization: folding a solved
// rational placement into [0,1)³, sorting vertices into a deterministic
// order, and relabeling the periodic graph to match.
package netcanon
