// SPDX-License-Identifier: MIT

// Package warn defines the injected warning gate: the core never decides
// on its own whether a warning is visible, it only calls an opaque
// predicate supplied by the caller. This keeps every transform in
// cifrecord, symmetry, and pipeline pure and independently testable,
// following the module's functional-options style rather than reaching
// for a logging framework.
package warn

// Func receives a printf-style warning message. The zero value is not
// callable; use NoOp() or a caller-supplied function.
type Func func(format string, args ...any)

// NoOp returns a Func that discards every message. It is the default used
// throughout the pipeline when no warning sink is configured.
func NoOp() Func { return func(string, ...any) {} }

// Emit calls f if it is non-nil, so callers never need a nil check.
func Emit(f Func, format string, args ...any) {
	if f != nil {
		f(format, args...)
	}
}
