// Package symmetry parses and renders crystallographic equivalent-position
// strings such as "-x+1/2, y, z+1/4" into (M, t) affine maps of ℚ³. The
// parser is a small hand-rolled state machine walked over an inline token
// stream; the grammar is simple enough that a generator/coroutine
// abstraction would be overkill.
package symmetry
