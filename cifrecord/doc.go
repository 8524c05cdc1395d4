// Package cifrecord holds the CIF-collaborator record and its four
// pure cleanup transforms: RemovePartialOccupancy, PruneCollisions,
// ExpandSymmetry, KeepAtoms. Every transform returns a new *Record rather
// than mutating its input, matching the copy-not-mutate discipline the
// core relies on for its determinism guarantee.
package cifrecord
