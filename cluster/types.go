// SPDX-License-Identifier: MIT

package cluster

import "github.com/nets-lab/periodicnet/netcanon"

// Mode selects how Build resolves a crystal's vertices into the net
// the solve and canonicalization stages ultimately place and canonicalize.
type Mode int

const (
	// InputClustering requires clusters already attached to the input.
	InputClustering Mode = iota
	// EachVertexClustering discards any clustering; every atom is its
	// own vertex.
	EachVertexClustering
	// MOFClustering runs the injected sbu.Finder.
	MOFClustering
	// GuessClustering tries MOFClustering, falling back to
	// EachVertexClustering when SBU detection finds nothing usable.
	GuessClustering
	// AutomaticClustering uses existing clusters if present, otherwise
	// behaves like GuessClustering.
	AutomaticClustering
)

// String renders the mode's name.
func (m Mode) String() string {
	switch m {
	case InputClustering:
		return "InputClustering"
	case EachVertexClustering:
		return "EachVertexClustering"
	case MOFClustering:
		return "MOFClustering"
	case GuessClustering:
		return "GuessClustering"
	case AutomaticClustering:
		return "AutomaticClustering"
	default:
		return "Mode(?)"
	}
}

// CrystalNet is the tagged-variant wrapper: the plain netcanon.CrystalNet
// canonicalization produces, tagged with the clustering payload C that
// fed into it. Build always tags its result with NoClusters, since by
// the time canonicalization has run, the net's vertices are already
// whatever the clustering selector decided they should be.
type CrystalNet[C any] struct {
	*netcanon.CrystalNet
	Tag C
}
