// SPDX-License-Identifier: MIT

package cluster

import (
	"errors"
	"fmt"

	"github.com/nets-lab/periodicnet/crystal"
	"github.com/nets-lab/periodicnet/netcanon"
	"github.com/nets-lab/periodicnet/netsolve"
	"github.com/nets-lab/periodicnet/sbu"
)

// Build resolves cr's vertices under mode (individual atoms, or SBU
// super-vertices), then drives the equilibrium solve and
// canonicalization over whatever graph that resolution produced.
func Build(mode Mode, cr crystal.Crystal[any], finder sbu.Finder) (*CrystalNet[crystal.NoClusters], error) {
	resolved, err := resolve(mode, cr, finder)
	if err != nil {
		return nil, err
	}

	a, y := netsolve.Assemble(resolved.Graph)
	x, err := netsolve.Solve(a, y)
	if err != nil {
		return nil, fmt.Errorf("cluster: solve: %w", err)
	}

	net, err := netcanon.Canonicalize(resolved.Cell, resolved.Types, resolved.Graph, x)
	if err != nil {
		return nil, fmt.Errorf("cluster: canonicalize: %w", err)
	}

	return &CrystalNet[crystal.NoClusters]{CrystalNet: net, Tag: crystal.NoClusters{}}, nil
}

func resolve(mode Mode, cr crystal.Crystal[any], finder sbu.Finder) (crystal.Crystal[crystal.NoClusters], error) {
	switch mode {
	case InputClustering:
		clusters, ok := cr.Tag.(crystal.Clusters)
		if !ok {
			return crystal.Crystal[crystal.NoClusters]{}, MissingClusters
		}

		return coalesce(withTag(cr, clusters)), nil

	case EachVertexClustering:
		return withTag(cr, crystal.NoClusters{}), nil

	case MOFClustering:
		return mofCluster(cr, finder)

	case GuessClustering:
		net, err := mofCluster(cr, finder)
		if err == nil && net.Graph.N > 1 {
			return net, nil
		}
		if errors.Is(err, MissingAtomInformation) {
			return withTag(cr, crystal.NoClusters{}), nil
		}

		return crystal.Crystal[crystal.NoClusters]{}, err

	case AutomaticClustering:
		if clusters, ok := cr.Tag.(crystal.Clusters); ok {
			return coalesce(withTag(cr, clusters)), nil
		}

		return resolve(GuessClustering, cr, finder)

	default:
		return crystal.Crystal[crystal.NoClusters]{}, fmt.Errorf("cluster: unknown mode %v", mode)
	}
}

func mofCluster(cr crystal.Crystal[any], finder sbu.Finder) (crystal.Crystal[crystal.NoClusters], error) {
	found, err := finder.FindSBUs(withTag(cr, crystal.NoClusters{}))
	if err != nil {
		return crystal.Crystal[crystal.NoClusters]{}, err
	}
	if found.NonTrivialCount() <= 1 {
		return crystal.Crystal[crystal.NoClusters]{}, MissingAtomInformation
	}

	return coalesce(withTag(cr, found)), nil
}

func withTag[C any](cr crystal.Crystal[any], tag C) crystal.Crystal[C] {
	return crystal.Crystal[C]{
		Cell:  cr.Cell,
		Types: cr.Types,
		Pos:   cr.Pos,
		Graph: cr.Graph,
		Tag:   tag,
	}
}
