// SPDX-License-Identifier: MIT

// Package sbu provides the Finder collaborator interface referenced by
// cluster's MOFClustering/GuessClustering modes, plus DefaultFinder, a
// reference implementation grouping atoms into candidate secondary
// building units by contracting short bonds into connected components.
// This is a reference/test collaborator, not a production SBU heuristic:
// real SBU detection needs chemistry-specific metal/ligand classification
// that lives outside this module.
package sbu
