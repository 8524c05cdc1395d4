// SPDX-License-Identifier: MIT

// Package crystal holds the tagged-variant data model shared by cluster
// and sbu: Crystal, its optional Clusters payload, and the NoClusters
// sentinel tag. It is a
// leaf package so cluster (which drives the clustering dispatch) and sbu
// (which finds candidate clusters) can both depend on the shared types
// without depending on each other.
package crystal
