// Package edgebuild implements the periodic edge builder: for
// every bonded pair of atoms, enumerate the 27 lattice offsets in
// {-1,0,1}³ and keep those achieving (or tying) the minimum Cartesian
// distance between the pair's periodic images.
package edgebuild
