package edgebuild

import "errors"

// ErrEmptyGraph indicates a bond matrix with no bonds set: either no
// atoms at all, or atoms with nothing bonded between them.
var ErrEmptyGraph = errors.New("edgebuild: empty bond matrix")
