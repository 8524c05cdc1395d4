package symmetry

import "errors"

// ErrSymmetryParse indicates an ill-formed equivalent-position operator
// string: an unknown identifier, a malformed fraction, a missing
// coefficient in some dimension, or a dimension count other than three.
var ErrSymmetryParse = errors.New("symmetry: malformed equivalent-position string")
