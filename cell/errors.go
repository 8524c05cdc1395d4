package cell

import "errors"

// ErrDegenerateCell indicates that the supplied cell parameters do not
// describe a valid triclinic cell: γ is 0 or 180° (sinγ == 0), or the
// omega radicand 1 - cos²α - cos²β - cos²γ + 2cosα·cosβ·cosγ is negative.
var ErrDegenerateCell = errors.New("cell: degenerate cell parameters")
