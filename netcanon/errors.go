// SPDX-License-Identifier: MIT

package netcanon

import "errors"

// ErrDimensionMismatch is returned when the vertex count implied by the
// graph, the type list, and the placement matrix disagree.
var ErrDimensionMismatch = errors.New("netcanon: graph, types, and placement disagree on vertex count")
