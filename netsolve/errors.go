package netsolve

import "errors"

// ErrSingularSystem indicates the reduced Laplacian-like system has no
// pivot in some column: the anchored graph is disconnected or otherwise
// degenerate, which should not happen for a graph that passed
// dimensionality filtering but is guarded against here rather than
// assumed away.
var ErrSingularSystem = errors.New("netsolve: reduced system is singular")
