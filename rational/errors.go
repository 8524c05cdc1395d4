package rational

import "errors"

// Sentinel errors for the rational package.
var (
	// ErrSolverOverflow indicates that exact arithmetic exceeded the
	// resource guard this package enforces on intermediate operand size.
	// It is terminal: no wider representation exists once arbitrary
	// precision itself is exhausted.
	ErrSolverOverflow = errors.New("rational: exact arithmetic exceeded resource guard")

	// ErrDivideByZero indicates a division by the zero rational.
	ErrDivideByZero = errors.New("rational: division by zero")
)
