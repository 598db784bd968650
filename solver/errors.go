package solver

import "errors"

// Sentinel errors for the solver.
var (
	// ErrInvalidInput indicates nonpositive width/height, zero learned
	// patterns, a weights/adjacency length mismatch, or maxAttempts < 1.
	ErrInvalidInput = errors.New("solver: invalid input")

	// ErrUnsatisfiable indicates presets alone (no randomness involved)
	// already produce a contradiction during the preset-only pre-pass.
	// Retrying cannot help, so Solve returns this immediately.
	ErrUnsatisfiable = errors.New("solver: presets are unsatisfiable")
)

// errContradiction is raised only by entropy when asked about an empty
// cell. It is a programmer-error signal, not a user-facing condition: by
// construction, Solve never calls entropy on a cell that propagate has not
// already certified nonempty. It must never escape this package.
var errContradiction = errors.New("solver: entropy requested for a contradictory cell")
