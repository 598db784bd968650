package wfc

import "errors"

// Sentinel errors for the root package. Learn and Model forward
// pattern/solver sentinels unwrapped where the underlying package already
// names the condition precisely (see Learn, Model.Generate); these two
// are raised directly by this package.
var (
	// ErrInvalidInput indicates a preset outside the model's pattern count
	// or a Model used before any model was learned.
	ErrInvalidInput = errors.New("wfc: invalid input")

	// ErrUnsatisfiable indicates Generate's presets contradict each other
	// before any randomness is involved; retrying cannot help.
	ErrUnsatisfiable = errors.New("wfc: presets are unsatisfiable")
)
