package pattern

import "errors"

// Sentinel errors for pattern learning.
var (
	// ErrInvalidInput indicates n < 1, an empty image list, or an image
	// smaller than n in either dimension.
	ErrInvalidInput = errors.New("pattern: invalid input")
)
