package regions

import "errors"

// Sentinel errors for the regions package.
var (
	// ErrEmptyGrid indicates the input tilemap has no rows or no columns.
	ErrEmptyGrid = errors.New("regions: tilemap must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("regions: all rows must have the same length")

	// ErrEmptyRegion indicates BridgeCost was given a src or dst with no cells.
	ErrEmptyRegion = errors.New("regions: src and dst must each contain at least one cell")

	// ErrMixedRegion indicates src's cells do not all share the same tile,
	// so there is no single tile value to retile the bridge path toward.
	ErrMixedRegion = errors.New("regions: src cells must all share one tile value")

	// ErrNoBridge indicates dst is unreachable from src even after allowing
	// every cell not matching src's tile to be retiled (this can only happen
	// if a coordinate in src or dst lies outside the grid).
	ErrNoBridge = errors.New("regions: no path between src and dst")
)
