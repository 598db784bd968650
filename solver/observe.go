package solver

import (
	"math/rand"

	"github.com/arcwave/wfc/bitmask"
)

// observe performs the weighted random collapse of spec §4.6.1: draws r
// uniformly in [0, T) where T = Σ W[i] over the cell's possible patterns,
// then walks those patterns in ascending index order accumulating a running
// sum, picking the first index whose running sum is ≥ r. The mask is then
// cleared to that single bit.
//
// mask must be nonempty; Solve never calls observe on a cell that
// propagation has not already certified nonempty.
//
// Complexity: O(⌈P/64⌉ + |S|).
func observe(mask bitmask.Mask, weights []int, rng *rand.Rand) {
	bits := mask.Bits()
	total := 0
	for _, i := range bits {
		total += weights[i]
	}

	r := rng.Intn(total)
	chosen := bits[len(bits)-1]
	cum := 0
	for _, i := range bits {
		cum += weights[i]
		if cum >= r {
			chosen = i
			break
		}
	}

	mask.ClearAll()
	mask.Set(chosen)
}
