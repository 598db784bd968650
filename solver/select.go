package solver

import (
	"math/rand"

	"github.com/arcwave/wfc/cellqueue"
	"github.com/arcwave/wfc/wave"
)

// selectLeastEntropy scans every cell of wv, tracking the minimum entropy
// strictly greater than 0 and every cell achieving it (spec §4.6.3).
// Collapsed cells (entropy exactly 0) are ignored. Ties are broken by
// uniform random selection over the tied set, not scan order.
//
// The tie comparison uses exact floating-point equality against the
// tracked minimum (spec §9, open question (b)): this matches historical
// WFC implementations and is acceptable per spec since entropy values for
// distinct cells sharing a possibility-count-and-weight profile are
// bit-for-bit identical (same deterministic formula, same inputs).
//
// ok is false when every cell is collapsed (the wave is fully solved).
//
// Complexity: O(H·W·⌈P/64⌉).
func selectLeastEntropy(wv *wave.Wave, weights []int, rng *rand.Rand) (y, x int, ok bool) {
	minEntropy := 0.0
	var candidates []cellqueue.Cell

	for cy := 0; cy < wv.H; cy++ {
		for cx := 0; cx < wv.W; cx++ {
			mask := wv.At(cy, cx)
			if mask.Popcount() <= 1 {
				continue // collapsed: entropy 0, not a candidate
			}
			e, err := entropy(weights, mask)
			if err != nil {
				// A propagate pass already certifies every cell nonempty
				// before selection runs; reaching this means that
				// invariant was violated by a bug elsewhere in the core.
				panic("solver: selectLeastEntropy encountered a contradictory cell")
			}

			switch {
			case len(candidates) == 0 || e < minEntropy:
				minEntropy = e
				candidates = candidates[:0]
				candidates = append(candidates, cellqueue.Cell{Y: cy, X: cx})
			case e == minEntropy:
				candidates = append(candidates, cellqueue.Cell{Y: cy, X: cx})
			}
		}
	}

	if len(candidates) == 0 {
		return 0, 0, false
	}

	chosen := candidates[rng.Intn(len(candidates))]
	return chosen.Y, chosen.X, true
}
