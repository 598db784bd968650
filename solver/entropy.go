package solver

import (
	"math"

	"github.com/arcwave/wfc/bitmask"
)

// entropy computes the Shannon entropy of a cell's possible-pattern
// distribution under weights (spec §4.6.4): for S the set bits of mask,
// with Σw = ΣW[i] and Σwlw = ΣW[i]·ln(W[i]) over i∈S, entropy is
// ln(Σw) − Σwlw/Σw — algebraically Σ −p_i·ln(p_i) with p_i = W[i]/Σw,
// rearranged to save one multiplication per term.
//
// |S| == 0 returns errContradiction: this is a diagnostic condition only,
// reached solely if a caller asks for the entropy of a contradictory cell.
// |S| == 1 returns exactly 0, no floating-point evaluation needed.
//
// Complexity: O(⌈P/64⌉ + |S|).
func entropy(weights []int, mask bitmask.Mask) (float64, error) {
	bits := mask.Bits()
	switch len(bits) {
	case 0:
		return 0, errContradiction
	case 1:
		return 0, nil
	}

	sumW := 0
	sumWlw := 0.0
	for _, i := range bits {
		w := weights[i]
		sumW += w
		sumWlw += float64(w) * math.Log(float64(w))
	}

	return math.Log(float64(sumW)) - sumWlw/float64(sumW), nil
}
