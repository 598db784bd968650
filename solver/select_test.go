package solver

import (
	"math/rand"
	"testing"

	"github.com/arcwave/wfc/wave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectLeastEntropy_AllCollapsedReturnsNotOK(t *testing.T) {
	wv := wave.New(2, 2, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			wv.At(y, x).ClearAll()
			wv.At(y, x).Set(0)
		}
	}
	_, _, ok := selectLeastEntropy(wv, []int{1, 1}, rand.New(rand.NewSource(1)))
	assert.False(t, ok)
}

func TestSelectLeastEntropy_PicksLowerEntropyCell(t *testing.T) {
	wv := wave.New(3, 2, 1)
	// Cell (0,0): 3 equally weighted patterns possible (high entropy).
	// Cell (0,1): 2 equally weighted patterns possible (lower entropy).
	weights := []int{1, 1, 1}
	require.Equal(t, 3, wv.At(0, 0).Popcount())
	wv.At(0, 1).Clear(2)

	y, x, ok := selectLeastEntropy(wv, weights, rand.New(rand.NewSource(2)))
	require.True(t, ok)
	assert.Equal(t, 0, y)
	assert.Equal(t, 1, x)
}

func TestSelectLeastEntropy_IgnoresCollapsedCells(t *testing.T) {
	wv := wave.New(3, 2, 1)
	wv.At(0, 0).ClearAll()
	wv.At(0, 0).Set(0) // collapsed: entropy 0, must be skipped

	y, x, ok := selectLeastEntropy(wv, []int{1, 1, 1}, rand.New(rand.NewSource(3)))
	require.True(t, ok)
	assert.Equal(t, 0, y)
	assert.Equal(t, 1, x)
}

// TestSelectLeastEntropy_TieBreakIsUniformOverCandidates checks that when
// several cells are tied at the minimum entropy, the selection spreads
// across all of them rather than always the first or last scanned.
func TestSelectLeastEntropy_TieBreakIsUniformOverCandidates(t *testing.T) {
	wv := wave.New(2, 3, 1) // three cells, all identical full-set entropy
	weights := []int{1, 1}

	seen := map[[2]int]bool{}
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 200; i++ {
		y, x, ok := selectLeastEntropy(wv, weights, rng)
		require.True(t, ok)
		seen[[2]int{y, x}] = true
	}
	assert.Len(t, seen, 3, "expected all three tied cells to be chosen at least once across many trials")
}
