package wave_test

import (
	"testing"

	"github.com/arcwave/wfc/bitmask"
	"github.com/arcwave/wfc/wave"
	"github.com/stretchr/testify/assert"
)

func TestNewFillsFullSet(t *testing.T) {
	wv := wave.New(3, 2, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			assert.Equal(t, 3, wv.At(y, x).Popcount())
		}
	}
}

func TestInBounds(t *testing.T) {
	wv := wave.New(1, 4, 3)
	assert.True(t, wv.InBounds(0, 0))
	assert.True(t, wv.InBounds(2, 3))
	assert.False(t, wv.InBounds(-1, 0))
	assert.False(t, wv.InBounds(3, 0))
	assert.False(t, wv.InBounds(0, 4))
}

func TestApplyPresetsOverwritesCell(t *testing.T) {
	wv := wave.New(4, 3, 3)
	singleton := bitmask.New(4)
	singleton.Set(2)
	wv.ApplyPresets([]wave.Preset{{X: 1, Y: 1, Mask: singleton}})
	assert.Equal(t, []int{2}, wv.At(1, 1).Bits())
	// Untouched cells remain full.
	assert.Equal(t, 4, wv.At(0, 0).Popcount())
}

func TestResetRestoresFullSet(t *testing.T) {
	wv := wave.New(5, 2, 2)
	wv.At(0, 0).ClearAll()
	wv.At(0, 0).Set(1)
	wv.Reset()
	assert.Equal(t, 5, wv.At(0, 0).Popcount())
}

func TestAtMutatesInPlace(t *testing.T) {
	wv := wave.New(8, 2, 2)
	cell := wv.At(1, 0)
	cell.Clear(3)
	assert.False(t, wv.At(1, 0).Test(3), "Mask wraps a shared slice, so mutating the returned value must be visible through a fresh At call")
}
