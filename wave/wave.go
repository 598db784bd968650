package wave

import "github.com/arcwave/wfc/bitmask"

// Preset is a pre-set instruction (spec §3): cell (Y, X) must initialize to
// Mask rather than the full pattern set. Mask is typically a singleton.
// Presets are applied before the first observation of every solver attempt.
type Preset struct {
	X, Y int
	Mask bitmask.Mask
}

// Wave is an H×W grid of per-cell possibility bitmasks. A Wave is owned
// exclusively by one solver attempt; it is reinitialized to the full set at
// the start of every attempt and mutates monotonically downward until the
// attempt ends (spec §3).
type Wave struct {
	P, W, H int
	cells   []bitmask.Mask // row-major, len == W*H
}

// New constructs a Wave of the given pattern count and dimensions, with
// every cell initialized to the full set [0, p).
// Complexity: O(H·W·⌈P/64⌉).
func New(p, w, h int) *Wave {
	wv := &Wave{P: p, W: w, H: h, cells: make([]bitmask.Mask, w*h)}
	wv.Reset()
	return wv
}

// Reset reinitializes every cell's mask to the full pattern set [0, P).
// Complexity: O(H·W·⌈P/64⌉).
func (wv *Wave) Reset() {
	for i := range wv.cells {
		wv.cells[i] = bitmask.Full(wv.P)
	}
}

// InBounds reports whether (y, x) lies within the grid.
// Complexity: O(1).
func (wv *Wave) InBounds(y, x int) bool {
	return x >= 0 && x < wv.W && y >= 0 && y < wv.H
}

// index maps (y, x) to a row-major slice offset.
func (wv *Wave) index(y, x int) int {
	return y*wv.W + x
}

// At returns a live reference to the Mask at (y, x). Because bitmask.Mask
// wraps a slice, mutating the returned Mask (Set/Clear/CopyFrom/...)
// mutates the Wave in place.
// Complexity: O(1).
func (wv *Wave) At(y, x int) bitmask.Mask {
	return wv.cells[wv.index(y, x)]
}

// ApplyPresets overwrites the indicated cells' masks with the supplied
// masks. The caller is responsible for ensuring presets are mutually
// consistent and for enqueuing the affected cells for propagation
// afterward; ApplyPresets itself does not propagate.
// Complexity: O(len(presets)·⌈P/64⌉).
func (wv *Wave) ApplyPresets(presets []Preset) {
	for _, p := range presets {
		wv.At(p.Y, p.X).CopyFrom(p.Mask)
	}
}
