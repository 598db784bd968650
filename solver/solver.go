package solver

import (
	"github.com/arcwave/wfc/cellqueue"
	"github.com/arcwave/wfc/pattern"
	"github.com/arcwave/wfc/wave"
)

// Tilemap is an H×W matrix of tile ids, row-major: Tilemap[y][x].
type Tilemap = pattern.Grid

// Solve runs the attempt loop of spec §4.6 against learned, producing a
// width×height Tilemap, or reporting soft failure (ok==false, err==nil)
// when maxAttempts is exhausted. presets are applied before the first
// observation of every attempt, including every retry.
//
// Returns ErrUnsatisfiable immediately, without consuming an attempt, if
// the preset-only pre-pass already contradicts — presets are never
// randomized, so retrying cannot change that outcome.
//
// Complexity: O(maxAttempts · H·W·d·⌈P/64⌉).
func Solve(learned *pattern.Learned, presets []wave.Preset, width, height, maxAttempts int, opts ...Option) (Tilemap, bool, error) {
	if err := validate(learned, presets, width, height, maxAttempts); err != nil {
		return nil, false, err
	}

	options := resolveOptions(opts)
	rngs := newStreams(options.rng)
	p := learned.Table.Len()
	wv := wave.New(p, width, height)

	resetAndApplyPresets := func() bool {
		wv.Reset()
		wv.ApplyPresets(presets)
		var queue cellqueue.Queue
		for _, ps := range presets {
			queue.Enqueue(cellqueue.Cell{Y: ps.Y, X: ps.X})
		}
		return propagate(wv, learned, &queue, options)
	}

	if resetAndApplyPresets() {
		return nil, false, ErrUnsatisfiable
	}

	randomCell := func() (int, int) {
		return rngs.seedCell.Intn(height), rngs.seedCell.Intn(width)
	}

	var y, x int
	if len(presets) == 0 {
		// The uniform wave yields equal entropy everywhere, so the first
		// entropy scan can be skipped (spec §4.6 step 2).
		y, x = randomCell()
	} else {
		ny, nx, ok := selectLeastEntropy(wv, learned.Weights, rngs.tieBreak)
		if !ok {
			return extractTilemap(wv, learned.Table), true, nil
		}
		y, x = ny, nx
	}

	for attempts := 1; attempts <= maxAttempts; {
		observe(wv.At(y, x), learned.Weights, rngs.observe)
		if options.onObserve != nil {
			options.onObserve(y, x)
		}

		var queue cellqueue.Queue
		queue.Enqueue(cellqueue.Cell{Y: y, X: x})
		if propagate(wv, learned, &queue, options) {
			if resetAndApplyPresets() {
				// Unreachable given the pre-pass check above: presets are
				// fixed and propagation is deterministic, so the same
				// starting state cannot newly contradict. Kept as a guard
				// rather than a panic since it costs nothing on the
				// success path.
				return nil, false, ErrUnsatisfiable
			}
			y, x = randomCell()
			attempts++
			continue
		}

		ny, nx, ok := selectLeastEntropy(wv, learned.Weights, rngs.tieBreak)
		if !ok {
			return extractTilemap(wv, learned.Table), true, nil
		}
		y, x = ny, nx
	}

	return nil, false, nil
}

// validate checks the preconditions spec §4.6/§7 require before any wave is
// allocated.
func validate(learned *pattern.Learned, presets []wave.Preset, width, height, maxAttempts int) error {
	if learned == nil || learned.Table.Len() == 0 {
		return ErrInvalidInput
	}
	if len(learned.Weights) != learned.Table.Len() || len(learned.Adjacency) != learned.Table.Len() {
		return ErrInvalidInput
	}
	if width < 1 || height < 1 || maxAttempts < 1 {
		return ErrInvalidInput
	}
	for _, ps := range presets {
		if ps.X < 0 || ps.X >= width || ps.Y < 0 || ps.Y >= height {
			return ErrInvalidInput
		}
		if ps.Mask.Size() != learned.Table.Len() {
			return ErrInvalidInput
		}
	}
	return nil
}

// extractTilemap produces the output tilemap from a fully collapsed wave
// (spec §4.6.5): out[y][x] is the top-left tile of the pattern collapsed at
// (y, x).
func extractTilemap(wv *wave.Wave, table pattern.Table) Tilemap {
	out := make(Tilemap, wv.H)
	for y := 0; y < wv.H; y++ {
		out[y] = make([]pattern.Tile, wv.W)
		for x := 0; x < wv.W; x++ {
			bits := wv.At(y, x).Bits()
			out[y][x] = table.TopLeft(bits[0])
		}
	}
	return out
}
