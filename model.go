package wfc

import (
	"math/rand"

	"github.com/arcwave/wfc/bitmask"
	"github.com/arcwave/wfc/pattern"
	"github.com/arcwave/wfc/solver"
	"github.com/arcwave/wfc/wave"
)

// Tilemap is an H×W matrix of tile ids, row-major: Tilemap[y][x].
type Tilemap = solver.Tilemap

// Option configures a Model at construction time, following the
// functional-options style of package solver (solver.Option).
type Option func(*Model)

// WithRNG supplies the base RNG Generate derives its substreams from (see
// solver.WithRNG). Without one, every Generate call is deterministic but
// identical across unrelated Models.
func WithRNG(rng *rand.Rand) Option {
	return func(m *Model) { m.rng = rng }
}

// WithOnObserve registers a hook invoked after each weighted-random
// collapse during Generate (see solver.WithOnObserve).
func WithOnObserve(h solver.Hook) Option {
	return func(m *Model) { m.onObserve = h }
}

// WithOnPropagate registers a hook invoked each time propagation dequeues a
// cell during Generate (see solver.WithOnPropagate).
func WithOnPropagate(h solver.Hook) Option {
	return func(m *Model) { m.onPropagate = h }
}

// Model binds the immutable artifacts Learn produces (pattern table,
// weights, directional adjacency) to repeated Generate invocations. A
// Model's presets are mutable; its learned patterns are not. The zero
// Model is not usable; construct with Learn.
type Model struct {
	learned *pattern.Learned
	presets []wave.Preset

	rng         *rand.Rand
	onObserve   solver.Hook
	onPropagate solver.Hook
}

// Learn extracts every N×N window from images (row-major, no rotation or
// reflection), deduplicates them into a pattern table, counts weights, and
// computes the directional adjacency table, then wraps the result in a
// Model ready for presets and generation.
//
// Returns pattern.ErrInvalidInput, forwarded unwrapped from pattern.Learn,
// when n < 1, no images are given, or an image is ragged or smaller than n
// in either dimension.
//
// Complexity: O(images·H·W·N²) for extraction, O(P²) for adjacency.
func Learn(images [][][]int, n int, opts ...Option) (*Model, error) {
	grids := make([]pattern.Grid, len(images))
	for i, img := range images {
		grids[i] = pattern.Grid(img)
	}

	learned, err := pattern.Learn(grids, n)
	if err != nil {
		return nil, err
	}

	m := &Model{learned: learned}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// SetPreset forces cell (x, y) to initialize to mask rather than the full
// pattern set, on every subsequent Generate call (including every retry
// within a single Generate). mask must have been constructed against this
// Model's pattern count; a stale preset from another Model is rejected by
// Generate, not by SetPreset, since SetPreset itself never needs the
// pattern count to be valid.
func (m *Model) SetPreset(x, y int, mask bitmask.Mask) {
	m.presets = append(m.presets, wave.Preset{X: x, Y: y, Mask: mask})
}

// ClearPresets removes every preset previously added with SetPreset.
func (m *Model) ClearPresets() {
	m.presets = nil
}

// Generate runs the attempt loop against m's learned model and current
// presets, producing a width×height Tilemap, or reporting soft failure
// (ok==false, err==nil) once maxAttempts is exhausted.
//
// Returns ErrUnsatisfiable immediately if the presets alone already
// contradict, ErrInvalidInput if m was not built by Learn or if width,
// height, or maxAttempts is nonpositive, or a preset references an
// out-of-bounds cell or a mask sized for a different pattern count.
//
// Complexity: O(maxAttempts · width·height·4·⌈P/64⌉).
func (m *Model) Generate(width, height, maxAttempts int) (Tilemap, bool, error) {
	if m == nil || m.learned == nil {
		return nil, false, ErrInvalidInput
	}

	var opts []solver.Option
	if m.rng != nil {
		opts = append(opts, solver.WithRNG(m.rng))
	}
	if m.onObserve != nil {
		opts = append(opts, solver.WithOnObserve(m.onObserve))
	}
	if m.onPropagate != nil {
		opts = append(opts, solver.WithOnPropagate(m.onPropagate))
	}

	tiles, ok, err := solver.Solve(m.learned, m.presets, width, height, maxAttempts, opts...)
	switch err {
	case nil:
		return tiles, ok, nil
	case solver.ErrUnsatisfiable:
		return nil, false, ErrUnsatisfiable
	case solver.ErrInvalidInput:
		return nil, false, ErrInvalidInput
	default:
		return nil, false, err
	}
}

// PatternCount returns the number of distinct patterns m.learned holds.
// Useful for sizing a bitmask.Mask passed to SetPreset.
func (m *Model) PatternCount() int {
	if m == nil || m.learned == nil {
		return 0
	}
	return m.learned.Table.Len()
}
