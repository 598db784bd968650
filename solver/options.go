package solver

import "math/rand"

// Hook is called at an observation or propagation boundary with the cell
// coordinates involved. Hooks are an out-of-band observation mechanism
// (spec §9, "optional profiling"): they MUST NOT and do not influence
// Solve's outcome, since they never touch the Wave or the RNG streams.
type Hook func(y, x int)

// Options configures a single Solve call.
type Options struct {
	rng         *rand.Rand
	onObserve   Hook
	onPropagate Hook
}

// Option mutates an Options value, following the functional-options style
// (WithX(...) Option).
type Option func(*Options)

// WithRNG supplies the base RNG Solve derives its three substreams from
// (spec §5: seed-cell choice, weighted pattern draw, entropy tie-break). A
// caller that wants reproducible runs must supply a seeded *rand.Rand here;
// without one, Solve falls back to a fixed default seed, which is
// deterministic but identical across unrelated calls.
func WithRNG(rng *rand.Rand) Option {
	return func(o *Options) { o.rng = rng }
}

// WithOnObserve registers a hook invoked after a cell is collapsed by
// weighted random draw, with that cell's coordinates.
func WithOnObserve(h Hook) Option {
	return func(o *Options) { o.onObserve = h }
}

// WithOnPropagate registers a hook invoked each time propagation dequeues a
// cell to process, with that cell's coordinates.
func WithOnPropagate(h Hook) Option {
	return func(o *Options) { o.onPropagate = h }
}

// resolveOptions applies opts over the default Options.
func resolveOptions(opts []Option) Options {
	resolved := Options{}
	for _, opt := range opts {
		opt(&resolved)
	}
	return resolved
}
