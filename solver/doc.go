// Package solver implements the WFC Solver: the attempt loop of weighted
// observation, arc-consistency propagation, least-entropy cell selection,
// and bounded retry on contradiction (spec §4.6).
//
// What:
//
//   - Solve binds a learned pattern.Learned model, a set of wave.Preset
//     instructions, output dimensions, and an attempt bound into a single
//     collapse run, returning a Tilemap on success.
//   - Observation performs a weighted random draw over a cell's possible
//     patterns (§4.6.1); Propagation is a queue-driven arc-consistency
//     sweep that enforces the Wave invariant (§4.6.2); cell selection
//     picks the least-entropy unsolved cell, breaking ties uniformly at
//     random (§4.6.3); Entropy computes Shannon entropy under the learned
//     weights (§4.6.4).
//
// Why:
//
//   - Splitting these concerns into small, separately testable functions
//     mirrors how package pattern separates extraction from adjacency: each
//     piece has an independent correctness story (confluence, weight
//     conservation, tie-break fairness) that is easiest to verify in
//     isolation.
//
// Errors:
//
//	ErrInvalidInput   - nonpositive dimensions, zero patterns, mismatched
//	                    adjacency length, or maxAttempts < 1.
//	ErrUnsatisfiable  - the preset-only pre-pass already contradicts; no
//	                    amount of retrying can help because presets are
//	                    never randomized.
//
// A soft failure (maxAttempts exhausted) is not an error: Solve returns
// (nil, false, nil).
//
// Complexity: O(maxAttempts · H·W·d·⌈P/64⌉) worst case, where d is the
// branching factor of propagation fan-out (4, one per direction).
package solver
