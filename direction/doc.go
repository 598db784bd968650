// Package direction defines the four cardinal offsets used by both
// package pattern (learning adjacency) and package solver (propagation).
// Both subsystems MUST index direction.Offsets with the same constants;
// this package is the single source of truth for that ordering.
//
// Complexity: all operations are O(1).
package direction
