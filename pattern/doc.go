// Package pattern implements the Learner of the WFC overlapping-patterns
// core: extracting N×N tile windows from example tilemaps, deduplicating
// them into an ordered pattern table, counting their weights, and computing
// the symmetric directional adjacency table between them (spec §4.4).
//
// What:
//
//   - Learn(images, n) scans every image in row-major window order and
//     builds (Table, Weights, Adjacency) — all three immutable once
//     returned, safe to share across concurrent solver.Solve calls.
//   - Adjacency uses package direction's canonical ordering, so indices
//     agree with package solver without translation.
//
// Why:
//
//   - Separating learning from solving lets the learned model be computed
//     once and reused by many independent generations (spec §5).
//
// Complexity:
//
//   - Learn: O(images·H·W·N²) for extraction + O(P²) for adjacency, where P
//     is the number of distinct patterns.
//
// Errors:
//
//	ErrInvalidInput - n < 1, or some image is smaller than n in either dimension.
package pattern
