// Package wave implements the WaveMatrix of the WFC core: an H×W grid of
// per-cell bitmask.Mask possibility sets, plus pre-set instructions applied
// before the first observation of every solver attempt (spec §4.5).
//
// What:
//
//   - Wave.Reset reinitializes every cell to the full pattern set [0, P).
//   - Wave.ApplyPresets overwrites the indicated cells' masks with the
//     supplied masks; the caller (package solver) is responsible for
//     enqueuing those cells for propagation afterward.
//   - Wave.At returns a live reference to a cell's Mask: because
//     bitmask.Mask wraps a slice, mutating the returned Mask mutates the
//     Wave in place.
//
// Why:
//
//   - Separating the grid of possibility sets from the solving logic lets
//     each solver.Solve attempt own an exclusive Wave while sharing the
//     read-only learned model (spec §5).
//
// Complexity:
//
//   - Reset/ApplyPresets: O(H·W·⌈P/64⌉).
//   - At: O(1).
package wave
