// Package bitmask implements a fixed-width, word-packed bitset over the
// index range [0, P) of pattern indices produced by package pattern.
//
// What:
//
//   - Mask is a []uint64 of ⌈P/64⌉ words, one bit per pattern index.
//   - Set/Clear/Test manipulate individual bits; And/OrInto combine masks;
//     IsEmpty/Equals/Bits/Popcount inspect them.
//   - The final partial word is kept clean: bits at index ≥ P are always
//     zero, so Equals and IsEmpty never see spurious high bits.
//
// Why:
//
//   - wave.Wave stores one Mask per grid cell; solver.Solve unions and
//     intersects masks on every propagation step, so Mask must be cheap to
//     copy, AND, and OR.
//
// Complexity:
//
//   - Set/Clear/Test: O(1).
//   - And/OrInto/Equals/IsEmpty: O(⌈P/64⌉).
//   - Bits (enumerate set bits): O(⌈P/64⌉ + popcount).
package bitmask
