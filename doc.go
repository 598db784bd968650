// Package wfc implements an overlapping-model Wave Function Collapse core:
// learn a pattern table and directional adjacency from example images, then
// synthesize new tilemaps that are everywhere locally consistent with what
// was learned.
//
// The package is organized the same way as its sibling packages in this
// module:
//
//	bitmask/   — word-packed bitset over pattern indices
//	direction/ — the four cardinal directions and their offsets
//	cellqueue/ — FIFO queue of grid coordinates
//	pattern/   — window extraction, deduplication, weights, adjacency
//	wave/      — the per-cell possibility grid a solve attempt mutates
//	solver/    — the observe/propagate/retry loop
//
// The root package binds those into Model, the single entry point most
// callers need:
//
//	model, err := wfc.Learn(images, 2)
//	if err != nil { ... }
//	model.SetPreset(0, 0, topLeftZero)
//	tiles, ok, err := model.Generate(20, 20, 100)
//
// Determinism: Learn is a pure function of its inputs, and Generate's only
// sources of randomness are the *rand.Rand a caller supplies via WithRNG —
// the same model, presets, dimensions, and seed always produce the same
// tilemap.
package wfc
