package solver

import (
	"github.com/arcwave/wfc/bitmask"
	"github.com/arcwave/wfc/cellqueue"
	"github.com/arcwave/wfc/direction"
	"github.com/arcwave/wfc/pattern"
	"github.com/arcwave/wfc/wave"
)

// propagate drains queue, enforcing arc consistency over wv per spec
// §4.6.2. For each dequeued cell (y1,x1) with possible patterns S1, and
// each direction k, the neighbor cell is the one at (y1+dy, x1+dx) —
// direction.Offsets[k] applied directly, not negated.
//
// package pattern defines Adjacency[i][k] as "pattern j may sit at
// direction k of pattern i", which was derived from extraction windows
// exactly one grid step apart along direction.Offsets[k]. The wave's
// cells sit on that same grid, one tile apart, so the cell standing at
// direction k from (y1,x1) is reached by walking direction.Offsets[k]
// unchanged, and its allowed set is the union of Adjacency[p][k] over
// p in S1 — no negation. Spec §9 ("direction-negation quirk") permits
// storing adjacency under an inverted convention and negating the walk
// instead; this module keeps the learner's literal definition and skips
// the negation, which is the pairing that reproduces the input images
// unmirrored (see pattern.computeAdjacency and propagate_test.go).
//
// Returns true the instant any neighbor's mask is driven empty
// (contradiction); the caller is responsible for turning that into an
// attempt retry. Propagation is confluent: the final wave state for a given
// starting queue content does not depend on dequeue order.
//
// Complexity: O(Q · d · ⌈P/64⌉) where Q is the number of (re)enqueues.
func propagate(wv *wave.Wave, learned *pattern.Learned, queue *cellqueue.Queue, hooks Options) bool {
	p := learned.Table.Len()
	for {
		cell, ok := queue.Dequeue()
		if !ok {
			return false
		}
		if hooks.onPropagate != nil {
			hooks.onPropagate(cell.Y, cell.X)
		}

		s1 := wv.At(cell.Y, cell.X)
		for _, k := range direction.All() {
			off := direction.Offsets[k]
			ny, nx := cell.Y+off.DY, cell.X+off.DX
			if !wv.InBounds(ny, nx) {
				continue
			}

			allowed := bitmask.New(p)
			for _, pat := range s1.Bits() {
				allowed.OrInto(learned.Adjacency[pat][k])
			}

			neighbor := wv.At(ny, nx)
			before := neighbor.Popcount()
			narrowed := bitmask.And(neighbor, allowed)
			if narrowed.IsEmpty() {
				return true
			}
			if narrowed.Popcount() < before {
				neighbor.CopyFrom(narrowed)
				queue.Enqueue(cellqueue.Cell{Y: ny, X: nx})
			}
		}
	}
}
