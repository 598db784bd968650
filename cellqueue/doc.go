// Package cellqueue implements a FIFO queue of grid coordinates used by
// package solver to drive constraint propagation (spec §4.2, §4.6.2).
//
// No deduplication is performed: propagation is idempotent on a cell whose
// mask did not shrink since it was last processed, so a cell may be enqueued
// more than once without affecting correctness — only throughput.
//
// Complexity: Enqueue/Dequeue are amortized O(1); Len is O(1).
package cellqueue
