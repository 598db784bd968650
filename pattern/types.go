package pattern

import (
	"github.com/arcwave/wfc/bitmask"
	"github.com/arcwave/wfc/direction"
)

// Tile is an opaque, nonnegative tile identifier. Equality is the only
// operation the core requires of it (spec §3).
type Tile = int

// Grid is a rectangular 2D matrix of tile ids: Grid[y][x]. Ragged rows are
// rejected by Learn.
type Grid [][]Tile

// Table is an ordered, immutable sequence of distinct N×N patterns. Indices
// into Table.Patterns are stable pattern indices for the life of a Learned
// model (spec §3).
type Table struct {
	N        int
	Patterns [][]Tile // each entry has length N*N, row-major within the window
}

// Len returns the number of distinct patterns in the table.
func (t Table) Len() int {
	return len(t.Patterns)
}

// At returns the tile at (row, col) within pattern i, 0 ≤ row, col < t.N.
func (t Table) At(i, row, col int) Tile {
	return t.Patterns[i][row*t.N+col]
}

// TopLeft returns the tile at the (0,0) offset of pattern i — the tile that
// Solve's output extraction (spec §4.6.5) copies into the result tilemap.
func (t Table) TopLeft(i int) Tile {
	return t.Patterns[i][0]
}

// Learned bundles the immutable artifacts produced by Learn: the pattern
// table, per-pattern weights, and the directional adjacency table. All three
// are read-only after Learn returns and may be shared by many concurrent
// solver.Solve calls (spec §5).
type Learned struct {
	Table     Table
	Weights   []int
	Adjacency [][direction.Count]bitmask.Mask // Adjacency[i][d]: patterns compatible at direction d of i
}
