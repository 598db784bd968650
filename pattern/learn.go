package pattern

import (
	"strconv"
	"strings"

	"github.com/arcwave/wfc/bitmask"
	"github.com/arcwave/wfc/direction"
)

// Learn extracts every N×N window from images in row-major scan order
// (images in the order given), deduplicates them into a pattern table,
// counts weights, and computes the symmetric directional adjacency table
// (spec §4.4). Learn is a pure function of (images, n): identical inputs
// always produce an identical Learned value.
//
// Returns ErrInvalidInput when n < 1, images is empty, or any image is
// smaller than n in either dimension.
//
// Complexity: O(images·H·W·N²) for extraction, O(P²) for adjacency.
func Learn(images []Grid, n int) (*Learned, error) {
	if n < 1 || len(images) == 0 {
		return nil, ErrInvalidInput
	}
	for _, img := range images {
		if err := validateImage(img, n); err != nil {
			return nil, err
		}
	}

	table, weights := extractPatterns(images, n)
	adjacency := computeAdjacency(table)

	return &Learned{Table: table, Weights: weights, Adjacency: adjacency}, nil
}

// validateImage rejects empty, ragged, or too-small images.
func validateImage(img Grid, n int) error {
	h := len(img)
	if h < n {
		return ErrInvalidInput
	}
	w := len(img[0])
	if w < n {
		return ErrInvalidInput
	}
	for _, row := range img {
		if len(row) != w {
			return ErrInvalidInput
		}
	}
	return nil
}

// extractPatterns scans every image's N×N windows in row-major order,
// deduplicating by canonical serialization and accumulating weights.
// Pattern indices are therefore the order of first appearance across the
// whole scan (spec §4.4).
func extractPatterns(images []Grid, n int) (Table, []int) {
	index := make(map[string]int)
	var patterns [][]Tile
	var weights []int

	for _, img := range images {
		h, w := len(img), len(img[0])
		for y := 0; y <= h-n; y++ {
			for x := 0; x <= w-n; x++ {
				win := window(img, y, x, n)
				key := serialize(win)
				if i, ok := index[key]; ok {
					weights[i]++
					continue
				}
				i := len(patterns)
				index[key] = i
				patterns = append(patterns, win)
				weights = append(weights, 1)
			}
		}
	}

	return Table{N: n, Patterns: patterns}, weights
}

// window copies the N×N tile window anchored at (y, x) into a flat,
// row-major slice.
func window(img Grid, y, x, n int) []Tile {
	win := make([]Tile, n*n)
	for r := 0; r < n; r++ {
		copy(win[r*n:r*n+n], img[y+r][x:x+n])
	}
	return win
}

// serialize builds a canonical, collision-free map key for a flat pattern
// window: decimal tile ids separated by a byte that cannot appear in a
// decimal integer.
func serialize(win []Tile) string {
	var b strings.Builder
	for i, t := range win {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(t))
	}
	return b.String()
}

// computeAdjacency builds the symmetric directional adjacency table per
// spec §4.4: for each unordered pair i<j and direction d, bit j is set in
// A[i][d] (and symmetrically bit i in A[j][opposite(d)]) iff the patterns'
// overlap matches; self-adjacency is tested explicitly for every i and d
// since the i<j loop never visits i==j.
func computeAdjacency(table Table) [][direction.Count]bitmask.Mask {
	p := table.Len()
	adjacency := make([][direction.Count]bitmask.Mask, p)
	for i := 0; i < p; i++ {
		for _, d := range direction.All() {
			adjacency[i][d] = bitmask.New(p)
		}
	}

	for i := 0; i < p; i++ {
		for _, d := range direction.All() {
			if compatible(table, i, i, d) {
				adjacency[i][d].Set(i)
			}
		}
	}

	for i := 0; i < p; i++ {
		for j := i + 1; j < p; j++ {
			for _, d := range direction.All() {
				if compatible(table, i, j, d) {
					adjacency[i][d].Set(j)
					adjacency[j][direction.Opposite(d)].Set(i)
				}
			}
		}
	}

	return adjacency
}

// compatible reports whether pattern j may legally sit at direction d of
// pattern i: their overlapping region, when j is offset by d from i,
// matches tile-by-tile (spec §3's "Compatibility definition").
//
// N == 1 degenerates to direct single-tile comparison regardless of d, per
// spec §3: the sliding-window overlap would otherwise be a zero-cell
// (vacuously true) rectangle in the direction of travel, which is not the
// intended semantics.
func compatible(table Table, i, j int, d direction.Direction) bool {
	n := table.N
	if n == 1 {
		return table.At(i, 0, 0) == table.At(j, 0, 0)
	}

	off := direction.Offsets[d]
	iRowStart, jRowStart, rowLen := overlapRange(off.DY, n)
	iColStart, jColStart, colLen := overlapRange(off.DX, n)

	for r := 0; r < rowLen; r++ {
		for c := 0; c < colLen; c++ {
			if table.At(i, iRowStart+r, iColStart+c) != table.At(j, jRowStart+r, jColStart+c) {
				return false
			}
		}
	}
	return true
}

// overlapRange computes, for one axis, the start offsets into i and j and
// the shared overlap length given a -1/0/1 displacement along that axis.
func overlapRange(delta, n int) (iStart, jStart, length int) {
	switch {
	case delta < 0:
		return 0, 1, n - 1
	case delta > 0:
		return 1, 0, n - 1
	default:
		return 0, 0, n
	}
}
