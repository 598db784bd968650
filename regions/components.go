package regions

import "github.com/arcwave/wfc/direction"

// ConnectedComponents groups tilemap cells into contiguous, same-tile
// regions under four-directional connectivity, keyed by tile id. Each
// region is a slice of Cell in BFS visitation order starting from the
// first unvisited occurrence of that tile, scanned row-major.
//
// Complexity: O(W·H·4) time, O(W·H) memory.
func ConnectedComponents(tilemap [][]int) (map[int][][]Cell, error) {
	g, err := newGrid(tilemap)
	if err != nil {
		return nil, err
	}

	visited := make([]bool, g.w*g.h)
	out := make(map[int][][]Cell)

	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			start := g.index(x, y)
			if visited[start] {
				continue
			}
			tile := g.at(x, y)
			component := floodFill(g, visited, x, y, tile)
			out[tile] = append(out[tile], component)
		}
	}

	return out, nil
}

// floodFill runs a BFS from (x0, y0) over every reachable cell equal to
// tile, marking each visited exactly once.
func floodFill(g grid, visited []bool, x0, y0, tile int) []Cell {
	start := g.index(x0, y0)
	visited[start] = true
	queue := []int{start}
	var component []Cell

	for qi := 0; qi < len(queue); qi++ {
		idx := queue[qi]
		x, y := idx%g.w, idx/g.w
		component = append(component, Cell{X: x, Y: y, Tile: tile})

		for _, d := range direction.All() {
			off := direction.Offsets[d]
			nx, ny := x+off.DX, y+off.DY
			if !g.inBounds(nx, ny) || g.at(nx, ny) != tile {
				continue
			}
			nIdx := g.index(nx, ny)
			if !visited[nIdx] {
				visited[nIdx] = true
				queue = append(queue, nIdx)
			}
		}
	}

	return component
}
