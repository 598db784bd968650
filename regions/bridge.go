package regions

import "github.com/arcwave/wfc/direction"

// BridgeCost finds the minimal-cost path connecting any cell of src to any
// cell of dst, where moving into a cell already equal to src's tile costs
// 0 and moving into any other cell costs 1 (the number of retiles needed
// to carve a same-tile corridor between the two regions). src must be
// non-empty and share one tile value; dst must be non-empty.
//
// Uses 0-1 BFS (a deque instead of a priority queue) since every edge
// weight is 0 or 1.
//
// Complexity: O(W·H·4) time, O(W·H) memory.
func BridgeCost(tilemap [][]int, src, dst []Cell) (path []Cell, cost int, err error) {
	g, err := newGrid(tilemap)
	if err != nil {
		return nil, 0, err
	}
	if len(src) == 0 || len(dst) == 0 {
		return nil, 0, ErrEmptyRegion
	}

	srcTile := src[0].Tile
	for _, c := range src {
		if c.Tile != srcTile {
			return nil, 0, ErrMixedRegion
		}
	}

	n := g.w * g.h
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	dstSet := make(map[int]struct{}, len(dst))
	for _, c := range dst {
		dstSet[g.index(c.X, c.Y)] = struct{}{}
	}

	deque := make([]int, n+1)
	head, tail := 0, 0
	pushFront := func(i int) {
		head = (head - 1 + len(deque)) % len(deque)
		deque[head] = i
	}
	pushBack := func(i int) {
		deque[tail] = i
		tail = (tail + 1) % len(deque)
	}

	for _, c := range src {
		i := g.index(c.X, c.Y)
		dist[i] = 0
		pushFront(i)
	}

	target := -1
	for head != tail {
		u := deque[head]
		head = (head + 1) % len(deque)
		if _, ok := dstSet[u]; ok {
			target = u
			break
		}

		x0, y0 := u%g.w, u/g.w
		for _, d := range direction.All() {
			off := direction.Offsets[d]
			nx, ny := x0+off.DX, y0+off.DY
			if !g.inBounds(nx, ny) {
				continue
			}
			step := 0
			if g.at(nx, ny) != srcTile {
				step = 1
			}
			v := g.index(nx, ny)
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					pushFront(v)
				} else {
					pushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoBridge
	}

	var idxPath []int
	for at := target; at >= 0; at = prev[at] {
		idxPath = append([]int{at}, idxPath...)
	}
	path = make([]Cell, len(idxPath))
	for i, idx := range idxPath {
		x, y := idx%g.w, idx/g.w
		path[i] = Cell{X: x, Y: y, Tile: g.at(x, y)}
	}

	return path, dist[target], nil
}
