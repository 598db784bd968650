package wfc

import "github.com/arcwave/wfc/regions"

// Region is one cell of a generated Tilemap (coordinates plus tile id); a
// connected, same-tile area is a []Region.
type Region = regions.Cell

// ConnectedRegions groups a generated Tilemap's cells into contiguous,
// same-tile regions under four-directional connectivity, keyed by tile id.
// A typical use is validating that a generated map has the connectivity a
// caller's downstream logic (pathfinding, playability checks) requires,
// without re-deriving adjacency from the learned model.
func ConnectedRegions(tm Tilemap) (map[int][][]Region, error) {
	return regions.ConnectedComponents(tm)
}

// BridgeRegions reports the minimal number of cells that would need to be
// retiled to connect src to dst in tm, and one such path. src must be
// non-empty and every cell in it must share a single tile id; moving
// through a cell already matching that tile costs 0, any other cell costs
// 1.
func BridgeRegions(tm Tilemap, src, dst []Region) (path []Region, cost int, err error) {
	return regions.BridgeCost(tm, src, dst)
}
