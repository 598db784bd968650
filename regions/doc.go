// Package regions analyzes a generated tilemap as a 2D grid graph: finding
// contiguous same-tile areas and the minimal retiling cost to connect two
// of them. Connectivity is always four-directional, using the same
// direction.Offsets the solver itself narrows neighbors along, so a region
// reported here touches exactly the cells propagation would treat as
// adjacent.
//
// Tile ids are opaque (spec §3: equality is the only required operation),
// so regions groups strictly by equality rather than by a numeric
// land/water threshold — unlike a typical height-map grid tool, there is
// no ordering among tile ids to threshold against.
package regions
