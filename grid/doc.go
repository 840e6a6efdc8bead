// Package grid models the rectangular board that pathviz searches over.
//
// What:
//
//   - Grid is a rows×cols arena of cells; each slot carries a wall flag.
//   - Cell is a (Row, Col) value. Its identity is the row-major arena index,
//     so there is exactly one canonical slot per position.
//   - Neighbors yields the 4-connected in-bounds cells in North, South, West,
//     East order. Search strategies rely on that order for tie-breaking.
//   - Parse builds a Grid plus start and goal from a text layout.
//
// Why:
//
//   - Strategies work on integer indices instead of shared mutable objects.
//   - Walls are edited between runs by an external collaborator (SetWall) and
//     are read-only while a run is in flight.
//
// Complexity:
//
//   - Neighbors, InBounds, Index: O(1).
//   - Reachable, Components:     O(R×C), Memory: O(R×C).
//
// Layout glyphs:
//
//	#  wall
//	.  open cell
//	S  start (exactly one)
//	G  goal  (exactly one)
//
// Errors:
//
//   - ErrEmptyGrid:       no rows or no columns.
//   - ErrNonRectangular:  layout rows of differing length.
//   - ErrUnknownGlyph:    a layout character outside the set above.
//   - ErrMissingStart / ErrMissingGoal / ErrDuplicateMarker: bad S/G markers.
//   - ErrOutOfBounds:     a cell outside the grid passed to SetWall.
package grid
