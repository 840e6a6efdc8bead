// Package grid defines the cell and grid types together with the layout glyphs
// understood by Parse and Render.
package grid

import "fmt"

// Layout glyphs accepted by Parse and produced by Render.
const (
	GlyphWall  = '#'
	GlyphOpen  = '.'
	GlyphStart = 'S'
	GlyphGoal  = 'G'
)

// Cell identifies a single grid position. Two cells are the same cell iff
// their coordinates are equal.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Adjacent reports whether c and o share an edge (4-connectivity).
func (c Cell) Adjacent(o Cell) bool {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr+dc == 1
}

// neighborOffsets lists the orthogonal offsets in North, South, West, East order.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is a rows×cols arena of cells with a wall flag per slot.
// Dimensions are fixed once built; wall flags may change between runs only.
type Grid struct {
	rows, cols int
	walls      []bool
}
