package grid

import "fmt"

// New returns an empty rows×cols grid without walls.
// Returns ErrEmptyGrid if rows or cols is smaller than one.
// Complexity: O(R×C) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}

	return &Grid{rows: rows, cols: cols, walls: make([]bool, rows*cols)}, nil
}

// Parse builds a Grid from a text layout and returns it together with the
// start ('S') and goal ('G') cells. Each string is one row.
//
// Errors: ErrEmptyGrid, ErrNonRectangular, ErrUnknownGlyph, ErrMissingStart,
// ErrMissingGoal, ErrDuplicateMarker.
func Parse(lines []string) (*Grid, Cell, Cell, error) {
	var start, goal Cell
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, start, goal, ErrEmptyGrid
	}
	rows, cols := len(lines), len([]rune(lines[0]))
	for _, line := range lines {
		if len([]rune(line)) != cols {
			return nil, start, goal, ErrNonRectangular
		}
	}

	g, err := New(rows, cols)
	if err != nil {
		return nil, start, goal, err
	}
	haveStart, haveGoal := false, false
	for r, line := range lines {
		for c, ch := range []rune(line) {
			switch ch {
			case GlyphOpen:
			case GlyphWall:
				g.walls[r*cols+c] = true
			case GlyphStart:
				if haveStart {
					return nil, start, goal, fmt.Errorf("%w: second 'S' at (%d,%d)", ErrDuplicateMarker, r, c)
				}
				start, haveStart = Cell{Row: r, Col: c}, true
			case GlyphGoal:
				if haveGoal {
					return nil, start, goal, fmt.Errorf("%w: second 'G' at (%d,%d)", ErrDuplicateMarker, r, c)
				}
				goal, haveGoal = Cell{Row: r, Col: c}, true
			default:
				return nil, start, goal, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownGlyph, ch, r, c)
			}
		}
	}
	if !haveStart {
		return nil, start, goal, ErrMissingStart
	}
	if !haveGoal {
		return nil, start, goal, ErrMissingGoal
	}

	return g, start, goal, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the number of cells, rows×cols.
func (g *Grid) Size() int { return g.rows * g.cols }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Index maps c to its row-major arena index: Row*Cols + Col.
// Panics if c is out of bounds.
func (g *Grid) Index(c Cell) int {
	g.mustContain(c)

	return c.Row*g.cols + c.Col
}

// CellAt converts a row-major index back to its cell.
func (g *Grid) CellAt(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}

// IsWall reports whether c is blocked. Out-of-bounds cells report false.
func (g *Grid) IsWall(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}

	return g.walls[c.Row*g.cols+c.Col]
}

// SetWall sets or clears the wall flag on c.
// It must not be called while a search is running on g.
func (g *Grid) SetWall(c Cell, wall bool) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	g.walls[c.Row*g.cols+c.Col] = wall

	return nil
}

// Walls returns the number of wall cells.
func (g *Grid) Walls() int {
	n := 0
	for _, w := range g.walls {
		if w {
			n++
		}
	}

	return n
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	walls := make([]bool, len(g.walls))
	copy(walls, g.walls)

	return &Grid{rows: g.rows, cols: g.cols, walls: walls}
}

// Neighbors returns the in-bounds orthogonal neighbours of c in North, South,
// West, East order. Wall flags are not consulted.
// Panics if c is out of bounds.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	g.mustContain(c)
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}

// AppendNeighborIndices appends the arena indices of idx's orthogonal
// neighbours to dst in North, South, West, East order and returns dst.
// It is the allocation-free form of Neighbors used by the search engine.
func (g *Grid) AppendNeighborIndices(dst []int, idx int) []int {
	r, c := idx/g.cols, idx%g.cols
	for _, d := range neighborOffsets {
		nr, nc := r+d[0], c+d[1]
		if nr >= 0 && nr < g.rows && nc >= 0 && nc < g.cols {
			dst = append(dst, nr*g.cols+nc)
		}
	}

	return dst
}

// WallAt reports the wall flag of the cell at arena index idx.
func (g *Grid) WallAt(idx int) bool {
	return g.walls[idx]
}

func (g *Grid) mustContain(c Cell) {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("grid: cell %v out of bounds for %dx%d grid", c, g.rows, g.cols))
	}
}
