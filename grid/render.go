package grid

import "strings"

// Render draws the grid as text, one line per row. Walls are drawn as '#',
// open cells as '.', and any cell present in marks is drawn with its rune
// instead. Marks take precedence over walls.
func (g *Grid) Render(marks map[Cell]rune) string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cell := Cell{Row: r, Col: c}
			if m, ok := marks[cell]; ok {
				b.WriteRune(m)
				continue
			}
			if g.walls[r*g.cols+c] {
				b.WriteRune(GlyphWall)
			} else {
				b.WriteRune(GlyphOpen)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// Layout renders g back into Parse's text format with the given start and goal.
func (g *Grid) Layout(start, goal Cell) []string {
	lines := strings.Split(strings.TrimSuffix(g.Render(map[Cell]rune{
		start: GlyphStart,
		goal:  GlyphGoal,
	}), "\n"), "\n")

	return lines
}
