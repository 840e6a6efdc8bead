package search

import "github.com/katalvlaran/pathviz/grid"

// Manhattan returns |Δrow| + |Δcol| between a and b. It never overestimates
// the number of moves on a 4-connected unit-cost grid.
func Manhattan(a, b grid.Cell) int {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}
