package search

import "github.com/katalvlaran/pathviz/grid"

// ReconstructPath walks prev from goal back to start and returns the
// start→goal path. It returns an empty Path if the chain is missing a link or
// loops before reaching start. If start == goal the path is [start].
func ReconstructPath(prev map[grid.Cell]grid.Cell, start, goal grid.Cell) Path {
	cells := reconstruct(func(c grid.Cell) (grid.Cell, bool) {
		p, ok := prev[c]
		return p, ok
	}, start, goal, len(prev))

	return Path(cells)
}

// reconstruct follows prev from goal until start. At most limit links are
// followed; a longer chain necessarily repeats a node and is rejected.
func reconstruct[T comparable](prev func(T) (T, bool), start, goal T, limit int) []T {
	path := []T{goal}
	for cur := goal; cur != start; {
		if len(path) > limit {
			return []T{}
		}
		p, ok := prev(cur)
		if !ok {
			return []T{}
		}
		path = append(path, p)
		cur = p
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
