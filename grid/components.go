package grid

// Reachable returns every cell reachable from `from` by orthogonal moves
// through cells accepted by passable, including `from` itself, in BFS
// discovery order. A nil passable treats every non-wall cell as open.
// `from` is always included, even if passable rejects it.
//
// Time:   O(R·C).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) Reachable(from Cell, passable func(Cell) bool) []Cell {
	if !g.InBounds(from) {
		return nil
	}
	if passable == nil {
		passable = func(c Cell) bool { return !g.IsWall(c) }
	}
	seen := make([]bool, g.Size())
	i0 := g.Index(from)
	seen[i0] = true
	queue := []int{i0}
	var nbrs []int

	for qi := 0; qi < len(queue); qi++ {
		nbrs = g.AppendNeighborIndices(nbrs[:0], queue[qi])
		for _, v := range nbrs {
			if seen[v] || !passable(g.CellAt(v)) {
				continue
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}

	out := make([]Cell, len(queue))
	for i, idx := range queue {
		out[i] = g.CellAt(idx)
	}

	return out
}

// Components finds all contiguous regions of open (non-wall) cells.
// Components are ordered by their first cell in row-major order; cells within
// a component are in BFS discovery order.
//
// Time:   O(R·C).
// Memory: O(R·C).
func (g *Grid) Components() [][]Cell {
	seen := make([]bool, g.Size())
	var comps [][]Cell
	var nbrs []int

	for i0 := range g.walls {
		if g.walls[i0] || seen[i0] {
			continue
		}
		seen[i0] = true
		queue := []int{i0}
		for qi := 0; qi < len(queue); qi++ {
			nbrs = g.AppendNeighborIndices(nbrs[:0], queue[qi])
			for _, v := range nbrs {
				if g.walls[v] || seen[v] {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		comp := make([]Cell, len(queue))
		for i, idx := range queue {
			comp[i] = g.CellAt(idx)
		}
		comps = append(comps, comp)
	}

	return comps
}
