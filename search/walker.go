package search

import (
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
)

// walker encapsulates the mutable state of one run. All slices are indexed
// by arena index and discarded with the walker.
type walker struct {
	g           *grid.Grid
	algo        Algorithm
	pol         policy
	start, goal int
	goalCell    grid.Cell

	front  frontier
	dist   []int  // cost-so-far
	prev   []int  // predecessor, -1 when none
	closed []bool // finalized
	seen   []bool // ever pushed (first-visit strategies)
	nbrs   []int  // scratch buffer

	pending int // last reported cell, expanded on the next advance
	visited []int
	done    bool
	found   bool
}

// newWalker validates inputs and seeds the frontier with start.
func newWalker(g *grid.Grid, start, goal grid.Cell, algo Algorithm) (*walker, error) {
	pol, err := validate(g, start, goal, algo)
	if err != nil {
		return nil, err
	}

	n := g.Size()
	w := &walker{
		g:        g,
		algo:     algo,
		pol:      pol,
		start:    g.Index(start),
		goal:     g.Index(goal),
		goalCell: goal,
		front:    pol.newFrontier(n),
		dist:     make([]int, n),
		prev:     make([]int, n),
		closed:   make([]bool, n),
		seen:     make([]bool, n),
		nbrs:     make([]int, 0, 4),
		pending:  -1,
	}
	for i := range w.prev {
		w.prev[i] = -1
	}
	w.seen[w.start] = true
	w.front.push(w.start, w.priorityOf(w.start))

	return w, nil
}

// validate checks the run inputs and resolves the policy for algo.
func validate(g *grid.Grid, start, goal grid.Cell, algo Algorithm) (policy, error) {
	if g == nil {
		return policy{}, ErrGridNil
	}
	pol, ok := policies[algo]
	if !ok {
		return policy{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
	if !g.InBounds(start) {
		return policy{}, fmt.Errorf("%w: start %v in %dx%d grid", ErrOutOfBounds, start, g.Rows(), g.Cols())
	}
	if !g.InBounds(goal) {
		return policy{}, fmt.Errorf("%w: goal %v in %dx%d grid", ErrOutOfBounds, goal, g.Rows(), g.Cols())
	}

	return pol, nil
}

// advance runs the skeleton until the next interior cell is finalized, and
// returns it. ok is false once the goal is reached or the frontier is empty.
func (w *walker) advance() (int, bool) {
	if w.pending >= 0 {
		w.expand(w.pending)
		w.pending = -1
	}
	for !w.done {
		cur, ok := w.front.pop()
		if !ok {
			w.done = true
			break
		}
		if w.closed[cur] {
			continue // stale duplicate (DFS)
		}
		w.closed[cur] = true
		if cur == w.goal {
			w.done, w.found = true, true
			break
		}
		if cur == w.start {
			w.expand(cur)
			continue
		}
		w.visited = append(w.visited, cur)
		w.pending = cur

		return cur, true
	}

	return -1, false
}

// expand offers every passable, non-finalized neighbour of cur to the frontier.
func (w *walker) expand(cur int) {
	g := w.dist[cur] + 1
	w.nbrs = w.g.AppendNeighborIndices(w.nbrs[:0], cur)
	for _, nb := range w.nbrs {
		if w.closed[nb] || !w.passable(nb) {
			continue
		}
		switch {
		case w.pol.dedupeOnPop:
			w.dist[nb], w.prev[nb] = g, cur
			w.front.push(nb, 0)
		case !w.seen[nb]:
			w.seen[nb] = true
			w.dist[nb], w.prev[nb] = g, cur
			w.front.push(nb, w.priorityOf(nb))
		case w.pol.relax && g < w.dist[nb]:
			w.dist[nb], w.prev[nb] = g, cur
			w.front.update(nb, w.priorityOf(nb))
		}
	}
}

// passable treats start and goal as open even if their wall flag is set.
func (w *walker) passable(idx int) bool {
	return idx == w.start || idx == w.goal || !w.g.WallAt(idx)
}

func (w *walker) priorityOf(idx int) int {
	if w.pol.priority == nil {
		return 0
	}

	return w.pol.priority(w.dist[idx], Manhattan(w.g.CellAt(idx), w.goalCell))
}

// path reconstructs start→goal once the goal has been finalized.
func (w *walker) path() Path {
	if !w.found {
		return Path{}
	}
	idxs := reconstruct(func(i int) (int, bool) {
		p := w.prev[i]
		return p, p >= 0
	}, w.start, w.goal, len(w.prev))
	out := make(Path, len(idxs))
	for i, idx := range idxs {
		out[i] = w.g.CellAt(idx)
	}

	return out
}

// result snapshots the walker into a Result.
func (w *walker) result() *Result {
	visited := make([]grid.Cell, len(w.visited))
	for i, idx := range w.visited {
		visited[i] = w.g.CellAt(idx)
	}

	return &Result{
		Algorithm: w.algo,
		Path:      w.path(),
		Visited:   visited,
		Found:     w.found,
	}
}
