package search

// policy parameterises the shared traversal skeleton.
type policy struct {
	// newFrontier builds the frontier container for a grid of n cells.
	newFrontier func(n int) frontier
	// priority ranks a discovered cell given its cost-so-far g and its
	// heuristic h. nil for unordered frontiers.
	priority func(g, h int) int
	// relax lets an open cell take a strictly cheaper cost and predecessor.
	relax bool
	// dedupeOnPop pushes every open neighbour, duplicates included, and skips
	// already-finalized cells when they are popped.
	dedupeOnPop bool
}

var policies = map[Algorithm]policy{
	// Dijkstra scans its unvisited set in row-major order, so ties go to the
	// lower arena index.
	Dijkstra: {
		newFrontier: func(n int) frontier { return newMinQueue(n, true) },
		priority:    func(g, _ int) int { return g },
		relax:       true,
	},
	AStar: {
		newFrontier: func(n int) frontier { return newMinQueue(n, false) },
		priority:    func(g, h int) int { return g + h },
		relax:       true,
	},
	BFS: {
		newFrontier: func(n int) frontier { return &fifo{items: make([]int, 0, n)} },
	},
	DFS: {
		newFrontier: func(n int) frontier { return &lifo{items: make([]int, 0, n)} },
		dedupeOnPop: true,
	},
	Greedy: {
		newFrontier: func(n int) frontier { return newMinQueue(n, false) },
		priority:    func(_, h int) int { return h },
	},
}
