// Package search runs step-by-step path searches over a grid.Grid.
//
// Five strategies share one traversal skeleton and differ only in their
// frontier container and node-selection policy:
//
//	Strategy  Frontier              Next node                    Relaxes open nodes  Shortest path
//	Dijkstra  indexed heap          min distance (row-major tie)  yes                 yes
//	AStar     indexed heap          min g+h (first-in tie)        yes                 yes
//	BFS       FIFO queue            queue head                    no                  yes
//	DFS       LIFO stack            stack top, dedup on pop       no                  no
//	Greedy    indexed heap          min h (first-in tie)          no                  no
//
// The heuristic is Manhattan distance, which is admissible and consistent on a
// 4-connected unit-cost grid.
//
// Every run reports each finalized cell other than start and goal exactly
// once, in finalization order. That report is the only point where a run
// yields to its caller. There are three ways to consume a run:
//
//   - Run(ctx, g, start, goal, algo, opts...): push-style. A Reporter is
//     invoked per visited cell, followed by an optional step delay. The context
//     is checked at that suspension point, so cancelling it aborts the run.
//   - NewStepper(...): pull-style. Next() advances to the next visited cell.
//   - Events(...): a lazy, finite, restartable iter.Seq[Event].
//
// ParseDelay turns a pacing preset (fast, medium, slow) or a duration string
// into the value expected by WithDelay.
//
// "No path" is not an error: the Result has Found=false and an empty Path.
//
// Errors:
//
//   - ErrGridNil          if the grid is nil.
//   - ErrOutOfBounds      if start or goal lies outside the grid.
//   - ErrUnknownAlgorithm for an unrecognised Algorithm.
//   - ErrOptionViolation  for invalid options (e.g. a negative delay).
//   - context errors and Reporter/OnVisit errors, wrapped with the cell.
//
// Complexity (V = rows×cols):
//
//   - BFS, DFS:                O(V) time, O(V) memory.
//   - Dijkstra, AStar, Greedy: O(V log V) time, O(V) memory.
package search
