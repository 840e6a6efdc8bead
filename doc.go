// Package pathviz is a step-by-step grid pathfinding engine with the
// collaborators needed to watch it work.
//
// What is inside?
//
//	grid/        4-connected grid arena: cells, walls, layout parsing, rendering
//	search/      Dijkstra, A*, BFS, DFS and greedy best-first over one shared
//	             skeleton; Run (reporter + delay + context), Stepper, Events
//	scenario/    HCL scenario files
//	cache/       result cache: in-memory or Redis
//	server/      gin HTTP API with JSON and SSE endpoints
//	cli/         run, compare, algorithms, serve
//	config/      .env and environment configuration
//	ctxlog/      slog logger carried in context.Context
//
// Quick ASCII example (BFS, '+' visited, '*' path):
//
//	S+#
//	**+
//	#*G
//
// Every strategy reports each finalized cell other than start and goal, in
// order, and then yields the reconstructed start→goal path (empty if the
// goal is unreachable). Only BFS, Dijkstra and A* guarantee a shortest path.
//
// See cmd/pathviz for the binary.
package pathviz
