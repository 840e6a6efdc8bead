// Package scenario loads search scenarios from HCL files.
//
// A file holds one or more labelled scenario blocks:
//
//	scenario "corridor" {
//	  algorithm = "astar"   # optional, default "dijkstra"
//	  delay     = "20ms"    # optional: duration or fast, medium, slow
//	  layout = [
//	    "S..#....",
//	    ".#.#.##.",
//	    "...#...G",
//	  ]
//	}
//
// Expressions may reference the process environment through the env object,
// e.g. delay = env.PATHVIZ_DELAY.
package scenario
