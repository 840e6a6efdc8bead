package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/pathviz/grid"
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned when a nil grid is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrOutOfBounds is returned when start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("search: cell out of bounds")

	// ErrUnknownAlgorithm is returned for an unrecognised Algorithm.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Algorithm names a search strategy.
type Algorithm string

// Supported strategies.
const (
	Dijkstra Algorithm = "dijkstra"
	AStar    Algorithm = "astar"
	BFS      Algorithm = "bfs"
	DFS      Algorithm = "dfs"
	Greedy   Algorithm = "greedy"
)

// Algorithms returns all strategies in display order.
func Algorithms() []Algorithm {
	return []Algorithm{Dijkstra, AStar, BFS, DFS, Greedy}
}

// ParseAlgorithm resolves a strategy name case-insensitively.
// "a*" and "a-star" are accepted for AStar, "best-first" for Greedy.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch name := strings.ToLower(strings.TrimSpace(s)); name {
	case "a*", "a-star":
		return AStar, nil
	case "best-first":
		return Greedy, nil
	default:
		a := Algorithm(name)
		if !a.Valid() {
			return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
		}

		return a, nil
	}
}

// Valid reports whether a names a supported strategy.
func (a Algorithm) Valid() bool {
	_, ok := infos[a]

	return ok
}

// Info describes a strategy for display purposes.
type Info struct {
	Algorithm   Algorithm `json:"algorithm"`
	Name        string    `json:"name"`
	Guarantee   bool      `json:"guarantees_shortest_path"`
	Description string    `json:"description"`
}

var infos = map[Algorithm]Info{
	Dijkstra: {
		Algorithm:   Dijkstra,
		Name:        "Dijkstra's Algorithm",
		Guarantee:   true,
		Description: "Explores cells in order of distance from the start. Always finds the shortest path but explores many cells.",
	},
	AStar: {
		Algorithm:   AStar,
		Name:        "A* Search",
		Guarantee:   true,
		Description: "Uses a heuristic to steer toward the goal. Finds the shortest path while exploring fewer cells than Dijkstra.",
	},
	BFS: {
		Algorithm:   BFS,
		Name:        "Breadth-First Search",
		Guarantee:   true,
		Description: "Explores all neighbours at the current depth before moving deeper. Shortest path on unweighted grids.",
	},
	DFS: {
		Algorithm:   DFS,
		Name:        "Depth-First Search",
		Guarantee:   false,
		Description: "Follows each branch as far as possible before backtracking. Does not guarantee the shortest path.",
	},
	Greedy: {
		Algorithm:   Greedy,
		Name:        "Greedy Best-First",
		Guarantee:   false,
		Description: "Always expands the cell that looks closest to the goal. Fast, but does not guarantee the shortest path.",
	},
}

// Info returns the display metadata for a. Unknown algorithms yield a zero Info.
func (a Algorithm) Info() Info {
	return infos[a]
}

// Phase tags a reported cell.
type Phase string

const (
	// PhaseVisited marks a cell finalized by the strategy. It is the only
	// phase the engine emits during a run.
	PhaseVisited Phase = "visited"
	// PhasePath marks a cell of the final path. Renderers apply it after the
	// run completes; the engine never reports it.
	PhasePath Phase = "path"
)

// Event is one step of a run: the Step-th finalized interior cell.
// Step counts from 1.
type Event struct {
	Step  int       `json:"step"`
	Cell  grid.Cell `json:"cell"`
	Phase Phase     `json:"phase"`
}

// Path is an ordered sequence of cells from start to goal inclusive.
// An empty Path means no path exists.
type Path []grid.Cell

// Edges returns the number of moves along the path (len-1), or 0 if empty.
func (p Path) Edges() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Result holds the outcome of a run.
//   - Path:    start→goal cells, empty if the goal is unreachable.
//   - Visited: finalized interior cells in report order.
//   - Found:   whether the goal was reached.
type Result struct {
	Algorithm Algorithm   `json:"algorithm"`
	Path      Path        `json:"path"`
	Visited   []grid.Cell `json:"visited"`
	Found     bool        `json:"found"`
}

// Reporter receives progress from a run. Report is invoked once per visited
// cell, in order; the run is suspended until it returns. A non-nil error
// aborts the run.
type Reporter interface {
	Report(ctx context.Context, cell grid.Cell, phase Phase) error
}

// ReporterFunc adapts an ordinary function to the Reporter interface.
type ReporterFunc func(ctx context.Context, cell grid.Cell, phase Phase) error

// Report calls f(ctx, cell, phase).
func (f ReporterFunc) Report(ctx context.Context, cell grid.Cell, phase Phase) error {
	return f(ctx, cell, phase)
}

// Option configures Run via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Run.
type Option func(*Options)

// Options holds parameters and callbacks for Run.
type Options struct {
	// Reporter, if non-nil, receives every visited cell.
	Reporter Reporter

	// Delay is slept after each report. Zero disables pacing.
	Delay time.Duration

	// OnVisit is called with each Event before the Reporter. Returning an
	// error aborts the run.
	OnVisit func(ev Event) error

	err error
}

// DefaultOptions returns Options with no reporter, no delay and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(Event) error { return nil },
	}
}

// WithReporter installs the progress reporter.
func WithReporter(r Reporter) Option {
	return func(o *Options) {
		o.Reporter = r
	}
}

// WithDelay paces the run by sleeping d after every report.
//
//	d > 0:  sleep d (interrupted by context cancellation)
//	d == 0: no pacing
//	d < 0:  invalid option → ErrOptionViolation
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: delay cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.Delay = d
	}
}

// WithOnVisit registers a hook called for every Event.
func WithOnVisit(fn func(ev Event) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
