package search

import (
	"iter"

	"github.com/katalvlaran/pathviz/grid"
)

// Stepper drives a run one visited cell at a time. The caller pulls events
// at its own pace; nothing happens between calls to Next.
// A Stepper is not safe for concurrent use.
type Stepper struct {
	g           *grid.Grid
	start, goal grid.Cell
	algo        Algorithm
	w           *walker
	step        int
}

// NewStepper validates the inputs and prepares a run without advancing it.
func NewStepper(g *grid.Grid, start, goal grid.Cell, algo Algorithm) (*Stepper, error) {
	w, err := newWalker(g, start, goal, algo)
	if err != nil {
		return nil, err
	}

	return &Stepper{g: g, start: start, goal: goal, algo: algo, w: w}, nil
}

// Next advances to the next visited cell. ok is false once the run has
// finished; Path and Result are then final.
func (s *Stepper) Next() (ev Event, ok bool) {
	idx, ok := s.w.advance()
	if !ok {
		return Event{}, false
	}
	s.step++

	return Event{Step: s.step, Cell: s.g.CellAt(idx), Phase: PhaseVisited}, true
}

// Done reports whether the run has finished.
func (s *Stepper) Done() bool { return s.w.done }

// Path returns the reconstructed path, or an empty Path while the run is
// still in progress or when the goal is unreachable.
func (s *Stepper) Path() Path { return s.w.path() }

// Result snapshots the run so far.
func (s *Stepper) Result() *Result { return s.w.result() }

// Reset restarts the run from the beginning.
func (s *Stepper) Reset() {
	s.w, _ = newWalker(s.g, s.start, s.goal, s.algo) // inputs were validated by NewStepper
	s.step = 0
}

// Events returns a lazy, finite, restartable sequence of the visited events
// of a run. Every range over the sequence performs a fresh search. The
// returned func yields the Result of the most recent range that ran to
// completion, or nil if none has. The sequence must not be ranged from
// several goroutines at once: all ranges share that last Result.
func Events(g *grid.Grid, start, goal grid.Cell, algo Algorithm) (iter.Seq[Event], func() *Result, error) {
	if _, err := validate(g, start, goal, algo); err != nil {
		return nil, nil, err
	}
	var last *Result
	seq := func(yield func(Event) bool) {
		s, err := NewStepper(g, start, goal, algo)
		if err != nil {
			return
		}
		for {
			ev, ok := s.Next()
			if !ok {
				last = s.Result()
				return
			}
			if !yield(ev) {
				return
			}
		}
	}

	return seq, func() *Result { return last }, nil
}
