package search

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/pathviz/ctxlog"
	"github.com/katalvlaran/pathviz/grid"
)

// Run searches g from start to goal with algo and returns the Result.
//
// For each finalized cell other than start and goal, Run calls OnVisit, then
// the Reporter (if any), then sleeps the configured delay. This is the only
// point where Run yields to the caller, and the only point where ctx is
// consulted. On cancellation or a hook/reporter error, Run returns the partial
// Result (Found=false, empty Path) together with the wrapped error.
//
// Errors: ErrGridNil, ErrOutOfBounds, ErrUnknownAlgorithm, ErrOptionViolation,
// ctx.Err(), or any hook/reporter error.
func Run(ctx context.Context, g *grid.Grid, start, goal grid.Cell, algo Algorithm, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w, err := newWalker(g, start, goal, algo)
	if err != nil {
		return nil, err
	}

	logger := ctxlog.FromContext(ctx)
	logger.Debug("search started",
		"algorithm", algo, "rows", g.Rows(), "cols", g.Cols(),
		"start", start.String(), "goal", goal.String(), "delay", o.Delay)
	began := time.Now()

	for step := 1; ; step++ {
		idx, ok := w.advance()
		if !ok {
			break
		}
		ev := Event{Step: step, Cell: g.CellAt(idx), Phase: PhaseVisited}
		if err = suspend(ctx, ev, &o); err != nil {
			logger.Debug("search aborted", "algorithm", algo, "step", step, "error", err)

			return w.result(), err
		}
	}

	res := w.result()
	logger.Debug("search finished",
		"algorithm", algo, "found", res.Found, "visited", len(res.Visited),
		"path_edges", res.Path.Edges(), "elapsed", time.Since(began))

	return res, nil
}

// suspend delivers ev to the hooks and then waits out the step delay.
func suspend(ctx context.Context, ev Event, o *Options) error {
	if err := o.OnVisit(ev); err != nil {
		return fmt.Errorf("search: OnVisit error at %v: %w", ev.Cell, err)
	}
	if o.Reporter != nil {
		if err := o.Reporter.Report(ctx, ev.Cell, ev.Phase); err != nil {
			return fmt.Errorf("search: report error at %v: %w", ev.Cell, err)
		}
	}
	if o.Delay <= 0 {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("search: cancelled at step %d: %w", ev.Step, err)
		}
		return nil
	}

	timer := time.NewTimer(o.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("search: cancelled at step %d: %w", ev.Step, ctx.Err())
	case <-timer.C:
		return nil
	}
}
