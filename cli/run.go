package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/pathviz/ctxlog"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/scenario"
	"github.com/katalvlaran/pathviz/search"
)

// Marks used when drawing a run.
const (
	markVisited = '+'
	markPath    = '*'
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\033[H\033[2J"

// loadScenario reads -f and picks -name.
func loadScenario(ctx context.Context, file, name string) (*scenario.Scenario, error) {
	if file == "" {
		return nil, usageError("missing -f scenario file")
	}
	list, err := scenario.LoadFile(ctx, file)
	if err != nil {
		return nil, err
	}

	return scenario.Find(list, name)
}

func runCmd(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "run", "-f FILE [-name N] [-algorithm A] [-delay D] [-animate]")
	fileFlag := fs.String("f", "", "Path to the scenario .hcl file.")
	nameFlag := fs.String("name", "", "Scenario to run. Defaults to the first one in the file.")
	algoFlag := fs.String("algorithm", "", "Override the scenario's strategy.")
	delayFlag := fs.String("delay", "", "Override the per-step delay: a duration or fast, medium, slow.")
	animateFlag := fs.Bool("animate", false, "Redraw the grid after every visited cell.")
	if help, err := parseFlags(fs, args); help || err != nil {
		return err
	}

	sc, err := loadScenario(ctx, *fileFlag, *nameFlag)
	if err != nil {
		return err
	}
	algo := sc.Algorithm
	if *algoFlag != "" {
		if algo, err = search.ParseAlgorithm(*algoFlag); err != nil {
			return usageError("%s", err.Error())
		}
	}
	delay := sc.Delay
	if *delayFlag != "" {
		if delay, err = search.ParseDelay(*delayFlag); err != nil {
			return usageError("%s", err.Error())
		}
	}

	logger := ctxlog.FromContext(ctx)
	logger.Info("Running scenario.", "scenario", sc.Name, "algorithm", algo, "delay", delay)

	opts := []search.Option{search.WithDelay(delay)}
	if *animateFlag {
		visited := make(map[grid.Cell]rune)
		opts = append(opts, search.WithReporter(search.ReporterFunc(
			func(_ context.Context, c grid.Cell, _ search.Phase) error {
				visited[c] = markVisited
				return draw(e.stdout, clearScreen, sc, visited)
			})))
	}

	began := time.Now()
	res, err := search.Run(ctx, sc.Grid, sc.Start, sc.Goal, algo, opts...)
	elapsed := time.Since(began)
	if err != nil {
		return err
	}

	prefix := ""
	if *animateFlag {
		prefix = clearScreen
	}
	if err := draw(e.stdout, prefix, sc, resultMarks(res)); err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "scenario:  %s\nalgorithm: %s\nreachable: %d\nvisited:   %d\n",
		sc.Name, algo.Info().Name, reachable(sc), len(res.Visited))
	if res.Found {
		fmt.Fprintf(e.stdout, "path:      %d\n", res.Path.Edges())
	} else {
		fmt.Fprintln(e.stdout, "path:      No path")
	}
	fmt.Fprintf(e.stdout, "time:      %s\n", elapsed.Round(time.Millisecond))

	return nil
}

// resultMarks overlays visited cells, then the path, on a rendering.
func resultMarks(res *search.Result) map[grid.Cell]rune {
	marks := make(map[grid.Cell]rune, len(res.Visited)+len(res.Path))
	for _, c := range res.Visited {
		marks[c] = markVisited
	}
	for _, c := range res.Path {
		marks[c] = markPath
	}

	return marks
}

// draw writes prefix and the scenario grid with marks, start and goal on top.
func draw(w io.Writer, prefix string, sc *scenario.Scenario, marks map[grid.Cell]rune) error {
	all := make(map[grid.Cell]rune, len(marks)+2)
	for c, r := range marks {
		all[c] = r
	}
	all[sc.Start], all[sc.Goal] = grid.GlyphStart, grid.GlyphGoal
	_, err := io.WriteString(w, prefix+sc.Grid.Render(all))

	return err
}

// reachable counts the cells a search from start could finalize, start excluded.
func reachable(sc *scenario.Scenario) int {
	region := sc.Grid.Reachable(sc.Start, func(c grid.Cell) bool {
		return c == sc.Goal || !sc.Grid.IsWall(c)
	})

	return len(region) - 1
}
