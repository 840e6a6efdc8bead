package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/pathviz/search"
)

func compareCmd(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "compare", "-f FILE [-name N]")
	fileFlag := fs.String("f", "", "Path to the scenario .hcl file.")
	nameFlag := fs.String("name", "", "Scenario to run. Defaults to the first one in the file.")
	if help, err := parseFlags(fs, args); help || err != nil {
		return err
	}

	sc, err := loadScenario(ctx, *fileFlag, *nameFlag)
	if err != nil {
		return err
	}

	fmt.Fprintf(e.stdout, "scenario: %s (%dx%d, %d walls)\n\n", sc.Name, sc.Grid.Rows(), sc.Grid.Cols(), sc.Grid.Walls())
	tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tVISITED\tPATH\tSHORTEST\tTIME")
	for _, algo := range search.Algorithms() {
		began := time.Now()
		res, err := search.Run(ctx, sc.Grid, sc.Start, sc.Goal, algo)
		if err != nil {
			return err
		}
		path := "-"
		if res.Found {
			path = fmt.Sprint(res.Path.Edges())
		}
		shortest := "no"
		if algo.Info().Guarantee {
			shortest = "yes"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", algo, len(res.Visited), path, shortest, time.Since(began).Round(time.Microsecond))
	}

	return tw.Flush()
}

func algorithmsCmd(_ context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "algorithms", "")
	if help, err := parseFlags(fs, args); help || err != nil {
		return err
	}

	for _, algo := range search.Algorithms() {
		info := algo.Info()
		fmt.Fprintf(e.stdout, "%-8s %s\n         %s\n", algo, info.Name, info.Description)
	}

	return nil
}
