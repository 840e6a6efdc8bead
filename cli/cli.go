// Package cli implements the pathviz command line: run, compare, algorithms
// and serve.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/pathviz/config"
	"github.com/katalvlaran/pathviz/ctxlog"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) error {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// command is one subcommand.
type command struct {
	name    string
	summary string
	run     func(ctx context.Context, env *env, args []string) error
}

// env is what every subcommand receives.
type env struct {
	cfg    config.Config
	stdout io.Writer
	stderr io.Writer
}

var commands = []command{
	{"run", "run one scenario and draw the result", runCmd},
	{"compare", "run every strategy on one scenario", compareCmd},
	{"algorithms", "list the available strategies", algorithmsCmd},
	{"serve", "start the HTTP API", serveCmd},
}

// Run parses global flags, installs the logger in ctx, and dispatches to the
// subcommand. Usage errors are returned as *ExitError with code 2.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, cfg config.Config) error {
	flagSet := flag.NewFlagSet("pathviz", flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.Usage = func() {
		fmt.Fprint(stderr, `
pathviz - step-by-step grid pathfinding.

Usage:
  pathviz [options] <command> [command options]

Commands:
`)
		for _, c := range commands {
			fmt.Fprintf(stderr, "  %-11s %s\n", c.name, c.summary)
		}
		fmt.Fprint(stderr, "\nOptions:\n")
		flagSet.PrintDefaults()
	}

	logLevelFlag := flagSet.String("log-level", cfg.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", cfg.LogFormat, "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return usageError("%s", err.Error())
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return usageError("invalid log-format: must be 'text' or 'json'")
	}
	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	cfg.LogLevel, cfg.LogFormat = logLevel, logFormat

	logger := ctxlog.New(logLevel, logFormat, stderr)
	ctx = ctxlog.WithLogger(ctx, logger)

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return usageError("missing command")
	}
	name, rest := flagSet.Arg(0), flagSet.Args()[1:]
	for _, c := range commands {
		if c.name == name {
			logger.Debug("Dispatching command.", "command", name, "args", rest)
			return c.run(ctx, &env{cfg: cfg, stdout: stdout, stderr: stderr}, rest)
		}
	}
	flagSet.Usage()

	return usageError("unknown command %q", name)
}

// newFlagSet builds a subcommand flag set writing to stderr.
func newFlagSet(e *env, name, usage string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.Usage = func() {
		fmt.Fprintf(e.stderr, "Usage:\n  pathviz %s %s\n\nOptions:\n", name, usage)
		fs.PrintDefaults()
	}

	return fs
}

// parseFlags parses a subcommand flag set, mapping -h to a clean exit.
func parseFlags(fs *flag.FlagSet, args []string) (help bool, err error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, usageError("%s", err.Error())
	}
	if fs.NArg() > 0 {
		return false, usageError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	return false, nil
}
