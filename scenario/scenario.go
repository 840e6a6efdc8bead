package scenario

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/pathviz/ctxlog"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// Sentinel errors returned by the loader.
var (
	// ErrDuplicateScenario is returned when two blocks share a label.
	ErrDuplicateScenario = errors.New("scenario: duplicate scenario name")

	// ErrInvalidScenario wraps a bad algorithm, delay or layout.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")

	// ErrNotFound is returned by Find when no scenario matches.
	ErrNotFound = errors.New("scenario: not found")
)

// DefaultAlgorithm is used when a block omits algorithm.
const DefaultAlgorithm = search.Dijkstra

// Scenario is one decoded, validated search setup.
type Scenario struct {
	Name      string
	Algorithm search.Algorithm
	Delay     time.Duration
	Grid      *grid.Grid
	Start     grid.Cell
	Goal      grid.Cell
}

// fileRoot is the top-level schema of a scenario file.
type fileRoot struct {
	Scenarios []*block `hcl:"scenario,block"`
}

// block mirrors a scenario block before validation.
type block struct {
	Name      string   `hcl:"name,label"`
	Algorithm string   `hcl:"algorithm,optional"`
	Delay     string   `hcl:"delay,optional"`
	Layout    []string `hcl:"layout"`
}

// LoadFile reads and parses the scenario file at path.
func LoadFile(ctx context.Context, path string) ([]*Scenario, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: reading %s: %w", path, err)
	}

	return Parse(ctx, src, path)
}

// Parse decodes scenario blocks from src. filename is used in diagnostics.
// Scenarios are returned in file order.
func Parse(ctx context.Context, src []byte, filename string) ([]*Scenario, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing scenario file.", "file", filename, "bytes", len(src))

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, evalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	out := make([]*Scenario, 0, len(root.Scenarios))
	seen := make(map[string]struct{}, len(root.Scenarios))
	for _, b := range root.Scenarios {
		if _, dup := seen[b.Name]; dup {
			return nil, fmt.Errorf("%w: %q in %s", ErrDuplicateScenario, b.Name, filename)
		}
		seen[b.Name] = struct{}{}

		sc, err := b.translate()
		if err != nil {
			return nil, fmt.Errorf("%w: %q in %s: %w", ErrInvalidScenario, b.Name, filename, err)
		}
		out = append(out, sc)
	}

	logger.Debug("Scenario file loaded.", "file", filename, "scenarios", len(out))
	return out, nil
}

// translate validates a decoded block and builds its Scenario.
func (b *block) translate() (*Scenario, error) {
	algo := DefaultAlgorithm
	if b.Algorithm != "" {
		a, err := search.ParseAlgorithm(b.Algorithm)
		if err != nil {
			return nil, err
		}
		algo = a
	}

	delay, err := search.ParseDelay(b.Delay)
	if err != nil {
		return nil, err
	}

	g, start, goal, err := grid.Parse(b.Layout)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	return &Scenario{
		Name:      b.Name,
		Algorithm: algo,
		Delay:     delay,
		Grid:      g,
		Start:     start,
		Goal:      goal,
	}, nil
}

// evalContext exposes the process environment as the env object. Variables
// whose names are not valid HCL identifiers are skipped.
func evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, e := range os.Environ() {
		k, v, ok := strings.Cut(e, "=")
		if !ok || !hclsyntax.ValidIdentifier(k) {
			continue
		}
		vars[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}

// Find returns the scenario called name, or the first one if name is empty.
func Find(list []*Scenario, name string) (*Scenario, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: file has no scenarios", ErrNotFound)
	}
	if name == "" {
		return list[0], nil
	}
	for _, sc := range list {
		if sc.Name == name {
			return sc, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}
