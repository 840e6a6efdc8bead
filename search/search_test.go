package search_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/ctxlog"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// cells is a shorthand for building expected cell slices.
func cells(rc ...[2]int) []grid.Cell {
	out := make([]grid.Cell, len(rc))
	for i, p := range rc {
		out[i] = grid.Cell{Row: p[0], Col: p[1]}
	}
	return out
}

// mustParse parses a layout or fails the test.
func mustParse(t testing.TB, layout ...string) (*grid.Grid, grid.Cell, grid.Cell) {
	t.Helper()
	g, start, goal, err := grid.Parse(layout)
	require.NoError(t, err)
	return g, start, goal
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

// TestRun_Errors verifies that invalid inputs and options are rejected.
func TestRun_Errors(t *testing.T) {
	ctx := context.Background()
	g, start, goal := mustParse(t, "S.G")

	_, err := search.Run(ctx, nil, start, goal, search.BFS)
	assert.ErrorIs(t, err, search.ErrGridNil)

	_, err = search.Run(ctx, g, grid.Cell{Row: 3, Col: 0}, goal, search.BFS)
	assert.ErrorIs(t, err, search.ErrOutOfBounds)

	_, err = search.Run(ctx, g, start, grid.Cell{Row: 0, Col: -1}, search.BFS)
	assert.ErrorIs(t, err, search.ErrOutOfBounds)

	_, err = search.Run(ctx, g, start, goal, search.Algorithm("ida"))
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)

	_, err = search.Run(ctx, g, start, goal, search.BFS, search.WithDelay(-time.Second))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	_, err = search.NewStepper(nil, start, goal, search.DFS)
	assert.ErrorIs(t, err, search.ErrGridNil)

	_, _, err = search.Events(g, start, goal, "")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

// TestParseAlgorithm checks names, aliases and rejection.
func TestParseAlgorithm(t *testing.T) {
	cases := map[string]search.Algorithm{
		"dijkstra":   search.Dijkstra,
		"AStar":      search.AStar,
		"a*":         search.AStar,
		"A-Star":     search.AStar,
		" bfs ":      search.BFS,
		"DFS":        search.DFS,
		"greedy":     search.Greedy,
		"best-first": search.Greedy,
	}
	for in, want := range cases {
		got, err := search.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := search.ParseAlgorithm("jps")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

// TestAlgorithmInfo checks the shortest-path guarantee flags.
func TestAlgorithmInfo(t *testing.T) {
	want := map[search.Algorithm]bool{
		search.Dijkstra: true,
		search.AStar:    true,
		search.BFS:      true,
		search.DFS:      false,
		search.Greedy:   false,
	}
	require.Len(t, search.Algorithms(), len(want))
	for _, a := range search.Algorithms() {
		info := a.Info()
		assert.Equal(t, a, info.Algorithm)
		assert.Equal(t, want[a], info.Guarantee, a)
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.Description)
	}
	assert.False(t, search.Algorithm("nope").Valid())
	assert.Equal(t, search.Info{}, search.Algorithm("nope").Info())
}

// TestManhattan checks the heuristic.
func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, search.Manhattan(grid.Cell{Row: 2, Col: 2}, grid.Cell{Row: 2, Col: 2}))
	assert.Equal(t, 7, search.Manhattan(grid.Cell{Row: 0, Col: 5}, grid.Cell{Row: 4, Col: 2}))
}

//----------------------------------------------------------------------------//
// Exact traces: tie-breaking is part of the contract
//----------------------------------------------------------------------------//

// TestRun_ExactTraces pins the visit order and path of every strategy on an
// open 3×3 grid from (0,0) to (2,2).
func TestRun_ExactTraces(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	start, goal := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 2}

	cases := []struct {
		algo    search.Algorithm
		visited []grid.Cell
		path    []grid.Cell
	}{
		{
			algo:    search.Dijkstra,
			visited: cells([2]int{0, 1}, [2]int{1, 0}, [2]int{0, 2}, [2]int{1, 1}, [2]int{2, 0}, [2]int{1, 2}, [2]int{2, 1}),
			path:    cells([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2}),
		},
		{
			algo:    search.AStar,
			visited: cells([2]int{1, 0}, [2]int{0, 1}, [2]int{2, 0}, [2]int{1, 1}, [2]int{0, 2}, [2]int{2, 1}, [2]int{1, 2}),
			path:    cells([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2}),
		},
		{
			algo:    search.BFS,
			visited: cells([2]int{1, 0}, [2]int{0, 1}, [2]int{2, 0}, [2]int{1, 1}, [2]int{0, 2}, [2]int{2, 1}, [2]int{1, 2}),
			path:    cells([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2}),
		},
		{
			algo:    search.DFS,
			visited: cells([2]int{0, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{1, 1}, [2]int{1, 0}, [2]int{2, 0}, [2]int{2, 1}),
			path: cells([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{1, 1},
				[2]int{1, 0}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2}),
		},
		{
			algo:    search.Greedy,
			visited: cells([2]int{1, 0}, [2]int{2, 0}, [2]int{2, 1}),
			path:    cells([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2}),
		},
	}
	for _, tc := range cases {
		t.Run(string(tc.algo), func(t *testing.T) {
			res, err := search.Run(context.Background(), g, start, goal, tc.algo)
			require.NoError(t, err)
			assert.True(t, res.Found)
			assert.Equal(t, tc.algo, res.Algorithm)
			assert.Equal(t, tc.visited, res.Visited)
			assert.Equal(t, search.Path(tc.path), res.Path)
		})
	}
}

// TestRun_OpenGridRings covers the 5×5 BFS scenario: 8 edges, and every
// cell except start and goal visited in non-decreasing Manhattan rings.
func TestRun_OpenGridRings(t *testing.T) {
	g, _ := grid.New(5, 5)
	start, goal := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 4, Col: 4}

	res, err := search.Run(context.Background(), g, start, goal, search.BFS)
	require.NoError(t, err)
	assert.Equal(t, 8, res.Path.Edges())
	require.Len(t, res.Visited, 23)

	rings := map[int]int{}
	last := 0
	for _, c := range res.Visited {
		d := search.Manhattan(start, c)
		require.GreaterOrEqual(t, d, last, "ring order broken at %v", c)
		last = d
		rings[d]++
	}
	assert.Equal(t, map[int]int{1: 2, 2: 3, 3: 4, 4: 5, 5: 4, 6: 3, 7: 2}, rings)
}

// TestRun_Corridor verifies that a branchless corridor yields the same path
// for every strategy.
func TestRun_Corridor(t *testing.T) {
	g, start, goal := mustParse(t,
		"S.###",
		"#.###",
		"#...#",
		"###.G",
	)
	want := search.Path(cells(
		[2]int{0, 0}, [2]int{0, 1}, [2]int{1, 1}, [2]int{2, 1},
		[2]int{2, 2}, [2]int{2, 3}, [2]int{3, 3}, [2]int{3, 4},
	))
	for _, algo := range search.Algorithms() {
		res, err := search.Run(context.Background(), g, start, goal, algo)
		require.NoError(t, err, algo)
		assert.Equal(t, want, res.Path, algo)
		assert.Len(t, res.Visited, 6, algo)
	}
}

// TestRun_WallRow verifies that a complete wall row yields an empty path and
// exhausts the start region for every strategy.
func TestRun_WallRow(t *testing.T) {
	g, start, goal := mustParse(t,
		"S...",
		"..#.",
		"####",
		"...G",
	)
	region := g.Reachable(start, nil)
	for _, algo := range search.Algorithms() {
		res, err := search.Run(context.Background(), g, start, goal, algo)
		require.NoError(t, err, algo)
		assert.False(t, res.Found, algo)
		assert.Empty(t, res.Path, algo)
		assert.ElementsMatch(t, region[1:], res.Visited, algo)
	}
}

// TestRun_StartEqualsGoal yields [start] with no reports.
func TestRun_StartEqualsGoal(t *testing.T) {
	g, _ := grid.New(3, 3)
	c := grid.Cell{Row: 1, Col: 1}
	for _, algo := range search.Algorithms() {
		reports := 0
		res, err := search.Run(context.Background(), g, c, c, algo,
			search.WithReporter(search.ReporterFunc(func(context.Context, grid.Cell, search.Phase) error {
				reports++
				return nil
			})),
		)
		require.NoError(t, err, algo)
		assert.Zero(t, reports, algo)
		assert.True(t, res.Found, algo)
		assert.Equal(t, search.Path{c}, res.Path, algo)
		assert.Zero(t, res.Path.Edges(), algo)
	}
}

// TestRun_WalledStartAndGoal treats start and goal as passable even if flagged.
func TestRun_WalledStartAndGoal(t *testing.T) {
	g, start, goal := mustParse(t, "S..G")
	require.NoError(t, g.SetWall(start, true))
	require.NoError(t, g.SetWall(goal, true))
	for _, algo := range search.Algorithms() {
		res, err := search.Run(context.Background(), g, start, goal, algo)
		require.NoError(t, err, algo)
		assert.Equal(t, 3, res.Path.Edges(), algo)
	}
}

//----------------------------------------------------------------------------//
// Reporter contract, pacing and cancellation
//----------------------------------------------------------------------------//

// TestRun_ReporterOrder checks that the Reporter and OnVisit see every visited
// cell once, in order, never start or goal.
func TestRun_ReporterOrder(t *testing.T) {
	g, start, goal := mustParse(t,
		"S..#",
		".#..",
		"...G",
	)
	var reported []grid.Cell
	var steps []int
	res, err := search.Run(context.Background(), g, start, goal, search.AStar,
		search.WithReporter(search.ReporterFunc(func(_ context.Context, c grid.Cell, p search.Phase) error {
			assert.Equal(t, search.PhaseVisited, p)
			reported = append(reported, c)
			return nil
		})),
		search.WithOnVisit(func(ev search.Event) error {
			steps = append(steps, ev.Step)
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, res.Visited, reported)
	assert.NotContains(t, reported, start)
	assert.NotContains(t, reported, goal)
	for i, s := range steps {
		assert.Equal(t, i+1, s)
	}
}

// TestRun_ReporterError aborts the run with a wrapped error and partial result.
func TestRun_ReporterError(t *testing.T) {
	g, _ := grid.New(4, 4)
	boom := errors.New("boom")
	calls := 0
	res, err := search.Run(context.Background(), g, grid.Cell{}, grid.Cell{Row: 3, Col: 3}, search.BFS,
		search.WithReporter(search.ReporterFunc(func(context.Context, grid.Cell, search.Phase) error {
			calls++
			if calls == 2 {
				return boom
			}
			return nil
		})),
	)
	require.ErrorIs(t, err, boom)
	require.NotNil(t, res)
	assert.Len(t, res.Visited, 2)
	assert.False(t, res.Found)
	assert.Empty(t, res.Path)
}

// TestRun_Cancel stops at the suspension point once the context is cancelled.
func TestRun_Cancel(t *testing.T) {
	g, _ := grid.New(10, 10)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	res, err := search.Run(ctx, g, grid.Cell{}, grid.Cell{Row: 9, Col: 9}, search.Dijkstra,
		search.WithOnVisit(func(ev search.Event) error {
			if ev.Step == 3 {
				cancel()
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, context.Canceled)
	assert.Len(t, res.Visited, 3)
	assert.False(t, res.Found)
}

// TestRun_Delay paces each step and is interrupted by a deadline.
func TestRun_Delay(t *testing.T) {
	g, start, goal := mustParse(t, "S...G")

	began := time.Now()
	res, err := search.Run(context.Background(), g, start, goal, search.BFS, search.WithDelay(2*time.Millisecond))
	require.NoError(t, err)
	require.Len(t, res.Visited, 3)
	assert.GreaterOrEqual(t, time.Since(began), 6*time.Millisecond)

	big, _ := grid.New(20, 20)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = search.Run(ctx, big, grid.Cell{}, grid.Cell{Row: 19, Col: 19}, search.BFS, search.WithDelay(time.Hour))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

//----------------------------------------------------------------------------//
// Stepper and Events
//----------------------------------------------------------------------------//

// TestStepper_MatchesRun pulls events one by one and compares with Run.
func TestStepper_MatchesRun(t *testing.T) {
	g, start, goal := mustParse(t,
		"S.#....",
		".##.##.",
		"......G",
	)
	for _, algo := range search.Algorithms() {
		want, err := search.Run(context.Background(), g, start, goal, algo)
		require.NoError(t, err)

		s, err := search.NewStepper(g, start, goal, algo)
		require.NoError(t, err)
		var got []grid.Cell
		for ev, ok := s.Next(); ok; ev, ok = s.Next() {
			assert.Equal(t, len(got)+1, ev.Step)
			assert.Empty(t, s.Path(), "path must stay empty mid-run")
			got = append(got, ev.Cell)
		}
		assert.True(t, s.Done())
		assert.Equal(t, want.Visited, got, algo)
		assert.Equal(t, want.Path, s.Path(), algo)
		assert.Equal(t, want, s.Result(), algo)

		_, ok := s.Next()
		assert.False(t, ok, "exhausted stepper stays exhausted")

		s.Reset()
		assert.False(t, s.Done())
		ev, ok := s.Next()
		if len(want.Visited) > 0 {
			require.True(t, ok)
			assert.Equal(t, search.Event{Step: 1, Cell: want.Visited[0], Phase: search.PhaseVisited}, ev)
		}
	}
}

// TestEvents_Restartable ranges twice and breaks early once.
func TestEvents_Restartable(t *testing.T) {
	g, _ := grid.New(4, 4)
	goal := grid.Cell{Row: 3, Col: 3}
	seq, result, err := search.Events(g, grid.Cell{}, goal, search.Greedy)
	require.NoError(t, err)

	for range seq {
		break
	}
	assert.Nil(t, result(), "an interrupted range leaves no result")

	var first, second []grid.Cell
	for ev := range seq {
		first = append(first, ev.Cell)
	}
	r1 := result()
	require.NotNil(t, r1)
	for ev := range seq {
		second = append(second, ev.Cell)
	}
	assert.Equal(t, first, second)
	assert.Equal(t, r1.Visited, first)
	assert.Equal(t, 6, result().Path.Edges())
}

// TestRun_LogsThroughContext checks that Run uses the logger carried by ctx.
func TestRun_LogsThroughContext(t *testing.T) {
	var buf bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), ctxlog.New("debug", "json", &buf))
	g, start, goal := mustParse(t, "S.G")

	_, err := search.Run(ctx, g, start, goal, search.BFS)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"search started"`)
	assert.Contains(t, buf.String(), `"msg":"search finished"`)
	assert.Contains(t, buf.String(), `"path_edges":2`)
}
