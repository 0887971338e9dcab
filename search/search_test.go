package search_test

import (
	"context"
	"math"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/search"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

// arc is one outgoing edge of graphProblem; the action is the arc label.
type arc struct {
	label string
	to    string
	cost  float64
}

// graphProblem is an explicit weighted digraph exposed as a Problem.
// Actions are enumerated in insertion order.
type graphProblem struct {
	start string
	goals map[string]bool
	adj   map[string][]arc
}

func newGraph(start string, goals ...string) *graphProblem {
	g := &graphProblem{start: start, goals: map[string]bool{}, adj: map[string][]arc{}}
	for _, s := range goals {
		g.goals[s] = true
	}

	return g
}

// edge adds from→to labelled "from>to".
func (g *graphProblem) edge(from, to string, cost float64) *graphProblem {
	g.adj[from] = append(g.adj[from], arc{label: from + ">" + to, to: to, cost: cost})
	return g
}

func (g *graphProblem) InitialState() string { return g.start }
func (g *graphProblem) IsGoal(s string) bool { return g.goals[s] }
func (g *graphProblem) Successor(s, a string) string {
	for _, e := range g.adj[s] {
		if e.label == a {
			return e.to
		}
	}
	panic("unknown action " + a)
}

func (g *graphProblem) Actions(s string) []string {
	out := make([]string, 0, len(g.adj[s]))
	for _, e := range g.adj[s] {
		out = append(out, e.label)
	}

	return out
}

func (g *graphProblem) Cost(s, a string) float64 {
	for _, e := range g.adj[s] {
		if e.label == a {
			return e.cost
		}
	}
	panic("unknown action " + a)
}

func zero(search.Problem[string, string], string) float64 { return 0 }

// corridor is a 1-D corridor of cells 0..goal; moving left from 0 is not
// offered. leftFirst controls action enumeration order.
type corridor struct {
	goal      int
	leftFirst bool
}

func (c corridor) InitialState() int { return 0 }
func (c corridor) IsGoal(s int) bool { return s == c.goal }
func (c corridor) Cost(int, int) float64 { return 1 }
func (c corridor) Successor(s, a int) int { return s + a }

func (c corridor) Actions(s int) []int {
	if s == c.goal {
		return nil
	}
	if s == 0 {
		return []int{+1}
	}
	if c.leftFirst {
		return []int{-1, +1}
	}

	return []int{+1, -1}
}

func remaining(goal int) search.Heuristic[int, int] {
	return func(_ search.Problem[int, int], s int) float64 { return float64(goal - s) }
}

func TestCorridor_AllStrategies(t *testing.T) {
	p := corridor{goal: 3}
	right := []int{1, 1, 1}

	res, err := search.BFS[int, int](p, 0)
	require.NoError(t, err)
	assert.Equal(t, right, res.Path)

	res, err = search.UCS[int, int](p, 0)
	require.NoError(t, err)
	assert.Equal(t, right, res.Path)
	assert.Equal(t, 3.0, res.Cost)

	res, err = search.AStar[int, int](p, 0, remaining(3))
	require.NoError(t, err)
	assert.Equal(t, right, res.Path)

	res, err = search.Greedy[int, int](p, 0, remaining(3))
	require.NoError(t, err)
	assert.Equal(t, right, res.Path)

	dfs, err := search.DFS[int, int](corridor{goal: 3, leftFirst: true}, 0)
	require.NoError(t, err)
	require.True(t, dfs.Found)
	assert.GreaterOrEqual(t, len(dfs.Path), len(right))
}

func TestInitialStateIsGoal(t *testing.T) {
	g := newGraph("A", "A").edge("A", "B", 1)
	for name, run := range strategies() {
		res, err := run(g)
		require.NoError(t, err, name)
		assert.True(t, res.Found, name)
		assert.NotNil(t, res.Path, name)
		assert.Empty(t, res.Path, name)
		assert.Zero(t, res.Cost, name)
	}
}

func TestNoSolution(t *testing.T) {
	// B→C→B cycle, goal Z unreachable
	g := newGraph("A", "Z").edge("A", "B", 1).edge("B", "C", 1).edge("C", "B", 1)
	for name, run := range strategies() {
		res, err := run(g)
		require.NoError(t, err, name)
		assert.False(t, res.Found, name)
		assert.Nil(t, res.Path, name)
		assert.Equal(t, 3, res.Stats.Expanded, name)
	}
}

func TestUnitCostGraph_SameLength(t *testing.T) {
	// A–B–C–D–K (4 hops) vs A–E–F–K (3 hops)
	g := newGraph("A", "K").
		edge("A", "B", 1).edge("B", "C", 1).edge("C", "D", 1).edge("D", "K", 1).
		edge("A", "E", 1).edge("E", "F", 1).edge("F", "K", 1)

	want := []string{"A>E", "E>F", "F>K"}
	for _, name := range []string{"bfs", "ucs", "astar"} {
		res, err := strategies()[name](g)
		require.NoError(t, err, name)
		assert.Equal(t, want, res.Path, name)
		assert.Equal(t, 3.0, res.Cost, name)
	}
}

func TestWeighted_UCSBeatsBFS(t *testing.T) {
	// direct A→G costs 10, detour A→B→C→G costs 3
	g := newGraph("A", "G").
		edge("A", "G", 10).
		edge("A", "B", 1).edge("B", "C", 1).edge("C", "G", 1)

	bfs, err := search.BFS[string, string](g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A>G"}, bfs.Path)
	assert.Equal(t, 10.0, bfs.Cost)

	ucs, err := search.UCS[string, string](g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A>B", "B>C", "C>G"}, ucs.Path)
	assert.Equal(t, 3.0, ucs.Cost)

	astar, err := search.AStar[string, string](g, "A", zero)
	require.NoError(t, err)
	assert.Equal(t, ucs.Path, astar.Path)
}

func TestUCS_DecreaseKey(t *testing.T) {
	// C is first discovered via A→C (5), then improved via A→B→C (2)
	g := newGraph("A", "D").
		edge("A", "C", 5).edge("A", "B", 1).
		edge("B", "C", 1).edge("C", "D", 1)

	var order []string
	res, err := search.UCS[string, string](g, "A", search.WithOnExpand(func(s any, _ int) {
		order = append(order, s.(string))
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A>B", "B>C", "C>D"}, res.Path)
	assert.Equal(t, 3.0, res.Cost)
	// the stale C@5 entry is never expanded
	assert.Equal(t, []string{"A", "B", "C", "D"}, order)
}

func TestTieBreak_EarlierInsertionWins(t *testing.T) {
	// two equal-cost routes; the one through the first-enumerated action wins
	g := newGraph("S", "G").
		edge("S", "X", 1).edge("S", "Y", 1).
		edge("X", "G", 1).edge("Y", "G", 1)

	for _, name := range []string{"bfs", "ucs", "astar", "greedy"} {
		res, err := strategies()[name](g)
		require.NoError(t, err, name)
		assert.Equal(t, []string{"S>X", "X>G"}, res.Path, name)
	}
}

func TestDFS_LongerThanBFS(t *testing.T) {
	// DFS dives into the last-enumerated branch first
	g := newGraph("A", "G").
		edge("A", "G", 1).
		edge("A", "B", 1).edge("B", "C", 1).edge("C", "G", 1)

	bfs, err := search.BFS[string, string](g, "A")
	require.NoError(t, err)
	dfs, err := search.DFS[string, string](g, "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A>G"}, bfs.Path)
	assert.Equal(t, []string{"A>B", "B>C", "C>G"}, dfs.Path)
	assert.Greater(t, len(dfs.Path), len(bfs.Path))
}

func TestDeterminism(t *testing.T) {
	g := gridProblem{w: 6, h: 6, walls: map[[2]int]bool{{2, 0}: true, {2, 1}: true, {2, 2}: true, {4, 5}: true, {4, 4}: true}}
	for name, run := range gridStrategies() {
		first, err := run(g)
		require.NoError(t, err, name)
		second, err := run(g)
		require.NoError(t, err, name)
		assert.Equal(t, first, second, name)
	}
}

func TestAStar_AdmissibleNeverWorseThanUCS(t *testing.T) {
	g := gridProblem{w: 8, h: 8, walls: map[[2]int]bool{
		{3, 0}: true, {3, 1}: true, {3, 2}: true, {3, 3}: true, {3, 4}: true,
		{5, 7}: true, {5, 6}: true, {5, 5}: true, {5, 4}: true, {5, 3}: true,
	}}
	ucs, err := search.UCS[[2]int, [2]int](g, [2]int{0, 0})
	require.NoError(t, err)

	expanded := map[[2]int]int{}
	astar, err := search.AStar[[2]int, [2]int](g, [2]int{0, 0}, manhattan,
		search.WithOnExpand(func(s any, _ int) { expanded[s.([2]int)]++ }))
	require.NoError(t, err)

	require.True(t, astar.Found)
	assert.LessOrEqual(t, astar.Cost, ucs.Cost)
	assert.Equal(t, ucs.Cost, astar.Cost)
	assert.Less(t, astar.Stats.Expanded, ucs.Stats.Expanded)
	for s, n := range expanded {
		assert.Equal(t, 1, n, "state %v re-expanded", s)
	}
}

func TestAStar_InconsistentHeuristicReopens(t *testing.T) {
	// h(B)=4 is admissible (B→C→G costs 4) but overestimates the B→C step,
	// so C is first expanded via the costlier A route
	g := newGraph("S", "G").
		edge("S", "A", 1).edge("S", "B", 2).
		edge("A", "C", 3).edge("B", "C", 1).
		edge("C", "G", 3)
	h := func(_ search.Problem[string, string], s string) float64 {
		if s == "B" {
			return 4
		}
		return 0
	}

	ucs, err := search.UCS[string, string](g, "S")
	require.NoError(t, err)

	expanded := map[string]int{}
	astar, err := search.AStar[string, string](g, "S", h,
		search.WithOnExpand(func(s any, _ int) { expanded[s.(string)]++ }))
	require.NoError(t, err)

	assert.Equal(t, 6.0, ucs.Cost)
	assert.Equal(t, ucs.Cost, astar.Cost)
	assert.Equal(t, []string{"S>B", "B>C", "C>G"}, astar.Path)
	assert.Equal(t, 2, expanded["C"])
}

func TestMaxDepth(t *testing.T) {
	g := newGraph("A", "D").edge("A", "B", 1).edge("B", "C", 1).edge("C", "D", 1)

	res, err := search.BFS[string, string](g, "A", search.WithMaxDepth(2))
	require.NoError(t, err)
	assert.False(t, res.Found)

	res, err = search.BFS[string, string](g, "A", search.WithMaxDepth(3))
	require.NoError(t, err)
	assert.True(t, res.Found)

	_, err = search.DFS[string, string](g, "A", search.WithMaxDepth(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestMaxExpansions(t *testing.T) {
	g := newGraph("A", "D").edge("A", "B", 1).edge("B", "C", 1).edge("C", "D", 1)

	res, err := search.UCS[string, string](g, "A", search.WithMaxExpansions(2))
	assert.ErrorIs(t, err, search.ErrExpansionLimit)
	require.NotNil(t, res)
	assert.False(t, res.Found)
	assert.Equal(t, 2, res.Stats.Expanded)

	_, err = search.UCS[string, string](g, "A", search.WithMaxExpansions(-5))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestErrors(t *testing.T) {
	_, err := search.BFS[string, string](nil, "A")
	assert.ErrorIs(t, err, search.ErrNilProblem)

	g := newGraph("A", "B").edge("A", "B", 1)
	_, err = search.AStar[string, string](g, "A", nil)
	assert.ErrorIs(t, err, search.ErrNilHeuristic)
	_, err = search.Greedy[string, string](g, "A", nil)
	assert.ErrorIs(t, err, search.ErrNilHeuristic)

	neg := newGraph("A", "B").edge("A", "B", -1)
	_, err = search.UCS[string, string](neg, "A")
	assert.ErrorIs(t, err, search.ErrNegativeCost)

	nan := func(search.Problem[string, string], string) float64 { return math.NaN() }
	_, err = search.AStar[string, string](g, "A", nan)
	assert.ErrorIs(t, err, search.ErrBadHeuristic)
}

func TestContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := newGraph("A", "B").edge("A", "B", 1)
	_, err := search.BFS[string, string](g, "A", search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProblemPanicPropagates(t *testing.T) {
	g := &panicky{}
	assert.PanicsWithValue(t, "successor exploded", func() {
		_, _ = search.BFS[int, int](g, 0)
	})
}

type panicky struct{}

func (panicky) InitialState() int { return 0 }
func (panicky) IsGoal(int) bool { return false }
func (panicky) Actions(int) []int { return []int{1} }
func (panicky) Successor(int, int) int { panic("successor exploded") }
func (panicky) Cost(int, int) float64 { return 1 }

// strategies runs every strategy over a graphProblem from its start state.
func strategies() map[string]func(*graphProblem) (*search.Result[string], error) {
	return map[string]func(*graphProblem) (*search.Result[string], error){
		"bfs":    func(g *graphProblem) (*search.Result[string], error) { return search.BFS[string, string](g, g.start) },
		"dfs":    func(g *graphProblem) (*search.Result[string], error) { return search.DFS[string, string](g, g.start) },
		"ucs":    func(g *graphProblem) (*search.Result[string], error) { return search.UCS[string, string](g, g.start) },
		"greedy": func(g *graphProblem) (*search.Result[string], error) { return search.Greedy[string, string](g, g.start, zero) },
		"astar":  func(g *graphProblem) (*search.Result[string], error) { return search.AStar[string, string](g, g.start, zero) },
	}
}

// gridProblem is a w×h 4-connected grid from (0,0) to (w-1,h-1).
type gridProblem struct {
	w, h  int
	walls map[[2]int]bool
}

var moves = [][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

func (g gridProblem) InitialState() [2]int { return [2]int{0, 0} }
func (g gridProblem) IsGoal(s [2]int) bool { return s == [2]int{g.w - 1, g.h - 1} }
func (g gridProblem) Cost([2]int, [2]int) float64 { return 1 }
func (g gridProblem) Successor(s, a [2]int) [2]int {
	return [2]int{s[0] + a[0], s[1] + a[1]}
}

func (g gridProblem) Actions(s [2]int) [][2]int {
	var out [][2]int
	for _, m := range moves {
		n := [2]int{s[0] + m[0], s[1] + m[1]}
		if n[0] < 0 || n[1] < 0 || n[0] >= g.w || n[1] >= g.h || g.walls[n] {
			continue
		}
		out = append(out, m)
	}

	return out
}

func manhattan(p search.Problem[[2]int, [2]int], s [2]int) float64 {
	g := p.(gridProblem)
	return math.Abs(float64(g.w-1-s[0])) + math.Abs(float64(g.h-1-s[1]))
}

func gridStrategies() map[string]func(gridProblem) (*search.Result[[2]int], error) {
	type run = func(gridProblem) (*search.Result[[2]int], error)
	origin := [2]int{0, 0}

	return map[string]run{
		"bfs":    func(g gridProblem) (*search.Result[[2]int], error) { return search.BFS[[2]int, [2]int](g, origin) },
		"dfs":    func(g gridProblem) (*search.Result[[2]int], error) { return search.DFS[[2]int, [2]int](g, origin) },
		"ucs":    func(g gridProblem) (*search.Result[[2]int], error) { return search.UCS[[2]int, [2]int](g, origin) },
		"greedy": func(g gridProblem) (*search.Result[[2]int], error) { return search.Greedy[[2]int, [2]int](g, origin, manhattan) },
		"astar":  func(g gridProblem) (*search.Result[[2]int], error) { return search.AStar[[2]int, [2]int](g, origin, manhattan) },
	}
}
