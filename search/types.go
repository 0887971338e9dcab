// Package search defines the problem contract, options, results and sentinel
// errors shared by every frontier strategy.
package search

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for search execution.
var (
	// ErrNilProblem is returned when a nil Problem is passed to a strategy.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNilHeuristic is returned when Greedy or AStar receive a nil Heuristic.
	ErrNilHeuristic = errors.New("search: heuristic is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrNegativeCost is returned when Problem.Cost yields a negative or NaN cost.
	ErrNegativeCost = errors.New("search: negative or NaN step cost")

	// ErrBadHeuristic is returned when a Heuristic yields NaN.
	ErrBadHeuristic = errors.New("search: heuristic returned NaN")

	// ErrExpansionLimit is returned when WithMaxExpansions is exhausted before
	// the frontier empties or a goal is reached.
	ErrExpansionLimit = errors.New("search: expansion limit reached")
)

// Problem is the contract every searchable domain implements.
//
// Successor must be a pure function of (state, action): equal inputs yield
// equal states. States are compared with ==, so S must be a value type (or a
// pointer whose identity is the intended equality).
type Problem[S comparable, A any] interface {
	// InitialState returns the state the domain starts in.
	InitialState() S

	// IsGoal reports whether s satisfies the goal.
	IsGoal(s S) bool

	// Actions lists the actions applicable in s. Their order is the order
	// successors are generated in and therefore drives tie-breaking.
	Actions(s S) []A

	// Successor returns the state reached by applying a in s.
	Successor(s S, a A) S

	// Cost returns the non-negative cost of applying a in s.
	Cost(s S, a A) float64
}

// Heuristic estimates the remaining cost from s to the nearest goal.
// It must be free of side effects visible to the search; it may consult a
// cache owned by the problem.
type Heuristic[S comparable, A any] func(p Problem[S, A], s S) float64

// Strategy names a frontier discipline.
type Strategy string

// Supported strategies.
const (
	StrategyBFS    Strategy = "bfs"
	StrategyDFS    Strategy = "dfs"
	StrategyUCS    Strategy = "ucs"
	StrategyGreedy Strategy = "greedy"
	StrategyAStar  Strategy = "astar"
)

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds parameters and hooks that customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per pop.
	Ctx context.Context

	// MaxDepth, if > 0, never expands states whose path is already MaxDepth
	// actions long. 0 disables the limit.
	MaxDepth int

	// MaxExpansions, if > 0, aborts with ErrExpansionLimit once that many
	// states have been expanded without reaching a goal. 0 disables the limit.
	MaxExpansions int

	// OnExpand is called for every state taken off the frontier and goal
	// tested, with the length of the path that reached it.
	OnExpand func(state any, depth int)

	err error
}

// DefaultOptions returns Options with a background context, no limits and a
// no-op expansion hook.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxDepth:      0,
		MaxExpansions: 0,
		OnExpand:      func(any, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth bounds the length of explored paths.
//
//	d > 0:  expand only states reached by fewer than d actions
//	d == 0: explicit no limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxExpansions caps the number of expansions. n < 0 is invalid.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a hook fired once per expanded state.
func WithOnExpand(fn func(state any, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Stats reports how much work a search performed.
type Stats struct {
	// Expanded counts goal-tested states, i.e. unexplored frontier pops.
	Expanded int

	// Generated counts successors pushed onto the frontier.
	Generated int

	// MaxFrontier is the largest frontier size observed.
	MaxFrontier int
}

// Result is the outcome of a search.
//
// Found == false is the ordinary "no solution" outcome: the frontier emptied
// without reaching a goal. Path is then nil. When the initial state is itself
// a goal, Found is true and Path is empty but non-nil.
type Result[A any] struct {
	Path  []A
	Found bool
	Cost  float64
	Stats Stats
}
