package search

// BFS runs breadth-first search from initial. The frontier is FIFO, so the
// returned path has the minimum number of actions.
// Returns ErrNilProblem for a nil problem, ErrOptionViolation for bad
// options, ErrNegativeCost if the problem reports an invalid step cost, or
// the context error on cancellation.
func BFS[S comparable, A any](p Problem[S, A], initial S, opts ...Option) (*Result[A], error) {
	return start(p, initial, StrategyBFS, nil, opts)
}

// DFS runs depth-first graph search from initial. The frontier is LIFO;
// successors are pushed in action order, so the last-enumerated action is
// explored first. The result is not optimal, and on infinite state spaces DFS
// terminates only with WithMaxDepth or WithMaxExpansions.
func DFS[S comparable, A any](p Problem[S, A], initial S, opts ...Option) (*Result[A], error) {
	return start(p, initial, StrategyDFS, nil, opts)
}

// UCS runs uniform-cost search: the frontier is ordered by cumulative path
// cost g, ties by insertion order. Optimal for non-negative costs.
func UCS[S comparable, A any](p Problem[S, A], initial S, opts ...Option) (*Result[A], error) {
	return start(p, initial, StrategyUCS, nil, opts)
}

// Greedy runs greedy best-first search: the frontier is ordered by h alone.
// Fast when h is informative, optimal in no general sense.
func Greedy[S comparable, A any](p Problem[S, A], initial S, h Heuristic[S, A], opts ...Option) (*Result[A], error) {
	if h == nil {
		return nil, ErrNilHeuristic
	}

	return start(p, initial, StrategyGreedy, h, opts)
}

// AStar runs A* search: the frontier is ordered by g + h. The returned path is
// optimal when h is admissible. An explored state reached again by a strictly
// cheaper path is reopened; with a consistent h that never happens and every
// state is expanded at most once.
func AStar[S comparable, A any](p Problem[S, A], initial S, h Heuristic[S, A], opts ...Option) (*Result[A], error) {
	if h == nil {
		return nil, ErrNilHeuristic
	}

	return start(p, initial, StrategyAStar, h, opts)
}

// start validates inputs, builds options and runs the shared loop.
func start[S comparable, A any](p Problem[S, A], initial S, strategy Strategy, h Heuristic[S, A], opts []Option) (*Result[A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return newRunner(p, strategy, h, o).run(initial)
}
