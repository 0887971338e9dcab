// Package search provides uninformed and heuristic-guided graph search over
// an implicit state space described by a Problem.
//
// What
//
//   - BFS, DFS, UCS, Greedy best-first and A* share one expansion loop and
//     differ only in frontier discipline and priority key:
//
//     | Strategy | Frontier | Priority key | Optimal when              |
//     |----------|----------|--------------|---------------------------|
//     | BFS      | FIFO     | insertion    | unit costs                |
//     | DFS      | LIFO     | insertion    | never guaranteed          |
//     | UCS      | min-heap | g            | non-negative costs        |
//     | Greedy   | min-heap | h            | never guaranteed          |
//     | AStar    | min-heap | g + h        | h admissible              |
//
//   - Every call returns a Result: the action path, whether a goal was found,
//     its cost, and expansion statistics.
//
// Loop
//
//	pop the next entry
//	skip it if its state is explored (or a cheaper cost is already recorded)
//	goal test (at expansion time, for every strategy including BFS)
//	mark explored
//	push successors in Problem.Actions order
//
// BFS, DFS and Greedy push every unexplored successor. UCS and AStar push a
// successor only when its path cost strictly improves the cost table; the
// stale, costlier entry stays in the heap and is skipped when popped. AStar
// also reopens an explored state when a strictly cheaper path reaches it, so
// an admissible but inconsistent heuristic still yields an optimal path.
//
// Determinism
//
//	Each push stamps a monotonically increasing sequence number and the heap
//	orders by (priority, sequence). Equal priorities therefore pop in
//	insertion order, and repeated runs over an unchanged Problem with the same
//	action enumeration order return identical results.
//
// No solution
//
//	An exhausted frontier is a normal outcome: Result.Found is false and the
//	error is nil. Errors are reserved for invalid input, cancellation, limits
//	and contract violations detected at the boundary (negative or NaN step
//	costs, NaN heuristic estimates). A panic raised by a Problem method is
//	not recovered.
//
// Complexity (V = reachable states, E = generated edges)
//
//   - BFS/DFS: O(V + E) time, O(V + E) memory (duplicates may sit in the frontier).
//   - UCS/Greedy/AStar: O((V + E) log(V + E)) time with lazy decrease-key.
//   - Paths share prefixes through parent links, so each push is O(1).
//
// Usage
//
//	res, err := search.AStar(problem, problem.InitialState(), manhattan,
//	    search.WithContext(ctx),
//	    search.WithMaxExpansions(100_000),
//	)
//	if err != nil {
//	    // ErrNilProblem, ErrNilHeuristic, ErrOptionViolation, ErrNegativeCost,
//	    // ErrBadHeuristic, ErrExpansionLimit or a context error
//	}
//	if !res.Found {
//	    // no path exists
//	}
//
// Options
//
//   - WithContext(ctx):       cancellation, checked once per pop.
//   - WithMaxDepth(d):        never expand beyond paths of d actions (d > 0).
//   - WithMaxExpansions(n):   stop with ErrExpansionLimit after n expansions.
//   - WithOnExpand(fn):       hook fired for every expanded state.
package search
