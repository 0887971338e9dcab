// Package adversarial evaluates multi-agent game trees: one-ply greedy
// lookahead, minimax, alpha-beta (plain and with move ordering) and
// expectimax.
//
// What
//
//   - A Game names the acting agent per state, reports terminal outcomes per
//     agent and enumerates actions. Agent 0 maximizes; every other agent
//     minimizes, or averages when Expectimax treats it as a chance agent.
//   - Every algorithm returns a Decision: the backed-up value from agent 0's
//     point of view plus the recommended action when one exists.
//
// Depth
//
//	maxDepth counts plies, not rounds. Each recursive step consumes one ply
//	whichever agent acts, so a round of N agents costs N units. NoCutoff (-1)
//	searches to terminal states and never calls the heuristic. At depth 0 the
//	heuristic is evaluated for agent 0 and no action is recommended.
//
// Ties
//
//	A child replaces the current best only on strict improvement, so on
//	exact ties the earliest action in exploration order wins for max and min
//	nodes alike. Move ordering changes exploration order, so it may change
//	the reported action on ties but never the value.
//
// Pruning
//
//	AlphaBeta carries [alpha, beta] down the recursion by value. A max node
//	stops once its value reaches beta, a min node once it falls to alpha.
//
// Complexity (b = branching factor, d = depth)
//
//   - Minimax/Expectimax: O(b^d) time, O(d) stack.
//   - AlphaBeta: O(b^(d/2)) with perfect ordering, O(b^d) worst case.
//
// Usage
//
//	var st adversarial.Stats
//	d, err := adversarial.AlphaBetaWithMoveOrdering(game, game.InitialState(), eval, 4,
//	    adversarial.WithStats(&st),
//	)
//	if err != nil {
//	    // ErrNilGame, ErrNilHeuristic, ErrBadDepth, ErrNoActions,
//	    // ErrTerminalValues or ErrBadAgent
//	}
//	if d.HasAction {
//	    play(d.Action)
//	}
package adversarial
