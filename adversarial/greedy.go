package adversarial

// Greedy looks one ply ahead: it evaluates h on every immediate successor for
// the acting agent and picks the action with the highest estimate, the
// earliest action winning ties. maxDepth is validated but otherwise unused.
// At a terminal state the value is the outcome for the acting agent.
func Greedy[S any, A any](g Game[S, A], s S, h Heuristic[S, A], maxDepth int, opts ...Option) (Decision[A], error) {
	e, err := begin(g, h, maxDepth, opts)
	if err != nil {
		return Decision[A]{}, err
	}
	d, err := e.greedy(s)

	return e.end("greedy", d, err)
}

func (e *engine[S, A]) greedy(s S) (Decision[A], error) {
	e.stats.Nodes++
	// terminal outcomes are indexed by Turn without the agent-range check
	if v, done, err := e.terminal(s, e.game.Turn(s)); done || err != nil {
		return Decision[A]{Value: v}, err
	}
	agent, err := e.turn(s)
	if err != nil {
		return Decision[A]{}, err
	}
	kids, err := e.children(s)
	if err != nil {
		return Decision[A]{}, err
	}

	var best Decision[A]
	for i, k := range kids {
		v := e.h(e.game, k.state, agent)
		if i == 0 || better(true, v, best.Value) {
			best = Decision[A]{Value: v, Action: k.action, HasAction: true}
		}
	}

	return best, nil
}
