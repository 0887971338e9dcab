package adversarial

// Expectimax is Minimax in which chance agents replace the min by the
// uniform average of their children's values. By default every agent other
// than 0 is a chance agent; WithChanceAgents narrows the set. Chance nodes
// recommend no action.
func Expectimax[S any, A any](g Game[S, A], s S, h Heuristic[S, A], maxDepth int, opts ...Option) (Decision[A], error) {
	e, err := begin(g, h, maxDepth, opts)
	if err != nil {
		return Decision[A]{}, err
	}
	d, err := e.expectimax(s, maxDepth)

	return e.end("expectimax", d, err)
}

// chance reports whether agent averages rather than minimizes.
func (e *engine[S, A]) chance(agent int) bool {
	if agent == 0 {
		return false
	}
	if e.opts.Chance == nil {
		return true
	}

	return e.opts.Chance[agent]
}

func (e *engine[S, A]) expectimax(s S, depth int) (Decision[A], error) {
	if d, done, err := e.leaf(s, depth); done || err != nil {
		return d, err
	}
	agent, err := e.turn(s)
	if err != nil {
		return Decision[A]{}, err
	}
	kids, err := e.children(s)
	if err != nil {
		return Decision[A]{}, err
	}

	if e.chance(agent) {
		var sum float64
		for _, k := range kids {
			sub, err := e.expectimax(k.state, next(depth))
			if err != nil {
				return Decision[A]{}, err
			}
			sum += sub.Value
		}

		return Decision[A]{Value: sum / float64(len(kids))}, nil
	}

	maximize := agent == 0
	var best Decision[A]
	for i, k := range kids {
		sub, err := e.expectimax(k.state, next(depth))
		if err != nil {
			return Decision[A]{}, err
		}
		if i == 0 || better(maximize, sub.Value, best.Value) {
			best = Decision[A]{Value: sub.Value, Action: k.action, HasAction: true}
		}
	}

	return best, nil
}
