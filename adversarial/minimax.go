package adversarial

// Minimax backs up values with agent 0 maximizing and every other agent
// minimizing, recursing until a terminal state or until maxDepth plies have
// been played (NoCutoff disables the limit). Each recursive step consumes
// exactly one ply, so a round of N agents costs N depth units.
// On exact ties the earliest action in enumeration order is kept.
func Minimax[S any, A any](g Game[S, A], s S, h Heuristic[S, A], maxDepth int, opts ...Option) (Decision[A], error) {
	e, err := begin(g, h, maxDepth, opts)
	if err != nil {
		return Decision[A]{}, err
	}
	d, err := e.minimax(s, maxDepth)

	return e.end("minimax", d, err)
}

func (e *engine[S, A]) minimax(s S, depth int) (Decision[A], error) {
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

	maximize := agent == 0
	var best Decision[A]
	for i, k := range kids {
		sub, err := e.minimax(k.state, next(depth))
		if err != nil {
			return Decision[A]{}, err
		}
		if i == 0 || better(maximize, sub.Value, best.Value) {
			best = Decision[A]{Value: sub.Value, Action: k.action, HasAction: true}
		}
	}

	return best, nil
}
