package adversarial

import (
	"math"
	"sort"
)

// AlphaBeta computes the Minimax value with alpha-beta pruning. A
// maximizing node stops exploring its children once its running value
// reaches beta; a minimizing node once it falls to alpha. Pruning never
// changes the root value, only the number of nodes visited.
func AlphaBeta[S any, A any](g Game[S, A], s S, h Heuristic[S, A], maxDepth int, opts ...Option) (Decision[A], error) {
	e, err := begin(g, h, maxDepth, opts)
	if err != nil {
		return Decision[A]{}, err
	}
	d, err := e.alphabeta(s, maxDepth, math.Inf(-1), math.Inf(1), false)

	return e.end("alphabeta", d, err)
}

// AlphaBetaWithMoveOrdering is AlphaBeta with children explored in
// descending order of h for the acting agent (stable, so equal estimates keep
// enumeration order). The value is identical to AlphaBeta; the reported
// action may differ on value ties because ties go to the first child
// explored.
func AlphaBetaWithMoveOrdering[S any, A any](g Game[S, A], s S, h Heuristic[S, A], maxDepth int, opts ...Option) (Decision[A], error) {
	e, err := begin(g, h, maxDepth, opts)
	if err != nil {
		return Decision[A]{}, err
	}
	d, err := e.alphabeta(s, maxDepth, math.Inf(-1), math.Inf(1), true)

	return e.end("alphabeta-ordered", d, err)
}

// alphabeta receives alpha and beta by value; updates made here are visible
// to the children of this call only.
func (e *engine[S, A]) alphabeta(s S, depth int, alpha, beta float64, ordered bool) (Decision[A], error) {
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
	if ordered {
		e.order(kids, agent)
	}

	maximize := agent == 0
	var best Decision[A]
	for i, k := range kids {
		sub, err := e.alphabeta(k.state, next(depth), alpha, beta, ordered)
		if err != nil {
			return Decision[A]{}, err
		}
		if i == 0 || better(maximize, sub.Value, best.Value) {
			best = Decision[A]{Value: sub.Value, Action: k.action, HasAction: true}
		}

		if maximize {
			if best.Value >= beta {
				e.prune(i, len(kids))
				return best, nil
			}
			alpha = math.Max(alpha, best.Value)
		} else {
			if best.Value <= alpha {
				e.prune(i, len(kids))
				return best, nil
			}
			beta = math.Min(beta, best.Value)
		}
	}

	return best, nil
}

// order sorts kids by descending estimate for agent, keeping enumeration
// order among equal estimates.
func (e *engine[S, A]) order(kids []child[S, A], agent int) {
	scores := make([]float64, len(kids))
	for i, k := range kids {
		scores[i] = e.h(e.game, k.state, agent)
	}
	idx := make([]int, len(kids))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return scores[idx[a]] > scores[idx[b]] })

	sorted := make([]child[S, A], len(kids))
	for i, j := range idx {
		sorted[i] = kids[j]
	}
	copy(kids, sorted)
}

// prune counts a cutoff that skipped at least one sibling.
func (e *engine[S, A]) prune(at, total int) {
	if at < total-1 {
		e.stats.Prunes++
	}
}
