package search

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
)

// runner encapsulates the mutable state of a single search call. It is
// created fresh per call and discarded on return.
type runner[S comparable, A any] struct {
	problem  Problem[S, A]
	strategy Strategy
	opts     Options

	front frontier[S, A]

	// priority computes the frontier key of a state reached with cost g.
	// nil for the FIFO/LIFO disciplines.
	priority func(g float64, s S) (float64, error)

	// costAware strategies only push a successor when its path cost strictly
	// improves the cost table.
	costAware bool

	// reopen lets a strictly cheaper path pull an explored state back into
	// the frontier. Only A* needs it, for admissible but inconsistent h.
	reopen bool

	explored map[S]struct{}
	best     map[S]float64
	seq      uint64
	stats    Stats
}

// newRunner wires the frontier discipline and priority key for strategy.
func newRunner[S comparable, A any](p Problem[S, A], strategy Strategy, h Heuristic[S, A], o Options) *runner[S, A] {
	r := &runner[S, A]{
		problem:  p,
		strategy: strategy,
		opts:     o,
		explored: make(map[S]struct{}),
		best:     make(map[S]float64),
	}

	estimate := func(s S) (float64, error) {
		v := h(p, s)
		if math.IsNaN(v) {
			return 0, fmt.Errorf("%w: state %v", ErrBadHeuristic, s)
		}

		return v, nil
	}

	switch strategy {
	case StrategyBFS:
		r.front = &fifoQueue[S, A]{}
	case StrategyDFS:
		r.front = &lifoStack[S, A]{}
	case StrategyUCS:
		r.front = &priorityQueue[S, A]{}
		r.costAware = true
		r.priority = func(g float64, _ S) (float64, error) { return g, nil }
	case StrategyGreedy:
		r.front = &priorityQueue[S, A]{}
		r.priority = func(_ float64, s S) (float64, error) { return estimate(s) }
	case StrategyAStar:
		r.front = &priorityQueue[S, A]{}
		r.costAware = true
		r.reopen = true
		r.priority = func(g float64, s S) (float64, error) {
			v, err := estimate(s)
			return g + v, err
		}
	}

	return r
}

// run seeds the frontier with initial and drives the loop.
func (r *runner[S, A]) run(initial S) (*Result[A], error) {
	r.best[initial] = 0
	if err := r.push(initial, 0, nil); err != nil {
		return nil, err
	}
	res, err := r.loop()
	r.finish(res, err)

	return res, err
}

// loop pops entries until a goal is expanded, the frontier empties, or an
// error (cancellation, limit, contract violation) stops it.
func (r *runner[S, A]) loop() (*Result[A], error) {
	ctx := r.opts.Ctx
	for r.front.len() > 0 {
		select {
		case <-ctx.Done():
			return &Result[A]{Stats: r.stats}, ctx.Err()
		default:
		}

		e := r.front.pop()
		if _, done := r.explored[e.state]; done {
			continue
		}
		// a cheaper path to this state was recorded after e was pushed
		if r.costAware && e.g > r.best[e.state] {
			continue
		}

		depth := e.path.len()
		r.stats.Expanded++
		r.opts.OnExpand(e.state, depth)
		if r.problem.IsGoal(e.state) {
			return &Result[A]{Path: e.path.actions(), Found: true, Cost: e.g, Stats: r.stats}, nil
		}
		r.explored[e.state] = struct{}{}

		if r.opts.MaxExpansions > 0 && r.stats.Expanded >= r.opts.MaxExpansions {
			return &Result[A]{Stats: r.stats}, fmt.Errorf("%w: %d expansions", ErrExpansionLimit, r.stats.Expanded)
		}
		if r.opts.MaxDepth > 0 && depth >= r.opts.MaxDepth {
			continue
		}
		if err := r.expand(e); err != nil {
			return nil, err
		}
	}

	return &Result[A]{Stats: r.stats}, nil
}

// expand generates the successors of e in action order and pushes every one
// the strategy admits.
func (r *runner[S, A]) expand(e entry[S, A]) error {
	for _, a := range r.problem.Actions(e.state) {
		succ := r.problem.Successor(e.state, a)
		c := r.problem.Cost(e.state, a)
		if c < 0 || math.IsNaN(c) {
			return fmt.Errorf("%w: cost %v for action %v in state %v", ErrNegativeCost, c, a, e.state)
		}
		g := e.g + c
		if _, done := r.explored[succ]; done {
			if !r.reopen || g >= r.best[succ] {
				continue
			}
			delete(r.explored, succ)
		}
		if r.costAware {
			if old, seen := r.best[succ]; seen && g >= old {
				continue
			}
			r.best[succ] = g
		}
		if err := r.push(succ, g, e.path.extend(a)); err != nil {
			return err
		}
	}

	return nil
}

// push stamps the next sequence number on a new entry and adds it.
func (r *runner[S, A]) push(s S, g float64, path *pathNode[A]) error {
	var pr float64
	if r.priority != nil {
		var err error
		if pr, err = r.priority(g, s); err != nil {
			return err
		}
	}
	r.seq++
	r.front.push(entry[S, A]{priority: pr, seq: r.seq, state: s, g: g, path: path})
	if path != nil {
		r.stats.Generated++
	}
	if n := r.front.len(); n > r.stats.MaxFrontier {
		r.stats.MaxFrontier = n
	}

	return nil
}

// finish logs and records metrics for the completed call.
func (r *runner[S, A]) finish(res *Result[A], err error) {
	found := res != nil && res.Found
	ev := log.Debug().
		Str("strategy", string(r.strategy)).
		Int("expanded", r.stats.Expanded).
		Int("generated", r.stats.Generated).
		Int("max-frontier", r.stats.MaxFrontier).
		Bool("found", found)
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg("search-finished")

	recordSearch(r.opts.Ctx, r.strategy, found, r.stats.Expanded)
}
