package adversarial

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// child pairs an action with the state it leads to.
type child[S any, A any] struct {
	action A
	state  S
}

// engine holds the read-only inputs and the statistics of one call.
// Depth and alpha/beta bounds travel as parameters, never as fields.
type engine[S any, A any] struct {
	game  Game[S, A]
	h     Heuristic[S, A]
	opts  Options
	stats Stats
}

// begin validates the common inputs and builds an engine.
func begin[S any, A any](g Game[S, A], h Heuristic[S, A], maxDepth int, opts []Option) (*engine[S, A], error) {
	if g == nil {
		return nil, ErrNilGame
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	if maxDepth < NoCutoff {
		return nil, fmt.Errorf("%w: got %d", ErrBadDepth, maxDepth)
	}
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}

	return &engine[S, A]{game: g, h: h, opts: o}, nil
}

// end publishes statistics and logs the root decision.
func (e *engine[S, A]) end(algorithm string, d Decision[A], err error) (Decision[A], error) {
	if e.opts.Stats != nil {
		*e.opts.Stats = e.stats
	}
	if err != nil {
		log.Debug().Str("algorithm", algorithm).Err(err).Msg("adversarial-failed")
		return Decision[A]{}, err
	}
	log.Debug().
		Str("algorithm", algorithm).
		Float64("value", d.Value).
		Bool("has-action", d.HasAction).
		Int("nodes", e.stats.Nodes).
		Int("prunes", e.stats.Prunes).
		Msg("adversarial-decision")

	return d, nil
}

// turn returns the acting agent in s, validated against AgentCount.
func (e *engine[S, A]) turn(s S) (int, error) {
	agent := e.game.Turn(s)
	if agent < 0 || agent >= e.game.AgentCount() {
		return 0, fmt.Errorf("%w: agent %d of %d", ErrBadAgent, agent, e.game.AgentCount())
	}

	return agent, nil
}

// terminal reports whether s is terminal and, if so, its value for agent.
func (e *engine[S, A]) terminal(s S, agent int) (float64, bool, error) {
	done, values := e.game.IsTerminal(s)
	if !done {
		return 0, false, nil
	}
	e.stats.Terminals++
	if agent < 0 || agent >= len(values) {
		return 0, true, fmt.Errorf("%w: agent %d, %d values", ErrTerminalValues, agent, len(values))
	}

	return values[agent], true, nil
}

// leaf visits s and resolves it without recursion when it is terminal or the
// depth budget is spent. Values are always from agent 0's point of view.
func (e *engine[S, A]) leaf(s S, depth int) (Decision[A], bool, error) {
	e.stats.Nodes++
	if v, done, err := e.terminal(s, 0); done || err != nil {
		return Decision[A]{Value: v}, true, err
	}
	if depth == 0 {
		e.stats.Cutoffs++
		return Decision[A]{Value: e.h(e.game, s, 0)}, true, nil
	}

	return Decision[A]{}, false, nil
}

// children expands s in action order.
func (e *engine[S, A]) children(s S) ([]child[S, A], error) {
	actions := e.game.Actions(s)
	if len(actions) == 0 {
		return nil, ErrNoActions
	}
	out := make([]child[S, A], len(actions))
	for i, a := range actions {
		out[i] = child[S, A]{action: a, state: e.game.Successor(s, a)}
	}

	return out, nil
}

// next consumes one ply. NoCutoff stays NoCutoff.
func next(depth int) int {
	if depth < 0 {
		return depth
	}

	return depth - 1
}

// better reports whether v replaces best for a maximizing (or minimizing)
// agent. Only strict improvement counts, so the earliest action wins ties.
func better(maximize bool, v, best float64) bool {
	if maximize {
		return v > best
	}

	return v < best
}
