package adversarial

import (
	"errors"
)

// NoCutoff passed as maxDepth expands the tree down to terminal states only.
const NoCutoff = -1

// Sentinel errors for adversarial search.
var (
	// ErrNilGame is returned when a nil Game is passed.
	ErrNilGame = errors.New("adversarial: game is nil")

	// ErrNilHeuristic is returned when a nil Heuristic is passed.
	ErrNilHeuristic = errors.New("adversarial: heuristic is nil")

	// ErrBadDepth is returned for maxDepth < NoCutoff.
	ErrBadDepth = errors.New("adversarial: max depth must be >= -1")

	// ErrNoActions is returned when a non-terminal state offers no action.
	ErrNoActions = errors.New("adversarial: non-terminal state has no actions")

	// ErrTerminalValues is returned when IsTerminal reports a terminal state
	// without a value for the evaluated agent.
	ErrTerminalValues = errors.New("adversarial: terminal values missing for agent")

	// ErrBadAgent is returned when Turn reports an agent outside [0, AgentCount).
	ErrBadAgent = errors.New("adversarial: turn outside agent range")
)

// Game is the multi-agent contract. Agent 0 is the maximizing agent.
type Game[S any, A any] interface {
	// InitialState returns the state the game starts in.
	InitialState() S

	// AgentCount reports how many agents take turns.
	AgentCount() int

	// Turn returns the index of the agent to act in s.
	Turn(s S) int

	// IsTerminal reports whether s ends the game and, if so, the outcome
	// for every agent indexed by agent number.
	IsTerminal(s S) (bool, []float64)

	// Actions lists the actions available to the acting agent in s.
	Actions(s S) []A

	// Successor returns the state reached by applying a in s.
	Successor(s S, a A) S
}

// Heuristic estimates the value of s for agent. A high value for one agent
// should be a low value for its opponents.
type Heuristic[S any, A any] func(g Game[S, A], s S, agent int) float64

// Decision is the backed-up value of a state and the recommended action.
// HasAction is false at terminal states, at the depth cutoff, and at chance
// nodes.
type Decision[A any] struct {
	Value     float64
	Action    A
	HasAction bool
}

// Stats reports how much of the tree a call explored.
type Stats struct {
	// Nodes counts every state visited, root included.
	Nodes int

	// Terminals counts visited terminal states.
	Terminals int

	// Cutoffs counts states evaluated by the heuristic at the depth limit.
	Cutoffs int

	// Prunes counts alpha-beta cutoffs, i.e. nodes whose remaining
	// children were skipped.
	Prunes int
}

// Option configures an adversarial search.
type Option func(*Options)

// Options holds optional parameters.
type Options struct {
	// Stats, if non-nil, receives the call's statistics.
	Stats *Stats

	// Chance lists the agents treated as chance nodes by Expectimax. nil
	// means every agent except 0.
	Chance map[int]bool
}

// WithStats makes the call write its statistics into st.
func WithStats(st *Stats) Option {
	return func(o *Options) {
		o.Stats = st
	}
}

// WithChanceAgents designates the agents Expectimax averages over. Agents not
// listed (other than 0) minimize. Calling it with no agents makes Expectimax
// behave exactly like Minimax.
func WithChanceAgents(agents ...int) Option {
	return func(o *Options) {
		o.Chance = make(map[int]bool, len(agents))
		for _, a := range agents {
			o.Chance[a] = true
		}
	}
}
