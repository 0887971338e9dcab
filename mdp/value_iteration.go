package mdp

import (
	"fmt"
	"math"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
)

// ValueIteration owns a utility table over the states of one MDP and refines
// it with synchronous Bellman sweeps. It is safe for concurrent use; a
// single RWMutex guards the table.
type ValueIteration[S comparable, A any] struct {
	mu sync.RWMutex

	mdp      MDP[S, A]
	states   []S
	discount float64
	tol      float64
	key      KeyFunc[S]
	byKey    map[string]S

	utilities map[S]float64
	sweeps    int
}

// NewValueIteration builds a solver with every utility at 0 (or the values
// supplied through WithInitialUtilities; terminal states stay at 0).
// Returns ErrNilMDP, ErrBadDiscount, ErrOptionViolation or ErrDuplicateKey.
func NewValueIteration[S comparable, A any](m MDP[S, A], opts ...Option) (*ValueIteration[S, A], error) {
	if m == nil {
		return nil, ErrNilMDP
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	key := KeyFunc[S](func(s S) string { return fmt.Sprint(s) })
	if o.keyFunc != nil {
		fn, ok := o.keyFunc.(KeyFunc[S])
		if !ok {
			return nil, fmt.Errorf("%w: key function is %T, want %T", ErrOptionViolation, o.keyFunc, fn)
		}
		key = fn
	}

	vi := &ValueIteration[S, A]{
		mdp:       m,
		states:    m.States(),
		discount:  o.Discount,
		tol:       o.Tolerance,
		key:       key,
		utilities: make(map[S]float64),
	}
	vi.byKey = make(map[string]S, len(vi.states))
	for _, s := range vi.states {
		k := key(s)
		if prev, dup := vi.byKey[k]; dup && prev != s {
			return nil, fmt.Errorf("%w: %v and %v both map to %q", ErrDuplicateKey, prev, s, k)
		}
		vi.byKey[k] = s
		vi.utilities[s] = 0
	}

	if o.initial != nil {
		u, ok := o.initial.(map[S]float64)
		if !ok {
			return nil, fmt.Errorf("%w: initial utilities are %T, want %T", ErrOptionViolation, o.initial, u)
		}
		for s, v := range u {
			if _, known := vi.utilities[s]; known && !m.IsTerminal(s) {
				vi.utilities[s] = v
			}
		}
	}

	return vi, nil
}

// Train performs iterations synchronous sweeps. Every sweep reads only the
// previous table and writes a fresh one, so Train(m) followed by Train(n)
// equals Train(m+n). Terminal states stay at 0.
func (vi *ValueIteration[S, A]) Train(iterations int) error {
	if iterations < 0 {
		return fmt.Errorf("%w: iterations %d", ErrBadIterations, iterations)
	}
	vi.mu.Lock()
	defer vi.mu.Unlock()

	var delta float64
	for i := 0; i < iterations; i++ {
		d, err := vi.sweep()
		if err != nil {
			return err
		}
		delta = d
	}
	log.Debug().Int("iterations", iterations).Int("total", vi.sweeps).Float64("delta", delta).Msg("value-iteration-trained")

	return nil
}

// TrainUntil sweeps until the largest per-state change drops below epsilon
// or maxIterations sweeps have run, and reports how many ran and the last
// change observed.
func (vi *ValueIteration[S, A]) TrainUntil(epsilon float64, maxIterations int) (int, float64, error) {
	if math.IsNaN(epsilon) || epsilon <= 0 {
		return 0, 0, fmt.Errorf("%w: epsilon %v", ErrBadIterations, epsilon)
	}
	if maxIterations < 1 {
		return 0, 0, fmt.Errorf("%w: max iterations %d", ErrBadIterations, maxIterations)
	}
	vi.mu.Lock()
	defer vi.mu.Unlock()

	var (
		n     int
		delta = math.Inf(1)
	)
	for n < maxIterations && delta >= epsilon {
		d, err := vi.sweep()
		if err != nil {
			return n, delta, err
		}
		n++
		delta = d
	}
	log.Debug().Int("iterations", n).Int("total", vi.sweeps).Float64("delta", delta).Bool("converged", delta < epsilon).Msg("value-iteration-trained")

	return n, delta, nil
}

// sweep applies the Bellman operator once and returns the max-norm change.
// The caller holds the write lock.
func (vi *ValueIteration[S, A]) sweep() (float64, error) {
	next := make(map[S]float64, len(vi.states))
	before := make([]float64, len(vi.states))
	after := make([]float64, len(vi.states))

	for i, s := range vi.states {
		before[i] = vi.utilities[s]
		if vi.mdp.IsTerminal(s) {
			next[s] = 0
			continue
		}
		best := 0.0
		for j, a := range vi.mdp.Actions(s) {
			q, err := vi.qvalue(s, a)
			if err != nil {
				return 0, err
			}
			if j == 0 || q > best {
				best = q
			}
		}
		next[s] = best
		after[i] = best
	}
	vi.utilities = next
	vi.sweeps++

	if len(before) == 0 {
		return 0, nil
	}

	return floats.Distance(before, after, math.Inf(1)), nil
}

// qvalue computes Σ P(s'|s,a)·(R(s,a,s') + γ·U(s')) from the current table,
// checking the distribution on the way.
func (vi *ValueIteration[S, A]) qvalue(s S, a A) (float64, error) {
	outcomes := vi.mdp.Successors(s, a)
	probs := lo.Map(outcomes, func(t Transition[S], _ int) float64 { return t.Prob })
	if len(probs) == 0 || floats.Min(probs) < 0 || math.Abs(floats.Sum(probs)-1) > vi.tol {
		return 0, fmt.Errorf("%w: state %v action %v probabilities %v", ErrBadDistribution, s, a, probs)
	}

	var q float64
	for _, t := range outcomes {
		q += t.Prob * (vi.mdp.Reward(s, a, t.Next) + vi.discount*vi.utilities[t.Next])
	}

	return q, nil
}

// QValue returns the expected return of taking a in s under the current
// utilities.
func (vi *ValueIteration[S, A]) QValue(s S, a A) (float64, error) {
	vi.mu.RLock()
	defer vi.mu.RUnlock()

	return vi.qvalue(s, a)
}

// Utility returns the current utility of s; 0 for unknown states.
func (vi *ValueIteration[S, A]) Utility(s S) float64 {
	vi.mu.RLock()
	defer vi.mu.RUnlock()

	return vi.utilities[s]
}

// Utilities returns a copy of the utility table.
func (vi *ValueIteration[S, A]) Utilities() map[S]float64 {
	vi.mu.RLock()
	defer vi.mu.RUnlock()

	return lo.Assign(vi.utilities)
}

// Iterations reports how many sweeps have been applied since construction.
func (vi *ValueIteration[S, A]) Iterations() int {
	vi.mu.RLock()
	defer vi.mu.RUnlock()

	return vi.sweeps
}

// Policy picks, among actions, the one with the highest Q-value under the
// current utilities; the earliest action wins ties. The action list is the
// caller's and need not match Actions(s). ok is false for terminal states and
// for an empty list.
func (vi *ValueIteration[S, A]) Policy(s S, actions []A) (best A, ok bool, err error) {
	if vi.mdp.IsTerminal(s) || len(actions) == 0 {
		return best, false, nil
	}
	vi.mu.RLock()
	defer vi.mu.RUnlock()

	var top float64
	for i, a := range actions {
		q, qerr := vi.qvalue(s, a)
		if qerr != nil {
			var zero A
			return zero, false, qerr
		}
		if i == 0 || q > top {
			best, top = a, q
		}
	}

	return best, true, nil
}
