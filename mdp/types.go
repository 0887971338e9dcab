package mdp

import (
	"errors"
	"fmt"
	"math"
)

// Defaults applied by DefaultOptions.
const (
	DefaultDiscount  = 0.99
	DefaultTolerance = 1e-9
)

// Sentinel errors for the value-iteration solver.
var (
	// ErrNilMDP is returned when a nil MDP is passed.
	ErrNilMDP = errors.New("mdp: process is nil")

	// ErrBadDiscount is returned for a discount outside [0, 1].
	ErrBadDiscount = errors.New("mdp: discount must be in [0, 1]")

	// ErrBadIterations is returned for a negative iteration count or a
	// non-positive convergence threshold.
	ErrBadIterations = errors.New("mdp: invalid iteration budget")

	// ErrBadDistribution is returned when a successor distribution has a
	// negative probability or does not sum to 1.
	ErrBadDistribution = errors.New("mdp: successor probabilities must be non-negative and sum to 1")

	// ErrUnknownStateKey is returned by Load for a key no state maps to.
	ErrUnknownStateKey = errors.New("mdp: key does not name a state")

	// ErrDuplicateKey is returned when the KeyFunc maps two states to one key.
	ErrDuplicateKey = errors.New("mdp: key function is not injective")

	// ErrOptionViolation is returned when an option carries an invalid value.
	ErrOptionViolation = errors.New("mdp: invalid option")
)

// MDP is a fully known Markov decision process.
type MDP[S comparable, A any] interface {
	// States enumerates every state, terminals included.
	States() []S

	// Actions lists the actions available in s.
	Actions(s S) []A

	// Successors returns the distribution over next states for taking a in s.
	Successors(s S, a A) []Transition[S]

	// Reward is the immediate reward of the transition s --a--> next.
	Reward(s S, a A, next S) float64

	// IsTerminal reports whether s ends an episode.
	IsTerminal(s S) bool
}

// Transition is one outcome of a successor distribution.
type Transition[S comparable] struct {
	Next S
	Prob float64
}

// KeyFunc maps a state to the string used for persistence. It must be
// injective over States().
type KeyFunc[S comparable] func(S) string

// Option configures a ValueIteration.
type Option func(*Options)

// Options holds solver parameters. Typed values (key function, initial
// utilities) are kept untyped here so options need no type arguments at the
// call site; NewValueIteration checks them against S.
type Options struct {
	Discount  float64
	Tolerance float64

	keyFunc any
	initial any
	err     error
}

// DefaultOptions returns discount 0.99, tolerance 1e-9 and fmt.Sprint keys.
func DefaultOptions() Options {
	return Options{Discount: DefaultDiscount, Tolerance: DefaultTolerance}
}

// WithDiscount sets γ. Values outside [0, 1] surface as ErrBadDiscount.
func WithDiscount(gamma float64) Option {
	return func(o *Options) {
		if math.IsNaN(gamma) || gamma < 0 || gamma > 1 {
			o.err = fmt.Errorf("%w: got %v", ErrBadDiscount, gamma)
			return
		}
		o.Discount = gamma
	}
}

// WithTolerance sets the slack allowed when checking that successor
// probabilities sum to 1.
func WithTolerance(eps float64) Option {
	return func(o *Options) {
		if math.IsNaN(eps) || eps < 0 {
			o.err = fmt.Errorf("%w: tolerance %v", ErrOptionViolation, eps)
			return
		}
		o.Tolerance = eps
	}
}

// WithKeyFunc replaces fmt.Sprint as the persistence key of a state.
func WithKeyFunc[S comparable](fn KeyFunc[S]) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil key function", ErrOptionViolation)
			return
		}
		o.keyFunc = fn
	}
}

// WithInitialUtilities seeds the utility table. States missing from u start
// at 0; entries for unknown states are ignored.
func WithInitialUtilities[S comparable](u map[S]float64) Option {
	return func(o *Options) {
		o.initial = u
	}
}
