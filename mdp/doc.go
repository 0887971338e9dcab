// Package mdp solves fully known Markov decision processes by value
// iteration and extracts greedy policies from the resulting utilities.
//
// Bellman update
//
//	U'(s) = max_a Σ_{s'} P(s'|s,a) · (R(s,a,s') + γ·U(s'))
//	U'(s) = 0 for terminal s
//
// Sweeps are synchronous: each reads only the previous table and writes a
// freshly allocated one, so intermediate values after k sweeps are exact and
// Train(m) followed by Train(n) equals Train(m+n). A non-terminal state with
// no actions keeps utility 0.
//
// Contract checks
//
//	Every distribution read during a sweep or by QValue/Policy is checked:
//	negative probabilities or a sum further than the tolerance from 1 stop
//	the call with ErrBadDistribution.
//
// Persistence
//
//	Save writes {"<key>": utility, ...} with two-space indentation and sorted
//	keys; keys come from a KeyFunc (fmt.Sprint by default) which must be
//	injective over States(). Load rejects keys naming no state.
//
// Usage
//
//	vi, err := mdp.NewValueIteration[Cell, Direction](grid, mdp.WithDiscount(0.9))
//	if err != nil { ... }
//	if err = vi.Train(100); err != nil { ... }
//	a, ok, err := vi.Policy(cell, grid.Actions(cell))
package mdp
