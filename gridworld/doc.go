// Package gridworld is a rectangular world that serves as both a navigation
// problem for package search and a Markov decision process for package mdp.
//
// What:
//
//   - Parse reads a text layout ('#' walls, '.' and digit cells, one 'S',
//     lettered terminals) together with a Config.
//   - As a search.Problem, moves are deterministic, bumping into a wall stays
//     put, and the goals are the terminals with positive reward.
//   - As an mdp.MDP, a move goes the intended way with probability 1-noise
//     and slips to each side with noise/2; entering a terminal pays its
//     reward, any other step pays the living reward.
//   - Manhattan, Euclidean and TrueDistance heuristics; TrueDistance is
//     memoized per grid.
//   - Config is YAML-loadable; named presets reproduce classic tuning
//     exercises on DiscountLayout.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: malformed layout.
//   - ErrUnknownCell: unknown character or terminal without a reward.
//   - ErrBadStart: not exactly one 'S'.
//   - ErrBadConfig: noise or discount outside [0, 1].
//   - ErrUnknownPreset: unregistered preset name.
package gridworld
