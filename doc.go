// Package statespace is a toolkit of generic state-space engines: graph
// search over implicit problems, adversarial game-tree search and value
// iteration over Markov decision processes.
//
// What is inside?
//
//	search/         BFS, DFS, uniform-cost, greedy best-first and A* over a
//	                Problem[S, A]; one expansion loop, deterministic ties
//	adversarial/    greedy one-ply, minimax, alpha-beta (with and without move
//	                ordering) and expectimax over a multi-agent Game[S, A]
//	mdp/            synchronous value iteration, Q-values, greedy policies and
//	                JSON persistence of utilities over an MDP[S, A]
//	memo/           typed per-instance cache for memoized sub-computations
//	gridworld/      a text-layout grid that is both a search Problem and an
//	                MDP, with heuristics, YAML config and tuning presets
//	cmd/gridsolve/  CLI: train, print the policy, save the utilities
//	examples/       runnable scenarios tying the packages together
//
// Contracts
//
//	Engines only talk to caller code through three interfaces:
//
//	    search.Problem[S, A]      InitialState, IsGoal, Actions, Successor, Cost
//	    adversarial.Game[S, A]    InitialState, AgentCount, Turn, IsTerminal,
//	                              Actions, Successor
//	    mdp.MDP[S, A]             States, Actions, Successors, Reward, IsTerminal
//
//	States are comparable values; every explored set, cost table and utility
//	table is keyed by them directly.
//
// Quick ASCII example:
//
//	    S . # .
//	    . . # G        BFS, UCS and A* find the 6-step detour below the wall;
//	    . . . .        value iteration turns the same grid into a policy.
//
//	go get github.com/katalvlaran/statespace
package statespace
