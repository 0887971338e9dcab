package gridworld

import (
	"github.com/katalvlaran/statespace/mdp"
)

var _ mdp.MDP[Cell, Direction] = (*Grid)(nil)

// States returns every non-wall cell in row-major order.
func (g *Grid) States() []Cell {
	out := make([]Cell, 0, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[y][x] != Wall {
				out = append(out, Cell{X: x, Y: y})
			}
		}
	}
	return out
}

// Successors moves in the intended direction with probability 1-noise and
// slips to each perpendicular direction with noise/2. Outcomes landing on
// the same cell are merged; zero-probability outcomes are dropped.
func (g *Grid) Successors(c Cell, d Direction) []mdp.Transition[Cell] {
	noise := g.cfg.Noise
	out := make([]mdp.Transition[Cell], 0, 3)
	add := func(n Cell, p float64) {
		if p == 0 {
			return
		}
		for i := range out {
			if out[i].Next == n {
				out[i].Prob += p
				return
			}
		}
		out = append(out, mdp.Transition[Cell]{Next: n, Prob: p})
	}
	add(g.move(c, d), 1-noise)
	add(g.move(c, d.left()), noise/2)
	add(g.move(c, d.right()), noise/2)

	return out
}

// Reward is the terminal reward when next is terminal, otherwise the living
// reward.
func (g *Grid) Reward(_ Cell, _ Direction, next Cell) float64 {
	if r, ok := g.rewards[next]; ok {
		return r
	}
	return g.cfg.LivingReward
}

// IsTerminal reports whether c ends an episode.
func (g *Grid) IsTerminal(c Cell) bool {
	_, ok := g.rewards[c]
	return ok
}
