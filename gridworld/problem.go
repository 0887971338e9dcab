package gridworld

import (
	"github.com/katalvlaran/statespace/search"
)

var _ search.Problem[Cell, Direction] = (*Grid)(nil)

// InitialState returns the start cell.
func (g *Grid) InitialState() Cell { return g.start }

// IsGoal reports whether c is a terminal with a positive reward.
func (g *Grid) IsGoal(c Cell) bool {
	r, ok := g.rewards[c]
	return ok && r > 0
}

// Actions returns all four directions for a non-terminal cell and none for a
// terminal one. Moves into walls are allowed and leave the agent in place.
func (g *Grid) Actions(c Cell) []Direction {
	if _, ok := g.rewards[c]; ok {
		return nil
	}
	return Directions()
}

// Successor is the deterministic result of moving d from c.
func (g *Grid) Successor(c Cell, d Direction) Cell {
	return g.move(c, d)
}

// Cost is the entry cost of the cell reached by moving d from c.
func (g *Grid) Cost(c Cell, d Direction) float64 {
	return g.entryCost(g.move(c, d))
}
