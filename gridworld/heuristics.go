package gridworld

import (
	"math"

	"github.com/samber/lo"

	"github.com/katalvlaran/statespace/search"
)

// goalSet is what the heuristics need from a problem.
type goalSet interface {
	Goals() []Cell
}

// Manhattan is the L1 distance to the nearest goal. Every step costs at least
// 1, so it is admissible and consistent. Problems that expose no goals get 0.
func Manhattan(p search.Problem[Cell, Direction], c Cell) float64 {
	return nearest(p, c, func(a, b Cell) float64 {
		return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
	})
}

// Euclidean is the straight-line distance to the nearest goal. Admissible and
// consistent, but weaker than Manhattan on a four-connected grid.
func Euclidean(p search.Problem[Cell, Direction], c Cell) float64 {
	return nearest(p, c, func(a, b Cell) float64 {
		return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
	})
}

func nearest(p search.Problem[Cell, Direction], c Cell, dist func(a, b Cell) float64) float64 {
	gs, ok := p.(goalSet)
	if !ok {
		return 0
	}
	goals := gs.Goals()
	if len(goals) == 0 {
		return 0
	}
	return lo.Min(lo.Map(goals, func(goal Cell, _ int) float64 { return dist(c, goal) }))
}

// TrueDistance is the exact cost from c to the nearest goal, +Inf when none
// is reachable. It is computed by uniform-cost search on first request and
// memoized per cell in the grid's cache. Non-Grid problems get 0.
func TrueDistance(p search.Problem[Cell, Direction], c Cell) float64 {
	g, ok := p.(*Grid)
	if !ok {
		return 0
	}
	return g.dist.GetOrCompute(c, func() float64 {
		res, err := search.UCS[Cell, Direction](g, c)
		if err != nil || !res.Found {
			return math.Inf(1)
		}
		return res.Cost
	})
}

// CachedDistances reports how many cells TrueDistance has memoized.
func (g *Grid) CachedDistances() int {
	return g.dist.Len()
}
