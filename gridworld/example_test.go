package gridworld_test

import (
	"fmt"

	"github.com/katalvlaran/statespace/gridworld"
	"github.com/katalvlaran/statespace/mdp"
	"github.com/katalvlaran/statespace/search"
)

// ExampleRenderPath finds the nearest exit of the bridge-and-cliff world with
// A* and draws the route.
func ExampleRenderPath() {
	cfg, _ := gridworld.Preset("seek-near-risky")
	g := gridworld.MustParse(gridworld.DiscountLayout, cfg)

	res, err := search.AStar[gridworld.Cell, gridworld.Direction](g, g.InitialState(), gridworld.Manhattan)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Path, res.Cost)
	fmt.Print(gridworld.RenderPath(g, res.Path))
	// Output:
	// [E E N] 3
	// .....
	// .#...
	// .#n#f
	// S**..
	// xxxxx
}

// ExampleRenderPolicy trains value iteration on a deterministic corridor.
func ExampleRenderPolicy() {
	g := gridworld.MustParse([]string{"S..G"}, gridworld.Config{Discount: 0.9, LivingReward: -0.04})

	vi, _ := mdp.NewValueIteration[gridworld.Cell, gridworld.Direction](g, mdp.WithDiscount(0.9))
	_ = vi.Train(10)

	policy, _ := gridworld.RenderPolicy(g, vi)
	fmt.Print(policy)
	// Output:
	// >>>G
}
