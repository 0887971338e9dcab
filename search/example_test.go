package search_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/statespace/search"
)

// lineWorld is a number line: from any integer you may step -1 or +1, or
// jump to double the current value at cost 3.
type lineWorld struct{ target int }

func (l lineWorld) InitialState() int { return 1 }
func (l lineWorld) IsGoal(s int) bool { return s == l.target }
func (l lineWorld) Actions(int) []string { return []string{"inc", "dec", "double"} }

func (l lineWorld) Successor(s int, a string) int {
	switch a {
	case "inc":
		return s + 1
	case "dec":
		return s - 1
	default:
		return s * 2
	}
}

func (l lineWorld) Cost(_ int, a string) float64 {
	if a == "double" {
		return 3
	}

	return 1
}

// ExampleUCS shows that uniform-cost search trades hops for total cost.
func ExampleUCS() {
	p := lineWorld{target: 16}

	hops, _ := search.BFS[int, string](p, p.InitialState(), search.WithMaxDepth(20))
	cheap, _ := search.UCS[int, string](p, p.InitialState(), search.WithMaxDepth(20))

	fmt.Println(hops.Path, hops.Cost)
	fmt.Println(cheap.Path, cheap.Cost)
	// Output:
	// [inc double double double] 10
	// [inc inc inc double double] 9
}

// ExampleAStar guides the search with an admissible estimate of remaining cost.
func ExampleAStar() {
	p := lineWorld{target: 7}
	h := func(_ search.Problem[int, string], s int) float64 {
		return math.Min(math.Abs(float64(p.target-s)), 3)
	}

	res, err := search.AStar[int, string](p, p.InitialState(), h, search.WithMaxDepth(20))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Found, res.Path, res.Cost)
	// Output:
	// true [inc inc double inc] 6
}
