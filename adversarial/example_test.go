package adversarial_test

import (
	"fmt"

	"github.com/katalvlaran/statespace/adversarial"
)

// nim is single-pile Nim: take one or two stones, taking the last one wins.
type nim struct{ stones int }

type nimState struct {
	pile int
	turn int
}

func (n nim) InitialState() nimState { return nimState{pile: n.stones} }
func (nim) AgentCount() int { return 2 }
func (nim) Turn(s nimState) int { return s.turn }
func (nim) Actions(s nimState) []int {
	if s.pile >= 2 {
		return []int{1, 2}
	}
	return []int{1}
}
func (nim) Successor(s nimState, take int) nimState {
	return nimState{pile: s.pile - take, turn: 1 - s.turn}
}
func (nim) IsTerminal(s nimState) (bool, []float64) {
	if s.pile > 0 {
		return false, nil
	}
	// The player who just moved took the last stone.
	if s.turn == 1 {
		return true, []float64{1, -1}
	}
	return true, []float64{-1, 1}
}

func ExampleAlphaBeta() {
	game := nim{stones: 4}
	none := func(adversarial.Game[nimState, int], nimState, int) float64 { return 0 }

	d, err := adversarial.AlphaBeta[nimState, int](game, game.InitialState(), none, adversarial.NoCutoff)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("take %d, value %v\n", d.Action, d.Value)
	// Output: take 1, value 1
}
