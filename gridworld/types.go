package gridworld

import (
	"fmt"

	"github.com/katalvlaran/statespace/memo"
)

// Layout characters.
const (
	Wall  = '#'
	Open  = '.'
	Start = 'S'
	Goal  = 'G'
)

// Cell is a position on the grid; X grows east, Y grows south.
type Cell struct {
	X, Y int
}

// String formats the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Key is the persistence key of c: "x,y".
func Key(c Cell) string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Direction is one of the four compass moves.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// offsets are indexed by Direction.
var offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Directions returns all moves in enumeration order.
func Directions() []Direction {
	return []Direction{North, East, South, West}
}

// String returns "N", "E", "S" or "W".
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Arrow returns the direction as a single glyph.
func (d Direction) Arrow() byte {
	return "^>v<"[d&3]
}

// left and right are the perpendicular slips of d.
func (d Direction) left() Direction { return (d + 3) % 4 }
func (d Direction) right() Direction { return (d + 1) % 4 }

// Grid is a rectangular world parsed from a text layout. It serves both as a
// deterministic navigation problem and as a noisy MDP. It is immutable once
// built, apart from its internal distance cache.
type Grid struct {
	Width, Height int

	cells   [][]byte
	start   Cell
	goals   []Cell
	rewards map[Cell]float64
	cfg     Config
	dist    *memo.Cache[Cell, float64]
}
