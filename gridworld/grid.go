package gridworld

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/statespace/memo"
)

// Parse builds a Grid from a rectangular text layout.
//
//	'#'        wall
//	'.'        open cell, entry cost 1
//	'1'..'9'   open cell whose entry cost is the digit
//	'S'        the start cell (exactly one)
//	'G'        terminal with reward cfg.Terminals["G"], or +1 if unset
//	letters    terminal with reward cfg.Terminals[letter]
//
// Terminals with a positive reward are the goals of the navigation problem.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownCell, ErrBadStart or
// ErrBadConfig.
// Complexity: O(W×H) time and memory.
func Parse(layout []string, cfg Config) (*Grid, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	h, w := len(layout), len(layout[0])
	for _, row := range layout {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := &Grid{
		Width:   w,
		Height:  h,
		cells:   make([][]byte, h),
		rewards: make(map[Cell]float64),
		cfg:     cfg,
		dist:    memo.New[Cell, float64](),
	}
	starts := 0
	for y, row := range layout {
		g.cells[y] = []byte(row)
		for x := 0; x < w; x++ {
			c := Cell{X: x, Y: y}
			ch := row[x]
			switch {
			case ch == Wall, ch == Open, ch >= '1' && ch <= '9':
			case ch == Start:
				g.start = c
				starts++
			case isLetter(ch):
				r, ok := cfg.Terminals[string(ch)]
				if !ok && ch != Goal {
					return nil, fmt.Errorf("%w: terminal %q at %v has no reward", ErrUnknownCell, ch, c)
				}
				if !ok {
					r = 1
				}
				g.rewards[c] = r
				if r > 0 {
					g.goals = append(g.goals, c)
				}
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrUnknownCell, ch, c)
			}
		}
	}
	if starts != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrBadStart, starts)
	}

	return g, nil
}

// MustParse is Parse for layouts known to be valid; it panics on error.
func MustParse(layout []string, cfg Config) *Grid {
	g, err := Parse(layout, cfg)
	if err != nil {
		panic(err)
	}
	return g
}

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the layout character at c.
func (g *Grid) At(c Cell) byte {
	return g.cells[c.Y][c.X]
}

// IsWall reports whether c is outside the grid or a wall.
func (g *Grid) IsWall(c Cell) bool {
	return !g.InBounds(c.X, c.Y) || g.cells[c.Y][c.X] == Wall
}

// Start returns the start cell.
func (g *Grid) Start() Cell { return g.start }

// Goals returns the positive-reward terminals in row-major order.
func (g *Grid) Goals() []Cell {
	return append([]Cell(nil), g.goals...)
}

// Config returns the configuration the grid was parsed with.
func (g *Grid) Config() Config { return g.cfg }

// TerminalReward returns the reward for entering c and whether c is terminal.
func (g *Grid) TerminalReward(c Cell) (float64, bool) {
	r, ok := g.rewards[c]
	return r, ok
}

// move applies d to c; bumping into a wall or the border stays put.
func (g *Grid) move(c Cell, d Direction) Cell {
	off := offsets[d&3]
	n := Cell{X: c.X + off[0], Y: c.Y + off[1]}
	if g.IsWall(n) {
		return c
	}
	return n
}

// entryCost is the cost of stepping onto c.
func (g *Grid) entryCost(c Cell) float64 {
	if ch := g.At(c); ch >= '1' && ch <= '9' {
		return float64(ch - '0')
	}
	return 1
}

// index maps c to a row-major index: Y*Width + X.
func (g *Grid) index(c Cell) int {
	return c.Y*g.Width + c.X
}

// Coordinate converts a row-major index back to a Cell.
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{X: idx % g.Width, Y: idx / g.Width}
}

// String returns the layout, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	for _, row := range g.cells {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}
