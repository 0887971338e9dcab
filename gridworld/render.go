package gridworld

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/statespace/mdp"
)

// RenderPolicy draws the greedy policy of vi over g: walls and terminals keep
// their layout character, every other cell shows the arrow of its best
// action. One line per row, each newline-terminated.
func RenderPolicy(g *Grid, vi *mdp.ValueIteration[Cell, Direction]) (string, error) {
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Cell{X: x, Y: y}
			if g.IsWall(c) || g.IsTerminal(c) {
				b.WriteByte(g.At(c))
				continue
			}
			d, ok, err := vi.Policy(c, g.Actions(c))
			if err != nil {
				return "", fmt.Errorf("gridworld: policy at %v: %w", c, err)
			}
			if !ok {
				b.WriteByte('?')
				continue
			}
			b.WriteByte(d.Arrow())
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// RenderUtilities prints the utility of every cell in a fixed-width table;
// walls show as blanks.
func RenderUtilities(g *Grid, vi *mdp.ValueIteration[Cell, Direction]) string {
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Cell{X: x, Y: y}
			if g.IsWall(c) {
				b.WriteString("        ")
				continue
			}
			fmt.Fprintf(&b, "%8.2f", vi.Utility(c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderPath overlays a navigation path on the layout with '*'.
func RenderPath(g *Grid, path []Direction) string {
	rows := make([][]byte, g.Height)
	for y := range rows {
		rows[y] = append([]byte(nil), g.cells[y]...)
	}
	c := g.start
	for _, d := range path {
		c = g.move(c, d)
		if rows[c.Y][c.X] == Open || rows[c.Y][c.X] >= '1' && rows[c.Y][c.X] <= '9' {
			rows[c.Y][c.X] = '*'
		}
	}
	var b strings.Builder
	for _, row := range rows {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}
