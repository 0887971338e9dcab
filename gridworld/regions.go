package gridworld

// Regions finds the four-connected regions of non-wall cells. Terminals
// belong to a region but do not connect it further, since no move leaves
// them. Each region lists its cells in discovery order. Terminals reachable
// from no open cell come last as singletons.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions() [][]Cell {
	seen := make([]bool, g.Width*g.Height)
	var regions [][]Cell

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c0 := Cell{X: x, Y: y}
			if g.cells[y][x] == Wall || seen[g.index(c0)] || g.IsTerminal(c0) {
				continue
			}
			queue := []Cell{c0}
			seen[g.index(c0)] = true
			var region []Cell

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				region = append(region, u)
				if g.IsTerminal(u) {
					continue
				}
				for _, off := range offsets {
					v := Cell{X: u.X + off[0], Y: u.Y + off[1]}
					if g.IsWall(v) || seen[g.index(v)] {
						continue
					}
					seen[g.index(v)] = true
					queue = append(queue, v)
				}
			}
			regions = append(regions, region)
		}
	}

	// Terminals nobody can reach form singleton regions.
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Cell{X: x, Y: y}
			if g.IsTerminal(c) && !seen[g.index(c)] {
				regions = append(regions, []Cell{c})
			}
		}
	}
	return regions
}

// Reachable reports whether any goal lies in the start cell's region.
func (g *Grid) Reachable() bool {
	for _, region := range g.Regions() {
		hasStart, hasGoal := false, false
		for _, c := range region {
			hasStart = hasStart || c == g.start
			hasGoal = hasGoal || g.IsGoal(c)
		}
		if hasStart {
			return hasGoal
		}
	}
	return false
}
