package game

// connections are the directions checked from each ring. Together they cover every hex edge once.
var connections = [3]Direction{Right, Up, UpRight}

// rebuildComponents recomputes the islands of rings from scratch. Every missing ring is merged
// into the sentinel, so any island not containing it is cut off from the rest of the board.
func (g *Game) rebuildComponents() {
	g.components.Reset()
	for _, c := range AllCoordinates() {
		if !g.board.At(c).Present() {
			g.components.Union(c, Sentinel)
			continue
		}
		for _, d := range connections {
			n := c.RawAdjacent(d)
			r, ok := g.board.Get(n)
			if !ok {
				continue
			}
			if !r.Present() {
				g.components.Union(n, Sentinel)
				continue
			}
			g.components.Union(c, n)
		}
	}
}

// captureIsolated takes every island that has no vacant ring left. Its marbles go to player and
// its rings leave the board. It reports whether anything was taken.
func (g *Game) captureIsolated(player Player) bool {
	full := make(map[int]bool)
	for _, c := range AllCoordinates() {
		r := g.board.At(c)
		if !r.Present() {
			continue
		}
		root := g.components.Find(c)
		if _, seen := full[root]; !seen {
			full[root] = true
		}
		if r == Vacant {
			full[root] = false
		}
	}

	captured := false
	for _, c := range AllCoordinates() {
		r := g.board.At(c)
		if !r.Present() || !full[g.components.Find(c)] {
			continue
		}
		if m, ok := r.Marble(); ok {
			g.scores[player].Add(m, 1)
		}
		g.board.Set(c, Nonexistent)
		captured = true
	}
	if captured {
		for _, c := range AllCoordinates() {
			if !g.board.At(c).Present() {
				g.components.Union(c, Sentinel)
			}
		}
	}
	return captured
}
