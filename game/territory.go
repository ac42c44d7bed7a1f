package game

// Flip records a hex changing hands.
type Flip struct {
	Coord Axial
	From  Team
	To    Team
}

// ClaimAt claims the hex under (x, y) for team. Returns the flip and true
// if the owner actually changed; claiming an already-owned hex or a point
// outside the tiling changes nothing.
func (g *Grid) ClaimAt(x, y float64, team Team) (Flip, bool) {
	i := -1
	if a, ok := g.HexAt(x, y); ok {
		i = g.index(a)
	}
	if i < 0 {
		return Flip{}, false
	}
	c := &g.Cells[i]
	if c.Owner == team {
		return Flip{}, false
	}
	f := Flip{Coord: c.Coord, From: c.Owner, To: team}
	c.Owner = team
	return f, true
}

// ResolveTerritory claims the hex under each ball's center for its team,
// appending any flips to dst. Balls are processed in slice order, which is
// TeamA block then TeamB block by construction; within a frame the last
// ball over a hex decides its owner, so the outcome is deterministic for
// a given state.
func ResolveTerritory(balls []Ball, g *Grid, dst []Flip) []Flip {
	for i := range balls {
		if f, ok := g.ClaimAt(balls[i].X, balls[i].Y, balls[i].Team); ok {
			dst = append(dst, f)
		}
	}
	return dst
}
