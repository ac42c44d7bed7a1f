package game

// Score carries both scoring views: hex-ownership counts recomputed from
// the grid, and flip points accumulated when a hex is taken from the
// opposing team. Neither is ever mutated directly outside this file.
type Score struct {
	OwnedA int
	OwnedB int

	PointsA int
	PointsB int
}

// TallyOwnership recounts per-team hex ownership by scanning the grid.
func TallyOwnership(g *Grid) (a, b int) {
	for i := range g.Cells {
		switch g.Cells[i].Owner {
		case TeamA:
			a++
		case TeamB:
			b++
		}
	}
	return a, b
}

// Retally refreshes the ownership counts from the grid.
func (s *Score) Retally(g *Grid) {
	s.OwnedA, s.OwnedB = TallyOwnership(g)
}

// AddFlips awards a point for every hex taken from the opposing team.
// Claims of unowned ground count territory but not points.
func (s *Score) AddFlips(flips []Flip) {
	for _, f := range flips {
		switch {
		case f.To == TeamA && f.From == TeamB:
			s.PointsA++
		case f.To == TeamB && f.From == TeamA:
			s.PointsB++
		}
	}
}

// Clear zeroes every counter.
func (s *Score) Clear() {
	*s = Score{}
}
