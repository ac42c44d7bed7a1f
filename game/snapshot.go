package game

// HexView is one hex as the renderer sees it.
type HexView struct {
	Coord Axial
	CX    float64
	CY    float64
	Owner Team
}

// BallView is one ball as the renderer sees it.
type BallView struct {
	Team   Team
	X      float64
	Y      float64
	Radius float64
}

// Snapshot is the read-only frame handed to the renderer: geometry in the
// same pixel space the simulation was initialized with, plus scores. The
// simulation never reads anything back from the rendering side.
type Snapshot struct {
	Phase     Phase
	Frame     uint64
	Width     float64
	Height    float64
	HexRadius float64

	Hexes []HexView
	Balls []BallView

	OwnedA  int
	OwnedB  int
	PointsA int
	PointsB int
}

// Snapshot copies the current state into a render snapshot. The result
// shares nothing with the live state and stays valid across later ticks.
func (s *Sim) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:   s.phase,
		Frame:   s.frame,
		Width:   s.width,
		Height:  s.height,
		OwnedA:  s.score.OwnedA,
		OwnedB:  s.score.OwnedB,
		PointsA: s.score.PointsA,
		PointsB: s.score.PointsB,
	}
	if s.grid == nil {
		return snap
	}
	snap.HexRadius = s.grid.R
	snap.Hexes = make([]HexView, 0, len(s.grid.Cells))
	for i := range s.grid.Cells {
		c := &s.grid.Cells[i]
		snap.Hexes = append(snap.Hexes, HexView{
			Coord: c.Coord,
			CX:    c.CX,
			CY:    c.CY,
			Owner: c.Owner,
		})
	}
	snap.Balls = make([]BallView, 0, len(s.balls))
	for i := range s.balls {
		b := &s.balls[i]
		snap.Balls = append(snap.Balls, BallView{
			Team:   b.Team,
			X:      b.X,
			Y:      b.Y,
			Radius: b.Radius,
		})
	}
	return snap
}
