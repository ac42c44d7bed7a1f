package protocol

type Welcome struct {
	ViewerID string `json:"viewerId"`
	TickHz   int    `json:"tickHz"`
}

// State is the per-broadcast render snapshot: everything the canvas shell
// needs to repaint a frame, in the same pixel space it reported in Hello.
type State struct {
	Frame     uint64         `json:"frame"`
	Phase     string         `json:"phase"`
	Width     float64        `json:"w"`
	Height    float64        `json:"h"`
	HexRadius float64        `json:"hexR"`
	Hexes     []HexSnapshot  `json:"hexes"`
	Balls     []BallSnapshot `json:"balls"`
	OwnedA    int            `json:"ownedA"`
	OwnedB    int            `json:"ownedB"`
	PointsA   int            `json:"pointsA"`
	PointsB   int            `json:"pointsB"`
}

// HexSnapshot is one hex: axial coordinate, pixel center, owner
// (0 unclaimed, 1 team A, 2 team B).
type HexSnapshot struct {
	Q     int     `json:"q"`
	R     int     `json:"r"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Owner uint8   `json:"o"`
}

type BallSnapshot struct {
	Team   uint8   `json:"team"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"r"`
}

type ErrorMsg struct {
	Msg string `json:"msg"`
}
