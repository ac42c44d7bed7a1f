package game

import "math"

const (
	// Hex radius derives from the short side of the canvas.
	HexRadiusDiv = 50.0
	HexRadiusMin = 3.0
	HexRadiusMax = 14.0

	// Ball radius and cruise speed derive from the hex radius.
	BallRadiusScale = 1.8
	BallRadiusMin   = 6.0
	BallRadiusMax   = 22.0
	BaseSpeedScale  = 20.0 // px/s per px of hex radius
	BaseSpeedMin    = 200.0
	BaseSpeedMax    = 480.0

	// Launch cone half-angle for freshly spawned balls.
	LaunchSpread = 0.35 * math.Pi
	// Fraction of the field width each team spawns inside.
	SpawnBand = 0.25

	MaxBallsPerTeam = 5

	SpeedMulMin = 0.0
	SpeedMulMax = 6.25

	// Longest dt a single tick will integrate; larger gaps (background
	// tab, debugger pause) are truncated instead of teleporting balls.
	MaxTickDt = 0.050
)

// HexRadiusFor returns the hex radius used for a canvas of the given size.
func HexRadiusFor(w, h float64) float64 {
	short := math.Min(w, h)
	r := short / HexRadiusDiv
	return math.Min(math.Max(r, HexRadiusMin), HexRadiusMax)
}

// BallRadiusFor returns the ball radius for a grid with hex radius r.
func BallRadiusFor(r float64) float64 {
	return math.Min(math.Max(r*BallRadiusScale, BallRadiusMin), BallRadiusMax)
}

// BaseSpeedFor returns the cruise speed for a grid with hex radius r.
func BaseSpeedFor(r float64) float64 {
	return math.Min(math.Max(r*BaseSpeedScale, BaseSpeedMin), BaseSpeedMax)
}
