package game

import (
	"math"
	"math/rand"
)

// Ball is one moving piece. Pure kinematic data; step.go moves it and
// territory.go reads it.
type Ball struct {
	Team      Team
	X, Y      float64
	VX, VY    float64
	Radius    float64
	BaseSpeed float64
}

// Speed returns the current velocity magnitude.
func (b *Ball) Speed() float64 { return math.Hypot(b.VX, b.VY) }

// SpawnBalls places perTeam balls for each side: TeamA on the left quarter
// of the field heading right-ish, TeamB mirrored. perTeam is clamped to
// [0, MaxBallsPerTeam]. Ball size and launch speed derive from the grid's
// hex radius. The returned slice is ordered TeamA block then TeamB block,
// which fixes the territory resolution order.
func SpawnBalls(perTeam int, g *Grid, w, h float64, rng *rand.Rand) []Ball {
	if perTeam < 0 {
		perTeam = 0
	}
	if perTeam > MaxBallsPerTeam {
		perTeam = MaxBallsPerTeam
	}
	balls := make([]Ball, 0, perTeam*2)
	if perTeam == 0 {
		return balls
	}

	r := BallRadiusFor(g.R)
	speed := BaseSpeedFor(g.R)

	for i := 0; i < perTeam; i++ {
		x := randRange(rng, r+1, w*SpawnBand)
		y := randRange(rng, r+1, h-r-1)
		ang := randRange(rng, -LaunchSpread, LaunchSpread)
		balls = append(balls, Ball{
			Team:      TeamA,
			X:         x,
			Y:         y,
			VX:        math.Cos(ang) * speed,
			VY:        math.Sin(ang) * speed,
			Radius:    r,
			BaseSpeed: speed,
		})
	}
	for i := 0; i < perTeam; i++ {
		x := randRange(rng, w*(1-SpawnBand), w-r-1)
		y := randRange(rng, r+1, h-r-1)
		ang := math.Pi + randRange(rng, -LaunchSpread, LaunchSpread)
		balls = append(balls, Ball{
			Team:      TeamB,
			X:         x,
			Y:         y,
			VX:        math.Cos(ang) * speed,
			VY:        math.Sin(ang) * speed,
			Radius:    r,
			BaseSpeed: speed,
		})
	}
	return balls
}

// randRange draws uniformly from [min, max). A degenerate range (tiny
// canvas) collapses to min.
func randRange(rng *rand.Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*rng.Float64()
}

// clampToBounds pulls every ball back inside the w×h playfield. Used after
// a resize shrinks the field under existing balls.
func clampToBounds(balls []Ball, w, h float64) {
	for i := range balls {
		b := &balls[i]
		b.X = math.Min(math.Max(b.X, b.Radius), w-b.Radius)
		b.Y = math.Min(math.Max(b.Y, b.Radius), h-b.Radius)
	}
}
