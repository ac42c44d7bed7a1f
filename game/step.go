package game

import (
	"math"
	"math/rand"
)

// Step advances every ball by dt seconds scaled by mul, reflects balls off
// the playfield walls, then resolves ball-ball collisions. Walls are hard:
// the offending velocity component is negated and the position clamped
// back inside, never wrapped.
func Step(balls []Ball, dt, mul, w, h float64, rng *rand.Rand) {
	for i := range balls {
		b := &balls[i]
		b.X += b.VX * dt * mul
		b.Y += b.VY * dt * mul

		if b.X-b.Radius <= 0 {
			b.X = b.Radius
			b.VX = math.Abs(b.VX)
		} else if b.X+b.Radius >= w {
			b.X = w - b.Radius
			b.VX = -math.Abs(b.VX)
		}
		if b.Y-b.Radius <= 0 {
			b.Y = b.Radius
			b.VY = math.Abs(b.VY)
		} else if b.Y+b.Radius >= h {
			b.Y = h - b.Radius
			b.VY = -math.Abs(b.VY)
		}
	}

	resolveCollisions(balls, rng)
}

// resolveCollisions runs an all-pairs sweep in ascending (i, j) order,
// i < j, so multi-contact frames resolve the same way for the same input
// state. Each overlapping pair gets an equal-mass elastic response: the
// velocity components along the center line are exchanged, tangential
// components kept, and the pair is pushed apart along the normal so the
// overlap does not survive the frame.
func resolveCollisions(balls []Ball, rng *rand.Rand) {
	n := len(balls)
	if n < 2 {
		return
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			bi := &balls[i]
			bj := &balls[j]

			dx := bj.X - bi.X
			dy := bj.Y - bi.Y
			rsum := bi.Radius + bj.Radius
			dist2 := dx*dx + dy*dy
			if dist2 > rsum*rsum {
				continue
			}

			dist := math.Sqrt(dist2)
			if dist == 0 {
				// Exactly coincident centers: poke one ball in a
				// random direction so a normal exists.
				ang := randRange(rng, 0, 2*math.Pi)
				bi.X -= math.Cos(ang) * 0.001
				bi.Y -= math.Sin(ang) * 0.001
				dx = bj.X - bi.X
				dy = bj.Y - bi.Y
				dist = math.Sqrt(dx*dx + dy*dy)
			}
			nx := dx / dist
			ny := dy / dist

			// Separate the overlap before touching velocities.
			corr := (rsum-dist)/2 + 1e-4
			bi.X -= nx * corr
			bi.Y -= ny * corr
			bj.X += nx * corr
			bj.Y += ny * corr

			vn := (bj.VX-bi.VX)*nx + (bj.VY-bi.VY)*ny
			if vn >= 0 {
				continue // already moving apart
			}

			// Equal masses, e=1: exchanging the normal components is
			// the impulse j = -vn applied to each ball.
			jx := -vn * nx
			jy := -vn * ny
			bi.VX -= jx
			bi.VY -= jy
			bj.VX += jx
			bj.VY += jy
		}
	}
}
