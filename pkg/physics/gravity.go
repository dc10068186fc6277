package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Simulation constants
const (
	Gravity   = 1.0 // artificially large for a visually scaled system
	Softening = 0.1 // keeps the denominator off zero as distance shrinks

	// Pairs closer than this are skipped outright for the tick.
	minInteractionDist = 1.0

	// Acceleration ceiling per pair per tick.
	maxAccel = 0.5
)

// ApplyGravity applies the mutual Newtonian pull between a and b,
// accumulating into both velocities in opposite directions.
// Coincident pairs (distance < 1) are a no-op.
func ApplyGravity(a, b *Body, timeScale float64) {
	d := a.DistanceTo(b)
	if d < minInteractionDist {
		return
	}

	force := Gravity * a.Mass * b.Mass / (d*d + Softening)
	angle := a.AngleTo(b)

	nudge(a, force/a.Mass, angle, timeScale)
	nudge(b, force/b.Mass, angle+math.Pi, timeScale)
}

// nudge adds a clamped acceleration along angle to the body's velocity.
func nudge(b *Body, accel, angle, timeScale float64) {
	accel = clampAccel(accel)
	b.Vel = b.Vel.Add(polar(angle, accel*timeScale))
}

func clampAccel(a float64) float64 {
	if a > maxAccel {
		return maxAccel
	}
	if a < -maxAccel {
		return -maxAccel
	}
	return a
}

func polar(angle, mag float64) mgl64.Vec2 {
	sin, cos := math.Sincos(angle)
	return mgl64.Vec2{cos * mag, sin * mag}
}
