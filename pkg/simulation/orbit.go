package simulation

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"solarsim/pkg/physics"
)

// Orbit correction constants
const (
	// Deviation below this from the recorded radius is left alone.
	orbitTolerance = 0.5

	// Restoring gain per unit of deviation. Soft by design: the nudge
	// bounds drift, it does not pin the radius.
	orbitGain = 0.005
)

// correctOrbits nudges each planet's velocity back toward the orbital
// radius recorded when it was added. Planets that drifted inward get a
// double-strength outward push; outward drift gets a single-strength
// inward pull. Skipped entirely when no primary exists.
func (s *System) correctOrbits() {
	primary := s.Primary()
	if primary == nil {
		return
	}

	for _, b := range s.Bodies {
		if b.Kind != physics.KindPlanet {
			continue
		}
		want, ok := s.initialDist[b]
		if !ok {
			continue
		}

		current := b.DistanceTo(primary)
		deviation := current - want
		if math.Abs(deviation) < orbitTolerance {
			continue
		}

		toPrimary := b.AngleTo(primary)
		var mag, angle float64
		if deviation < 0 {
			// Too close: push away from the primary, twice as hard.
			mag = 2 * orbitGain * -deviation
			angle = toPrimary + math.Pi
		} else {
			// Too far: pull back in.
			mag = orbitGain * deviation
			angle = toPrimary
		}
		b.Vel = b.Vel.Add(polarVec(angle, mag*s.timeScale))
	}
}

func polarVec(angle, mag float64) mgl64.Vec2 {
	sin, cos := math.Sincos(angle)
	return mgl64.Vec2{cos * mag, sin * mag}
}
