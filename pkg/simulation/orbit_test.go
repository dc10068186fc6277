package simulation

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"solarsim/pkg/physics"
)

func TestOrbitCorrectionNoOpWithinTolerance(t *testing.T) {
	s, _ := newTestSystem()
	addPrimary(s, 10000)
	planet := physics.NewBody(physics.KindPlanet, 5, mgl64.Vec2{160, 0}, mgl64.Vec2{0, -3})
	s.AddBody(planet)

	// Drift by less than the tolerance.
	planet.Pos = mgl64.Vec2{160.3, 0}
	before := planet.Vel
	s.correctOrbits()

	if planet.Vel != before {
		t.Errorf("correction applied within tolerance: %v -> %v", before, planet.Vel)
	}
}

func TestOrbitCorrectionPullsInwardWhenTooFar(t *testing.T) {
	s, _ := newTestSystem()
	addPrimary(s, 10000)
	planet := physics.NewBody(physics.KindPlanet, 5, mgl64.Vec2{160, 0}, mgl64.Vec2{})
	s.AddBody(planet)

	planet.Pos = mgl64.Vec2{170, 0}
	s.correctOrbits()

	// Primary is at the origin, so inward on the x axis is negative.
	if planet.Vel.X() >= 0 {
		t.Errorf("expected inward pull, vx = %v", planet.Vel.X())
	}
	want := orbitGain * 10.0
	if math.Abs(planet.Vel.Len()-want) > 1e-12 {
		t.Errorf("pull magnitude = %v, want %v", planet.Vel.Len(), want)
	}
}

func TestOrbitCorrectionPushesOutwardTwiceAsHard(t *testing.T) {
	s, _ := newTestSystem()
	addPrimary(s, 10000)
	planet := physics.NewBody(physics.KindPlanet, 5, mgl64.Vec2{160, 0}, mgl64.Vec2{})
	s.AddBody(planet)

	planet.Pos = mgl64.Vec2{150, 0}
	s.correctOrbits()

	if planet.Vel.X() <= 0 {
		t.Errorf("expected outward push, vx = %v", planet.Vel.X())
	}
	want := 2 * orbitGain * 10.0
	if math.Abs(planet.Vel.Len()-want) > 1e-12 {
		t.Errorf("push magnitude = %v, want %v", planet.Vel.Len(), want)
	}
}

func TestOrbitCorrectionSkipsAsteroidsAndPrimary(t *testing.T) {
	s, _ := newTestSystem()
	sun := addPrimary(s, 10000)
	asteroid := physics.NewBody(physics.KindAsteroid, 0.5, mgl64.Vec2{200, 0}, mgl64.Vec2{})
	s.AddBody(asteroid)

	asteroid.Pos = mgl64.Vec2{250, 0}
	s.correctOrbits()

	if (asteroid.Vel != mgl64.Vec2{}) {
		t.Error("asteroids are not orbit-corrected")
	}
	if (sun.Vel != mgl64.Vec2{}) {
		t.Error("the primary is not orbit-corrected")
	}
}

func TestOrbitCorrectionSkippedWithoutPrimary(t *testing.T) {
	s, _ := newTestSystem()
	planet := physics.NewBody(physics.KindPlanet, 5, mgl64.Vec2{160, 0}, mgl64.Vec2{})
	s.AddBody(planet)

	s.correctOrbits() // must not panic, nothing to anchor to

	if (planet.Vel != mgl64.Vec2{}) {
		t.Error("no primary, no correction")
	}
}

func TestOrbitCorrectionScalesWithTimeScale(t *testing.T) {
	run := func(scale float64) float64 {
		s, _ := newTestSystem()
		addPrimary(s, 10000)
		planet := physics.NewBody(physics.KindPlanet, 5, mgl64.Vec2{160, 0}, mgl64.Vec2{})
		s.AddBody(planet)
		s.SetTimeScale(scale)
		planet.Pos = mgl64.Vec2{180, 0}
		s.correctOrbits()
		return planet.Vel.Len()
	}

	full := run(1.0)
	quarter := run(0.25)
	if math.Abs(full*0.25-quarter) > 1e-15 {
		t.Errorf("correction not scaled by time scale: %v vs %v", full, quarter)
	}
}
