package simulation

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"solarsim/pkg/physics"
)

// Simulation constants
const (
	trailCapacity = 50
	minTimeScale  = 0.01

	// Orbital speed factor relative to the exact circular velocity;
	// slightly elliptical orbits look better and stay bounded.
	orbitalDampening = 0.7
)

// System owns the body collection and runs the tick pipeline:
// forces, collisions, orbit correction, integration.
// It is single-threaded; callers mutate it only between ticks.
type System struct {
	Bodies []*physics.Body // insertion order = pair processing order

	OrbitCorrection bool
	AlienPhysics    bool
	ShowOrbits      bool
	ShowTrails      bool

	// Clock supplies wall-clock time for alien mode selection.
	// Tests replace it to drive elapsed time deterministically.
	Clock func() time.Time

	timeScale float64
	epoch     time.Time
	alienMode physics.AlienMode

	initialDist map[*physics.Body]float64
	trails      map[*physics.Body][]mgl64.Vec2
	log         EventLog
}

// NewSystem creates an empty system with the default time scale.
func NewSystem() *System {
	s := &System{
		Clock:       time.Now,
		timeScale:   1.0,
		initialDist: make(map[*physics.Body]float64),
		trails:      make(map[*physics.Body][]mgl64.Vec2),
	}
	s.epoch = s.Clock()
	return s
}

// TimeScale returns the global dimensionless speed multiplier.
func (s *System) TimeScale() float64 {
	return s.timeScale
}

// SetTimeScale sets the global speed multiplier, clamped to a floor so
// the simulation never freezes. There is no upper clamp; values above
// ~20 are known to destabilize orbits.
func (s *System) SetTimeScale(scale float64) {
	if scale < minTimeScale {
		scale = minTimeScale
	}
	s.timeScale = scale
}

// Primary returns the first primary body in insertion order, or nil.
func (s *System) Primary() *physics.Body {
	for _, b := range s.Bodies {
		if b.Kind == physics.KindPrimary {
			return b
		}
	}
	return nil
}

// AddBody inserts a body. For planets and asteroids the current
// distance to the primary is recorded once, for orbit correction.
func (s *System) AddBody(b *physics.Body) {
	if primary := s.Primary(); primary != nil && b.Kind != physics.KindPrimary {
		s.initialDist[b] = b.DistanceTo(primary)
	}
	s.Bodies = append(s.Bodies, b)
	if b.Name != "" {
		s.logEvent(fmt.Sprintf("%s joined the system", b.Name), color.RGBA{120, 220, 120, 255})
	}
}

// RemoveBody deletes a body directly, logging the removal. Collision
// resolution removes bodies through its own, more specific events.
func (s *System) RemoveBody(b *physics.Body) bool {
	if !s.remove(b) {
		return false
	}
	s.logEvent(fmt.Sprintf("%s removed from the system", bodyLabel(b)), color.RGBA{160, 160, 160, 255})
	return true
}

// remove deletes a body and purges its bookkeeping. It reports whether
// the body was present, so duplicate removals stay silent.
func (s *System) remove(b *physics.Body) bool {
	for i, other := range s.Bodies {
		if other == b {
			s.Bodies = append(s.Bodies[:i], s.Bodies[i+1:]...)
			delete(s.initialDist, b)
			delete(s.trails, b)
			return true
		}
	}
	return false
}

// Contains reports whether the body is currently in the system.
func (s *System) Contains(b *physics.Body) bool {
	for _, other := range s.Bodies {
		if other == b {
			return true
		}
	}
	return false
}

// Step runs one full tick: pairwise forces and collisions over a
// snapshot of the body list, then orbit correction, then integration
// and trail updates for every surviving body.
func (s *System) Step() {
	elapsed := s.Clock().Sub(s.epoch).Seconds()

	if s.AlienPhysics {
		if mode := physics.ActiveAlienMode(elapsed); mode != s.alienMode {
			s.alienMode = mode
			s.logEvent(fmt.Sprintf("alien physics shifted to %s", mode), color.RGBA{200, 120, 255, 255})
		}
	}

	// Snapshot so collision removals don't invalidate the enumeration.
	snapshot := make([]*physics.Body, len(s.Bodies))
	copy(snapshot, s.Bodies)

	for i, first := range snapshot {
		for _, second := range snapshot[i+1:] {
			if s.AlienPhysics {
				physics.ApplyAlienForce(s.alienMode, first, second, elapsed, s.timeScale)
			} else {
				physics.ApplyGravity(first, second, s.timeScale)
			}
			s.resolveCollision(first, second)
		}
	}

	if s.AlienPhysics {
		for _, b := range s.Bodies {
			physics.Stabilize(b, s.timeScale)
		}
	}

	if s.OrbitCorrection {
		s.correctOrbits()
	}

	for _, b := range s.Bodies {
		b.Advance(s.timeScale)
		s.recordTrail(b)
	}
}

// AlienMode returns the force law currently in effect.
func (s *System) AlienMode() physics.AlienMode {
	return s.alienMode
}

// Trail returns the recorded past positions of a body, oldest first.
func (s *System) Trail(b *physics.Body) []mgl64.Vec2 {
	return s.trails[b]
}

// InitialDistance returns the distance to the primary recorded when the
// body was added, and whether one was recorded.
func (s *System) InitialDistance(b *physics.Body) (float64, bool) {
	d, ok := s.initialDist[b]
	return d, ok
}

// Events returns a read-only copy of the event log.
func (s *System) Events() []Event {
	return s.log.Events()
}

// DrainEvents empties the event log and returns its entries.
func (s *System) DrainEvents() []Event {
	return s.log.Drain()
}

func (s *System) recordTrail(b *physics.Body) {
	trail := append(s.trails[b], b.Pos)
	if len(trail) > trailCapacity {
		trail = trail[1:]
	}
	s.trails[b] = trail
}

func (s *System) logEvent(text string, clr color.RGBA) {
	s.log.Push(Event{Time: s.Clock(), Text: text, Color: clr})
}

// SpawnPlanet adds a planet at the given angle and distance from the
// origin with a near-circular orbital velocity around the primary.
func (s *System) SpawnPlanet(name string, mass, distance, angle float64, rings bool) *physics.Body {
	pos, vel := s.orbitalState(distance, angle, 0)
	b := physics.NewBody(physics.KindPlanet, mass, pos, vel)
	b.Name = name
	b.Rings = rings
	s.AddBody(b)
	return b
}

// SpawnAsteroid adds an asteroid whose spawn velocity is biased off the
// circular orbit by its eccentricity. Eccentricity is not read again.
func (s *System) SpawnAsteroid(name string, mass, distance, angle, eccentricity float64) *physics.Body {
	pos, vel := s.orbitalState(distance, angle, eccentricity)
	b := physics.NewBody(physics.KindAsteroid, mass, pos, vel)
	b.Name = name
	b.Eccentricity = eccentricity
	s.AddBody(b)
	return b
}

// orbitalState computes position and tangential velocity for a body
// entering orbit around the primary. With no primary the body starts
// at rest.
func (s *System) orbitalState(distance, angle, eccentricity float64) (pos, vel mgl64.Vec2) {
	sin, cos := math.Sincos(angle)
	pos = mgl64.Vec2{cos * distance, sin * distance}

	primary := s.Primary()
	if primary == nil || distance == 0 {
		return pos, mgl64.Vec2{}
	}
	speed := math.Sqrt(primary.Mass/distance) * orbitalDampening * (1 + eccentricity)
	vel = mgl64.Vec2{sin * speed, -cos * speed}
	return pos, vel
}
