package simulation

import (
	"fmt"
	"image/color"

	"solarsim/pkg/physics"
)

// resolveCollision checks one pair for overlap and applies the kind
// rules: the primary destroys anything it touches, planets absorb
// asteroids, and same-kind pairs pass through each other.
func (s *System) resolveCollision(first, second *physics.Body) {
	if first.Kind == second.Kind {
		return
	}
	if first.DistanceTo(second) >= (first.Size+second.Size)/2 {
		return
	}

	switch {
	case first.Kind == physics.KindPrimary:
		s.destroy(second)
	case second.Kind == physics.KindPrimary:
		s.destroy(first)
	case first.Kind == physics.KindPlanet && second.Kind == physics.KindAsteroid:
		s.absorb(second, first)
	case first.Kind == physics.KindAsteroid && second.Kind == physics.KindPlanet:
		s.absorb(first, second)
	}
}

func (s *System) destroy(b *physics.Body) {
	if !s.remove(b) {
		return
	}
	s.logEvent(fmt.Sprintf("%s destroyed by the sun", bodyLabel(b)), color.RGBA{255, 90, 90, 255})
}

func (s *System) absorb(asteroid, planet *physics.Body) {
	if !s.remove(asteroid) {
		return
	}
	s.logEvent(fmt.Sprintf("%s absorbed by %s", bodyLabel(asteroid), bodyLabel(planet)), color.RGBA{255, 180, 90, 255})
}

func bodyLabel(b *physics.Body) string {
	if b.Name != "" {
		return b.Name
	}
	return b.Kind.String()
}
