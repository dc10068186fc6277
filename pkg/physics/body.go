package physics

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Kind tags a body for collision and orbit-correction rules.
// Force computation is uniform across all kinds.
type Kind int

const (
	KindPrimary Kind = iota
	KindPlanet
	KindAsteroid
)

func (k Kind) String() string {
	switch k {
	case KindPrimary:
		return "primary"
	case KindPlanet:
		return "planet"
	case KindAsteroid:
		return "asteroid"
	}
	return "unknown"
}

// Display size constants
const (
	MinDisplaySize = 10
	DisplayLogBase = 1.1
)

// Body represents a single simulated object.
type Body struct {
	Name string
	Kind Kind
	Mass float64 // must be positive; the size formula is undefined otherwise
	Pos  mgl64.Vec2
	Vel  mgl64.Vec2

	// Size is the display radius derived from mass. Rendering is external,
	// but collision detection uses this value.
	Size float64

	Rings        bool    // planets only, cosmetic
	Eccentricity float64 // asteroids only, biases the spawn velocity
	Color        color.RGBA
}

// NewBody creates a body of the given kind and computes its display size.
// Callers must supply a positive mass.
func NewBody(kind Kind, mass float64, pos, vel mgl64.Vec2) *Body {
	return &Body{
		Kind: kind,
		Mass: mass,
		Pos:  pos,
		Vel:  vel,
		Size: displaySize(mass),
	}
}

func displaySize(mass float64) float64 {
	s := math.Floor(math.Log(mass) / math.Log(DisplayLogBase))
	return math.Max(s, MinDisplaySize)
}

// DistanceTo returns the Euclidean distance to another body.
// Callers must guard against a zero distance before dividing by it.
func (b *Body) DistanceTo(other *Body) float64 {
	return other.Pos.Sub(b.Pos).Len()
}

// AngleTo returns the direction from b to other in radians, range (-pi, pi].
func (b *Body) AngleTo(other *Body) float64 {
	d := other.Pos.Sub(b.Pos)
	return math.Atan2(d.Y(), d.X())
}

// Advance moves the body along its velocity, scaled by the global
// time scale. All bodies in a tick advance with the same scale.
func (b *Body) Advance(timeScale float64) {
	b.Pos = b.Pos.Add(b.Vel.Mul(timeScale))
}

// Speed returns the velocity magnitude.
func (b *Body) Speed() float64 {
	return b.Vel.Len()
}
