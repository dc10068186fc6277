package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestDisplaySize(t *testing.T) {
	tests := []struct {
		name string
		mass float64
		want float64
	}{
		{"sun-sized mass", 10000, 96},
		{"unit mass clamps to minimum", 1, MinDisplaySize},
		{"sub-unit mass clamps to minimum", 0.5, MinDisplaySize},
		{"small planet clamps to minimum", 2, MinDisplaySize},
		{"large planet", 100, 48},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(KindPlanet, tt.mass, mgl64.Vec2{}, mgl64.Vec2{})
			if b.Size != tt.want {
				t.Errorf("displaySize(%v) = %v, want %v", tt.mass, b.Size, tt.want)
			}
		})
	}
}

func TestDistanceTo(t *testing.T) {
	a := NewBody(KindPlanet, 1, mgl64.Vec2{0, 0}, mgl64.Vec2{})
	b := NewBody(KindPlanet, 1, mgl64.Vec2{3, 4}, mgl64.Vec2{})

	if got := a.DistanceTo(b); got != 5 {
		t.Errorf("DistanceTo = %v, want 5", got)
	}
	if got := b.DistanceTo(a); got != 5 {
		t.Errorf("DistanceTo is not symmetric: %v", got)
	}
}

func TestAngleTo(t *testing.T) {
	origin := NewBody(KindPlanet, 1, mgl64.Vec2{}, mgl64.Vec2{})
	tests := []struct {
		name  string
		other mgl64.Vec2
		want  float64
	}{
		{"east", mgl64.Vec2{10, 0}, 0},
		{"north", mgl64.Vec2{0, 10}, math.Pi / 2},
		{"west", mgl64.Vec2{-10, 0}, math.Pi},
		{"south", mgl64.Vec2{0, -10}, -math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := NewBody(KindPlanet, 1, tt.other, mgl64.Vec2{})
			if got := origin.AngleTo(other); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("AngleTo = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdvance(t *testing.T) {
	b := NewBody(KindPlanet, 1, mgl64.Vec2{10, 20}, mgl64.Vec2{2, -4})
	b.Advance(0.5)

	want := mgl64.Vec2{11, 18}
	if b.Pos != want {
		t.Errorf("Advance: pos = %v, want %v", b.Pos, want)
	}
	if (b.Vel != mgl64.Vec2{2, -4}) {
		t.Errorf("Advance must not change velocity, got %v", b.Vel)
	}
}

func TestAdvanceStationary(t *testing.T) {
	b := NewBody(KindAsteroid, 1, mgl64.Vec2{-7, 3}, mgl64.Vec2{})
	for i := 0; i < 100; i++ {
		b.Advance(0.25)
	}
	if (b.Pos != mgl64.Vec2{-7, 3}) {
		t.Errorf("stationary body moved to %v", b.Pos)
	}
}

func TestKindString(t *testing.T) {
	if KindPrimary.String() != "primary" || KindPlanet.String() != "planet" || KindAsteroid.String() != "asteroid" {
		t.Error("kind names changed")
	}
}
