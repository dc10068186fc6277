package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AlienMode selects one of the alternate force laws.
type AlienMode int

const (
	ModeChargeParity AlienMode = iota
	ModePerpendicularDance
	ModeDistanceOscillation
	ModeQuantumFlip
	ModeChoreography
	ModeSpiralContainment
	ModeRhythmicPulse

	numAlienModes = 7
)

func (m AlienMode) String() string {
	switch m {
	case ModeChargeParity:
		return "Charge Parity"
	case ModePerpendicularDance:
		return "Perpendicular Dance"
	case ModeDistanceOscillation:
		return "Distance Oscillation"
	case ModeQuantumFlip:
		return "Quantum Flip"
	case ModeChoreography:
		return "Choreographed Pattern"
	case ModeSpiralContainment:
		return "Spiral Containment"
	case ModeRhythmicPulse:
		return "Rhythmic Pulsation"
	}
	return "Unknown"
}

// Alien physics constants
const (
	alienModeWindow = 10.0 // seconds each mode stays active

	parityScale    = 0.15 // charge-parity force relative to gravity
	oscFrequency   = 0.05 // radians per distance unit in oscillation mode
	oscScale       = 0.3
	choreoCircle   = 0.02
	choreoFigure   = 0.015
	spiralSpin     = 0.02
	spiralGain     = 0.0005
	comfortRadius  = 200.0
	pulseScale     = 0.25
	maxAlienSpeed  = 2.0
	containRadius  = 500.0
	containGain    = 0.001
	maxContainPull = 0.05
)

// ActiveAlienMode returns the mode for the given elapsed time in seconds.
// Modes cycle in order, one fixed-length window each.
func ActiveAlienMode(elapsed float64) AlienMode {
	if elapsed < 0 {
		elapsed = 0
	}
	return AlienMode(int(elapsed/alienModeWindow) % numAlienModes)
}

// ApplyAlienForce applies the active alternate force law to the pair a, b.
// Like gravity, coincident pairs are skipped.
func ApplyAlienForce(mode AlienMode, a, b *Body, elapsed, timeScale float64) {
	d := a.DistanceTo(b)
	if d < minInteractionDist {
		return
	}
	angle := a.AngleTo(b)
	base := Gravity * a.Mass * b.Mass / (d*d + Softening)

	switch mode {
	case ModeChargeParity:
		// Matching mass parity repels, mixed parity attracts.
		force := parityScale * base
		if int(math.Abs(a.Mass))%2 == int(math.Abs(b.Mass))%2 {
			force = -force
		}
		nudge(a, force/a.Mass, angle, timeScale)
		nudge(b, force/b.Mass, angle+math.Pi, timeScale)

	case ModePerpendicularDance:
		// Gravity magnitude, rotated 90 degrees off the connecting line.
		nudge(a, base/a.Mass, angle+math.Pi/2, timeScale)
		nudge(b, base/b.Mass, angle-math.Pi/2, timeScale)

	case ModeDistanceOscillation:
		// Sign alternates as the separation crosses the sine wave.
		force := oscScale * base * math.Sin(d*oscFrequency*2*math.Pi)
		nudge(a, force/a.Mass, angle, timeScale)
		nudge(b, force/b.Mass, angle+math.Pi, timeScale)

	case ModeQuantumFlip:
		// Attraction or repulsion from a hash of the two positions:
		// stable for a given configuration, arbitrary to the eye.
		force := parityScale * base
		if positionHash(a.Pos, b.Pos) < 0.5 {
			force = -force
		}
		nudge(a, force/a.Mass, angle, timeScale)
		nudge(b, force/b.Mass, angle+math.Pi, timeScale)

	case ModeChoreography:
		// No pairwise force; each body follows a closed-form blend of a
		// small circle and a figure eight, phase keyed by its mass.
		choreograph(a, elapsed, 0, timeScale)
		choreograph(b, elapsed, math.Pi, timeScale)

	case ModeSpiralContainment:
		spiral(a, timeScale)
		spiral(b, timeScale)

	case ModeRhythmicPulse:
		// Pulsing period between 2 and 4 seconds, keyed by where the
		// pair sits, so nearby pairs pulse roughly in sync.
		sum := a.Pos.X() + a.Pos.Y() + b.Pos.X() + b.Pos.Y()
		period := 2 + math.Mod(math.Abs(sum)*0.01, 2)
		force := pulseScale * base * math.Sin(2*math.Pi*elapsed/period)
		nudge(a, force/a.Mass, angle, timeScale)
		nudge(b, force/b.Mass, angle+math.Pi, timeScale)
	}
}

// positionHash maps the pair's positions into [0, 1). Deterministic for
// identical positions; any stable hash would do.
func positionHash(p, q mgl64.Vec2) float64 {
	h := math.Sin(p.X()*12.9898+p.Y()*78.233+q.X()*37.719+q.Y()*4.581) * 43758.5453
	return h - math.Floor(h)
}

func choreograph(b *Body, elapsed, shift, timeScale float64) {
	phase := math.Mod(b.Mass, 10)*0.2*math.Pi + shift
	t := elapsed + phase

	circle := mgl64.Vec2{math.Cos(t), math.Sin(t)}.Mul(choreoCircle)
	figure := mgl64.Vec2{math.Sin(2 * t), math.Sin(t) * math.Cos(t)}.Mul(choreoFigure)

	b.Vel = b.Vel.Add(circle.Add(figure).Mul(timeScale))
}

func spiral(b *Body, timeScale float64) {
	r := b.Pos.Len()
	if r == 0 {
		return
	}
	radial := b.Pos.Mul(1 / r)
	tangent := mgl64.Vec2{-radial.Y(), radial.X()}

	// Constant spin plus a pull toward the comfortable radius,
	// outward when inside it, inward when beyond it.
	drift := tangent.Mul(spiralSpin)
	drift = drift.Add(radial.Mul((comfortRadius - r) * spiralGain))
	b.Vel = b.Vel.Add(drift.Mul(timeScale))
}

// Stabilize applies the global alien-physics stabilizers to one body:
// a hard speed ceiling and a containment pull past the outer boundary.
// Several alien laws are not distance-attenuated, so without this
// bodies drift off screen and never return.
func Stabilize(b *Body, timeScale float64) {
	if speed := b.Vel.Len(); speed > maxAlienSpeed {
		b.Vel = b.Vel.Mul(maxAlienSpeed / speed)
	}

	r := b.Pos.Len()
	if r <= containRadius {
		return
	}
	pull := (r - containRadius) * containGain
	if pull > maxContainPull {
		pull = maxContainPull
	}
	inward := b.Pos.Mul(-1 / r)
	b.Vel = b.Vel.Add(inward.Mul(pull * timeScale))
}
