package simulation

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	"solarsim/pkg/physics"
)

// EnvironmentConfig describes an initial system loadable from JSON.
type EnvironmentConfig struct {
	Name      string       `json:"name"`
	TimeScale float64      `json:"time_scale,omitempty"`
	AutoOrbit bool         `json:"auto_orbit,omitempty"`
	Bodies    []BodyConfig `json:"bodies"`
}

// BodyConfig is one body entry in an environment file.
type BodyConfig struct {
	Name         string     `json:"name,omitempty"`
	Kind         string     `json:"kind"` // "primary", "planet" or "asteroid"
	Mass         float64    `json:"mass"`
	Pos          [2]float64 `json:"pos"`
	Vel          [2]float64 `json:"vel"`
	Color        string     `json:"color,omitempty"`
	Rings        bool       `json:"rings,omitempty"`
	Eccentricity float64    `json:"eccentricity,omitempty"`
}

// LoadConfig reads an environment file and builds a ready system.
func LoadConfig(path string) (*System, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	var env EnvironmentConfig
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return NewSystemFromConfig(env)
}

// NewSystemFromConfig builds a system from an already parsed config.
func NewSystemFromConfig(env EnvironmentConfig) (*System, error) {
	if env.AutoOrbit {
		setOrbitalVelocities(env.Bodies)
	}

	s := NewSystem()
	if env.TimeScale != 0 {
		s.SetTimeScale(env.TimeScale)
	}

	for _, bc := range env.Bodies {
		kind, err := parseKind(bc.Kind)
		if err != nil {
			return nil, err
		}
		b := physics.NewBody(kind, bc.Mass,
			mgl64.Vec2{bc.Pos[0], bc.Pos[1]},
			mgl64.Vec2{bc.Vel[0], bc.Vel[1]})
		b.Name = bc.Name
		b.Rings = bc.Rings
		b.Eccentricity = bc.Eccentricity
		b.Color = parseColor(bc.Color)
		s.AddBody(b)
	}
	return s, nil
}

func parseKind(kind string) (physics.Kind, error) {
	switch kind {
	case "primary":
		return physics.KindPrimary, nil
	case "planet", "":
		return physics.KindPlanet, nil
	case "asteroid":
		return physics.KindAsteroid, nil
	}
	return 0, fmt.Errorf("unknown body kind %q", kind)
}

// setOrbitalVelocities fills in circular orbital velocities around the
// first body for every body that has none of its own.
func setOrbitalVelocities(bodies []BodyConfig) {
	if len(bodies) == 0 {
		return
	}
	central := bodies[0]
	for i := 1; i < len(bodies); i++ {
		if bodies[i].Vel[0] != 0 || bodies[i].Vel[1] != 0 {
			continue
		}
		dx := bodies[i].Pos[0] - central.Pos[0]
		dy := bodies[i].Pos[1] - central.Pos[1]
		r := math.Hypot(dx, dy)
		if r == 0 {
			continue
		}
		v := math.Sqrt(physics.Gravity*central.Mass/r) * orbitalDampening
		bodies[i].Vel[0] = dy / r * v
		bodies[i].Vel[1] = -dx / r * v
	}
}

// parseColor reads "#rrggbb"; anything else falls back to white.
func parseColor(hex string) color.RGBA {
	var r, g, b uint8
	if len(hex) == 7 && hex[0] == '#' {
		if n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err == nil && n == 3 {
			return color.RGBA{r, g, b, 255}
		}
	}
	return color.RGBA{255, 255, 255, 255}
}
