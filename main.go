package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"solarsim/pkg/physics"
	"solarsim/pkg/simulation"
)

const (
	screenWidth  = 1400
	screenHeight = 900

	// Clicks closer to the primary than this spawn nothing.
	minSpawnDistance = 50
)

var planetColors = []color.RGBA{
	{255, 0, 0, 255},
	{0, 255, 0, 255},
	{0, 0, 255, 255},
}

var planetNames = []string{
	"Hesperion", "Velatra", "Ormis", "Calyx", "Thalvane",
	"Eryndel", "Sorcha", "Vantor", "Mireen", "Kalder",
}

// Game wires the simulation engine to Ebitengine: input, drawing and
// the optional snapshot recorder. All physics lives under pkg/.
type Game struct {
	sys     *simulation.System
	rec     *simulation.Recorder
	stars   *ebiten.Image
	rng     *rand.Rand
	paused  bool
	spawned int
}

// Update handles input and advances the simulation one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.sys.OrbitCorrection = !g.sys.OrbitCorrection
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.sys.AlienPhysics = !g.sys.AlienPhysics
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sys.ShowOrbits = !g.sys.ShowOrbits
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.sys.ShowTrails = !g.sys.ShowTrails
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.sys.SetTimeScale(g.sys.TimeScale() * 1.25)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.sys.SetTimeScale(g.sys.TimeScale() * 0.8)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.spawnPlanetAt(mx, my)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		mx, my := ebiten.CursorPosition()
		g.spawnAsteroidAt(mx, my)
	}

	if g.paused {
		return nil
	}

	g.sys.Step()
	if g.rec != nil {
		if err := g.rec.Snapshot(g.sys); err != nil {
			log.Printf("recorder: %v", err)
		}
	}
	return nil
}

// spawnPlanetAt adds a planet in orbit at the clicked position.
func (g *Game) spawnPlanetAt(mx, my int) {
	distance, angle, ok := g.clickOrbit(mx, my)
	if !ok {
		return
	}
	mass := g.rng.Float64()*4 + 1
	b := g.sys.SpawnPlanet(g.nextName(), mass, distance, angle, g.rng.Float64() < 0.3)
	b.Color = planetColors[g.rng.Intn(len(planetColors))]
}

// spawnAsteroidAt adds a small asteroid with a random eccentricity.
func (g *Game) spawnAsteroidAt(mx, my int) {
	distance, angle, ok := g.clickOrbit(mx, my)
	if !ok {
		return
	}
	mass := g.rng.Float64()*0.9 + 0.1
	ecc := g.rng.Float64() * 0.4
	b := g.sys.SpawnAsteroid(fmt.Sprintf("asteroid-%d", g.spawned), mass, distance, angle, ecc)
	g.spawned++
	b.Color = color.RGBA{180, 180, 180, 255}
}

func (g *Game) clickOrbit(mx, my int) (distance, angle float64, ok bool) {
	x := float64(mx) - screenWidth/2
	y := float64(my) - screenHeight/2
	distance = math.Hypot(x, y)
	if distance < minSpawnDistance {
		return 0, 0, false
	}
	return distance, math.Atan2(y, x), true
}

func (g *Game) nextName() string {
	name := planetNames[g.spawned%len(planetNames)]
	g.spawned++
	return name
}

// Draw renders the starfield, orbit rings, trails, bodies and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.stars, nil)

	const cx = float32(screenWidth) / 2
	const cy = float32(screenHeight) / 2

	if g.sys.ShowOrbits {
		for _, b := range g.sys.Bodies {
			if b.Kind != physics.KindPlanet {
				continue
			}
			if r, ok := g.sys.InitialDistance(b); ok {
				vector.StrokeCircle(screen, cx, cy, float32(r), 1, color.RGBA{60, 60, 80, 255}, true)
			}
		}
	}

	if g.sys.ShowTrails {
		for _, b := range g.sys.Bodies {
			trail := g.sys.Trail(b)
			for i := 1; i < len(trail); i++ {
				vector.StrokeLine(screen,
					cx+float32(trail[i-1].X()), cy+float32(trail[i-1].Y()),
					cx+float32(trail[i].X()), cy+float32(trail[i].Y()),
					1, fade(b.Color), true)
			}
		}
	}

	for _, b := range g.sys.Bodies {
		x := cx + float32(b.Pos.X())
		y := cy + float32(b.Pos.Y())
		vector.DrawFilledCircle(screen, x, y, float32(b.Size), bodyColor(b), true)
		if b.Rings {
			vector.StrokeCircle(screen, x, y, float32(b.Size)+4, 1.5, color.RGBA{210, 200, 160, 255}, true)
		}
	}

	g.drawHUD(screen)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	status := fmt.Sprintf(
		"bodies: %d  time scale: %.2f  orbit correction: %v  alien physics: %v",
		len(g.sys.Bodies), g.sys.TimeScale(), g.sys.OrbitCorrection, g.sys.AlienPhysics)
	if g.sys.AlienPhysics {
		status += fmt.Sprintf("  mode: %s", g.sys.AlienMode())
	}
	if g.paused {
		status += "  [paused]"
	}
	ebitenutil.DebugPrintAt(screen, status, 10, 10)
	ebitenutil.DebugPrintAt(screen,
		"click: add planet | right-click: add asteroid | space: pause | O/A/R/T: toggles | +/-: speed | esc: quit",
		10, 28)

	for i, e := range g.sys.Events() {
		line := fmt.Sprintf("%s  %s", e.Time.Format("15:04:05"), e.Text)
		ebitenutil.DebugPrintAt(screen, line, 10, screenHeight-90+i*16)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func bodyColor(b *physics.Body) color.RGBA {
	if b.Color != (color.RGBA{}) {
		return b.Color
	}
	if b.Kind == physics.KindPrimary {
		return color.RGBA{255, 255, 0, 255}
	}
	return color.RGBA{255, 255, 255, 255}
}

func fade(c color.RGBA) color.RGBA {
	if c == (color.RGBA{}) {
		c = color.RGBA{255, 255, 255, 255}
	}
	return color.RGBA{c.R / 2, c.G / 2, c.B / 2, 160}
}

// newStarfield renders a perlin-thresholded star background once.
func newStarfield(seed int64) *ebiten.Image {
	img := ebiten.NewImage(screenWidth, screenHeight)
	p := perlin.NewPerlin(2, 2, 3, seed)
	for y := 0; y < screenHeight; y += 2 {
		for x := 0; x < screenWidth; x += 2 {
			n := p.Noise2D(float64(x)*0.35, float64(y)*0.35)
			if n > 0.42 {
				v := uint8(120 + math.Min(n*250, 135))
				img.Set(x, y, color.RGBA{v, v, v, 255})
			}
		}
	}
	return img
}

// seedSystem builds the default environment: a primary at the origin
// and a few planets on near-circular orbits.
func seedSystem(rng *rand.Rand) *simulation.System {
	sys := simulation.NewSystem()

	sun := physics.NewBody(physics.KindPrimary, 10000, mgl64.Vec2{}, mgl64.Vec2{})
	sun.Name = "Sol"
	sys.AddBody(sun)

	for i := 0; i < 4; i++ {
		angle := rng.Float64() * 2 * math.Pi
		distance := rng.Float64()*200 + 200
		mass := rng.Float64()*4 + 1
		b := sys.SpawnPlanet(planetNames[i], mass, distance, angle, rng.Float64() < 0.3)
		b.Color = planetColors[rng.Intn(len(planetColors))]
	}
	return sys
}

func main() {
	envPath := flag.String("env", "", "environment JSON to load instead of the default system")
	recordPath := flag.String("record", "", "record per-tick body snapshots to this sqlite file")
	flag.Parse()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var sys *simulation.System
	if *envPath != "" {
		loaded, err := simulation.LoadConfig(*envPath)
		if err != nil {
			log.Fatalf("loading environment: %v", err)
		}
		sys = loaded
	} else {
		sys = seedSystem(rng)
	}
	sys.ShowTrails = true

	game := &Game{
		sys:     sys,
		stars:   newStarfield(rng.Int63()),
		rng:     rng,
		spawned: 4,
	}

	if *recordPath != "" {
		rec, err := simulation.OpenRecorder(*recordPath)
		if err != nil {
			log.Fatalf("opening recorder: %v", err)
		}
		defer rec.Close()
		game.rec = rec
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Solar System Simulation")
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
