package fluid

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// refillBurst is how many times the emitter fires on a re-injection frame.
const refillBurst = 5

// Emitter seeds and periodically tops up the dye blob. X and Y of -1 select
// the grid center.
type Emitter struct {
	X        int     `yaml:"x"`
	Y        int     `yaml:"y"`
	Radius   int     `yaml:"radius"`
	Density  float64 `yaml:"density"`
	VelX     float64 `yaml:"vel_x"`
	VelY     float64 `yaml:"vel_y"`
	Interval int     `yaml:"interval"`
	Refill   float64 `yaml:"refill"`
}

// Scene describes a runnable simulation: grid, fluid parameters, frame count
// and the emitter.
type Scene struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Viscosity float64 `yaml:"viscosity"`
	Dt        float64 `yaml:"dt"`
	Frames    int     `yaml:"frames"`
	Emitter   Emitter `yaml:"emitter"`
}

// DefaultScene reproduces the classic demo: a dense blob in the middle of a
// 100x100 box, launched upward, topped up every 20 frames.
func DefaultScene() Scene {
	return Scene{
		Width:     100,
		Height:    100,
		Viscosity: 0.0001,
		Dt:        0.1,
		Frames:    200,
		Emitter: Emitter{
			X:        -1,
			Y:        -1,
			Radius:   10,
			Density:  1.0,
			VelY:     -50,
			Interval: 20,
			Refill:   0.5,
		},
	}
}

// LoadScene reads a YAML scene file over the defaults, so files only name the
// fields they change.
func LoadScene(path string) (Scene, error) {
	sc := DefaultScene()
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("read scene: %w", err)
	}
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scene{}, fmt.Errorf("parse scene %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return Scene{}, fmt.Errorf("scene %s: %w", path, err)
	}
	return sc, nil
}

// Validate checks that the scene is runnable.
func (sc Scene) Validate() error {
	if sc.Width < 3 || sc.Height < 3 {
		return fmt.Errorf("grid %dx%d too small, need at least 3x3", sc.Width, sc.Height)
	}
	if sc.Dt <= 0 {
		return fmt.Errorf("time step %v not positive", sc.Dt)
	}
	if sc.Viscosity < 0 {
		return fmt.Errorf("viscosity %v negative", sc.Viscosity)
	}
	if sc.Frames < 1 {
		return fmt.Errorf("frames %d, need at least 1", sc.Frames)
	}
	if sc.Emitter.Radius < 0 {
		return fmt.Errorf("emitter radius %d negative", sc.Emitter.Radius)
	}
	if sc.Emitter.Density < 0 || sc.Emitter.Refill < 0 {
		return fmt.Errorf("emitter density and refill must not be negative")
	}
	if sc.Emitter.Interval < 1 {
		return fmt.Errorf("emitter interval %d, need at least 1", sc.Emitter.Interval)
	}
	return nil
}

func (sc Scene) center() (cx, cy int) {
	cx = sc.Emitter.X
	if cx < 0 {
		cx = sc.Width / 2
	}
	cy = sc.Emitter.Y
	if cy < 0 {
		cy = sc.Height / 2
	}
	return cx, cy
}

// Build constructs the simulator and seeds the emitter: dye inside the disc,
// velocity over the enclosing square.
func (sc Scene) Build() (*Sim, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	sim, err := New(sc.Width, sc.Height, sc.Viscosity, sc.Dt)
	if err != nil {
		return nil, err
	}
	cx, cy := sc.center()
	r := sc.Emitter.Radius
	for i := 0; i < sc.Height; i++ {
		for j := 0; j < sc.Width; j++ {
			if math.Hypot(float64(i-cy), float64(j-cx)) < float64(r) {
				sim.AddDensity(j, i, sc.Emitter.Density)
			}
		}
	}
	for i := cy - r; i < cy+r; i++ {
		for j := cx - r; j < cx+r; j++ {
			sim.AddVelocity(j, i, sc.Emitter.VelX, sc.Emitter.VelY)
		}
	}
	return sim, nil
}

// Inject fires the refill burst on emitter frames (frame 0 included). The
// burst lands at the lower edge of the blob.
func (sc Scene) Inject(sim *Sim, frame int) {
	if sc.Emitter.Interval <= 0 || frame%sc.Emitter.Interval != 0 {
		return
	}
	cx, cy := sc.center()
	y := cy + sc.Emitter.Radius
	for n := 0; n < refillBurst; n++ {
		sim.AddDensity(cx, y, sc.Emitter.Refill)
		sim.AddVelocity(cx, y, sc.Emitter.VelX, sc.Emitter.VelY)
	}
}
