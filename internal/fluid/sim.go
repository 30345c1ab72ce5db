package fluid

import (
	"fmt"
	"math"
)

const (
	// solverIters is the Gauss-Seidel sweep count for the diffusion and
	// pressure solves.
	solverIters = 20
	// densityDiffusion is the diffusion rate of the dye field.
	densityDiffusion = 0.01
)

// Sim is a 2D incompressible flow solver on a width x height grid, using
// Chorin projection: diffuse, project, advect, project. Velocity components
// u (horizontal) and v (vertical) and the dye density live on cell centers;
// walls are no-slip. Fields are row-major with row index i = y.
type Sim struct {
	Width     int
	Height    int
	Viscosity float64
	Dt        float64

	u, v         []float64
	uPrev, vPrev []float64
	density      []float64
}

// New returns a zeroed simulator. The solver needs at least one interior
// cell, so both dimensions must be 3 or more.
func New(width, height int, viscosity, dt float64) (*Sim, error) {
	if width < 3 || height < 3 {
		return nil, fmt.Errorf("grid %dx%d too small, need at least 3x3", width, height)
	}
	if dt <= 0 {
		return nil, fmt.Errorf("time step %v not positive", dt)
	}
	if viscosity < 0 {
		return nil, fmt.Errorf("viscosity %v negative", viscosity)
	}
	n := width * height
	return &Sim{
		Width:     width,
		Height:    height,
		Viscosity: viscosity,
		Dt:        dt,
		u:         make([]float64, n),
		v:         make([]float64, n),
		uPrev:     make([]float64, n),
		vPrev:     make([]float64, n),
		density:   make([]float64, n),
	}, nil
}

func (s *Sim) idx(i, j int) int {
	return i*s.Width + j
}

// AddDensity deposits dye at cell (x, y). Out-of-range cells are ignored.
func (s *Sim) AddDensity(x, y int, amount float64) {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return
	}
	s.density[s.idx(y, x)] += amount
}

// AddVelocity adds (du, dv) to the velocity at cell (x, y). Out-of-range
// cells are ignored.
func (s *Sim) AddVelocity(x, y int, du, dv float64) {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return
	}
	s.u[s.idx(y, x)] += du
	s.v[s.idx(y, x)] += dv
}

// DensityAt returns the dye density at cell (x, y).
func (s *Sim) DensityAt(x, y int) float64 {
	return s.density[s.idx(y, x)]
}

// VelocityAt returns the velocity components at cell (x, y).
func (s *Sim) VelocityAt(x, y int) (u, v float64) {
	return s.u[s.idx(y, x)], s.v[s.idx(y, x)]
}

// Density exposes the live dye field, row-major. Callers must treat it as
// read-only; it is re-used across steps.
func (s *Sim) Density() []float64 {
	return s.density
}

// Step advances the simulation by one time step.
func (s *Sim) Step() {
	copy(s.uPrev, s.u)
	copy(s.vPrev, s.v)

	s.diffuse(s.u, s.uPrev, s.Viscosity)
	s.diffuse(s.v, s.vPrev, s.Viscosity)
	s.project()

	copy(s.uPrev, s.u)
	copy(s.vPrev, s.v)

	s.advect(s.u, s.uPrev, s.uPrev, s.vPrev)
	s.advect(s.v, s.vPrev, s.uPrev, s.vPrev)
	s.project()

	prev := make([]float64, len(s.density))
	copy(prev, s.density)
	s.diffuse(s.density, prev, densityDiffusion)
	copy(prev, s.density)
	s.advect(s.density, prev, s.u, s.v)
}

// diffuse relaxes f toward the diffusion equation solution with f0 as the
// previous state, reading updated neighbors from f itself (Gauss-Seidel).
func (s *Sim) diffuse(f, f0 []float64, rate float64) {
	a := s.Dt * rate * float64(s.Width) * float64(s.Height)
	copy(f, f0)
	for k := 0; k < solverIters; k++ {
		for i := 1; i < s.Height-1; i++ {
			for j := 1; j < s.Width-1; j++ {
				f[s.idx(i, j)] = (f0[s.idx(i, j)] + a*(f[s.idx(i+1, j)]+f[s.idx(i-1, j)]+
					f[s.idx(i, j+1)]+f[s.idx(i, j-1)])) / (1 + 4*a)
			}
		}
		s.setBoundary(f)
	}
}

// advect carries f0 along the velocity field (u, v) into f: each cell traces
// its source point one step back in time and samples f0 there bilinearly.
func (s *Sim) advect(f, f0, u, v []float64) {
	dt0 := s.Dt * math.Sqrt(float64(s.Width)*float64(s.Height))
	for i := 1; i < s.Height-1; i++ {
		for j := 1; j < s.Width-1; j++ {
			x := float64(j) - dt0*u[s.idx(i, j)]
			y := float64(i) - dt0*v[s.idx(i, j)]

			x = math.Max(0.5, math.Min(float64(s.Width)-1.5, x))
			y = math.Max(0.5, math.Min(float64(s.Height)-1.5, y))

			i0, j0 := int(y), int(x)
			i1, j1 := i0+1, j0+1

			s1 := x - float64(j0)
			s0 := 1 - s1
			t1 := y - float64(i0)
			t0 := 1 - t1

			f[s.idx(i, j)] = t0*(s0*f0[s.idx(i0, j0)]+s1*f0[s.idx(i0, j1)]) +
				t1*(s0*f0[s.idx(i1, j0)]+s1*f0[s.idx(i1, j1)])
		}
	}
	s.setBoundary(f)
}

// project removes the divergent part of the velocity field by solving a
// pressure Poisson equation and subtracting the pressure gradient.
func (s *Sim) project() {
	div := make([]float64, len(s.u))
	p := make([]float64, len(s.u))
	scale := math.Sqrt(float64(s.Width) * float64(s.Height))

	for i := 1; i < s.Height-1; i++ {
		for j := 1; j < s.Width-1; j++ {
			div[s.idx(i, j)] = -0.5 * (s.u[s.idx(i, j+1)] - s.u[s.idx(i, j-1)] +
				s.v[s.idx(i+1, j)] - s.v[s.idx(i-1, j)]) / scale
		}
	}
	s.setBoundary(div)
	s.setBoundary(p)

	for k := 0; k < solverIters; k++ {
		for i := 1; i < s.Height-1; i++ {
			for j := 1; j < s.Width-1; j++ {
				p[s.idx(i, j)] = (div[s.idx(i, j)] + p[s.idx(i+1, j)] + p[s.idx(i-1, j)] +
					p[s.idx(i, j+1)] + p[s.idx(i, j-1)]) / 4
			}
		}
		s.setBoundary(p)
	}

	for i := 1; i < s.Height-1; i++ {
		for j := 1; j < s.Width-1; j++ {
			s.u[s.idx(i, j)] -= 0.5 * (p[s.idx(i, j+1)] - p[s.idx(i, j-1)]) * float64(s.Width)
			s.v[s.idx(i, j)] -= 0.5 * (p[s.idx(i+1, j)] - p[s.idx(i-1, j)]) * float64(s.Height)
		}
	}
	s.setBoundary(s.u)
	s.setBoundary(s.v)
}

// setBoundary zeroes the walls, then sets each corner to the mean of its two
// edge neighbors.
func (s *Sim) setBoundary(f []float64) {
	w, h := s.Width, s.Height
	for j := 0; j < w; j++ {
		f[s.idx(0, j)] = 0
		f[s.idx(h-1, j)] = 0
	}
	for i := 0; i < h; i++ {
		f[s.idx(i, 0)] = 0
		f[s.idx(i, w-1)] = 0
	}
	f[s.idx(0, 0)] = 0.5 * (f[s.idx(1, 0)] + f[s.idx(0, 1)])
	f[s.idx(0, w-1)] = 0.5 * (f[s.idx(1, w-1)] + f[s.idx(0, w-2)])
	f[s.idx(h-1, 0)] = 0.5 * (f[s.idx(h-2, 0)] + f[s.idx(h-1, 1)])
	f[s.idx(h-1, w-1)] = 0.5 * (f[s.idx(h-2, w-1)] + f[s.idx(h-1, w-2)])
}
