package fluid

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name      string
		w, h      int
		visc, dt  float64
		wantError bool
	}{
		{"minimal_grid", 3, 3, 0, 0.1, false},
		{"demo_grid", 100, 100, 0.0001, 0.1, false},
		{"too_narrow", 2, 10, 0, 0.1, true},
		{"too_short", 10, 2, 0, 0.1, true},
		{"zero_dt", 10, 10, 0, 0, true},
		{"negative_viscosity", 10, 10, -1, 0.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.w, tt.h, tt.visc, tt.dt)
			if gotError := err != nil; gotError != tt.wantError {
				t.Errorf("New(%d, %d, %v, %v) error = %v, wantError %v", tt.w, tt.h, tt.visc, tt.dt, err, tt.wantError)
			}
		})
	}
}

func TestStepZeroStateStaysZero(t *testing.T) {
	s, err := New(10, 10, 0.001, 0.1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for n := 0; n < 3; n++ {
		s.Step()
	}
	for i, d := range s.Density() {
		if d != 0 {
			t.Fatalf("density[%d] = %v after stepping an empty box, want 0", i, d)
		}
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if u, v := s.VelocityAt(x, y); u != 0 || v != 0 {
				t.Fatalf("velocity at (%d, %d) = (%v, %v), want zero", x, y, u, v)
			}
		}
	}
}

func TestAddDensityAndVelocity(t *testing.T) {
	s, err := New(10, 10, 0, 0.1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.AddDensity(4, 5, 1.5)
	s.AddDensity(4, 5, 0.5)
	if got := s.DensityAt(4, 5); got != 2 {
		t.Errorf("DensityAt(4, 5) = %v, want 2", got)
	}

	s.AddVelocity(3, 3, 1, -2)
	s.AddVelocity(3, 3, 0.5, -1)
	if u, v := s.VelocityAt(3, 3); u != 1.5 || v != -3 {
		t.Errorf("VelocityAt(3, 3) = (%v, %v), want (1.5, -3)", u, v)
	}

	// Out-of-range deposits are dropped, not wrapped or panicking.
	s.AddDensity(-1, 5, 9)
	s.AddDensity(10, 5, 9)
	s.AddVelocity(5, -1, 9, 9)
	s.AddVelocity(5, 10, 9, 9)
	if got := s.DensityAt(0, 5); got != 0 {
		t.Errorf("DensityAt(0, 5) = %v after out-of-range add, want 0", got)
	}
}

// With dt0 = dt*sqrt(w*h) = 1 and v = -1 everywhere, each interior cell
// samples exactly one row below, so advection is a pure shift.
func TestAdvectShiftsDyeUpward(t *testing.T) {
	s, err := New(10, 10, 0, 0.1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.AddVelocity(x, y, 0, -1)
		}
	}
	s.AddDensity(4, 5, 1)

	prev := append([]float64(nil), s.density...)
	s.advect(s.density, prev, s.u, s.v)

	if got := s.DensityAt(4, 4); got != 1 {
		t.Errorf("DensityAt(4, 4) = %v after upward advection, want 1", got)
	}
	if got := s.DensityAt(4, 5); got != 0 {
		t.Errorf("DensityAt(4, 5) = %v after upward advection, want 0", got)
	}
}

func TestDiffuseSpreadsDye(t *testing.T) {
	s, err := New(11, 11, 0, 0.1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.AddDensity(5, 5, 1)

	prev := append([]float64(nil), s.density...)
	s.diffuse(s.density, prev, 0.05)

	center := s.DensityAt(5, 5)
	if center <= 0 || center >= 1 {
		t.Errorf("center density = %v after diffusion, want in (0, 1)", center)
	}
	for _, n := range [][2]int{{5, 4}, {5, 6}, {4, 5}, {6, 5}} {
		if got := s.DensityAt(n[0], n[1]); got <= 0 {
			t.Errorf("neighbor (%d, %d) density = %v after diffusion, want > 0", n[0], n[1], got)
		}
	}
	// Diffusion averages, so no cell may overshoot the initial maximum.
	for i, d := range s.density {
		if d > 1+1e-9 {
			t.Errorf("density[%d] = %v exceeds initial maximum 1", i, d)
		}
	}
}

func TestProjectLeavesUniformFlowInterior(t *testing.T) {
	s, err := New(10, 10, 0, 0.1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := range s.u {
		s.u[i] = 3
	}
	s.project()

	for i := 1; i < s.Height-1; i++ {
		for j := 1; j < s.Width-1; j++ {
			if got := s.u[s.idx(i, j)]; got != 3 {
				t.Fatalf("u[%d][%d] = %v after projecting divergence-free flow, want 3", i, j, got)
			}
		}
	}
	for j := 0; j < s.Width; j++ {
		if got := s.u[s.idx(0, j)]; got != 0 {
			t.Fatalf("wall cell u[0][%d] = %v, want 0", j, got)
		}
	}
}

func TestProjectReducesDivergence(t *testing.T) {
	s, err := New(12, 12, 0, 0.1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < s.Height; i++ {
		for j := 0; j < s.Width; j++ {
			s.u[s.idx(i, j)] = 0.1 * float64(j)
		}
	}
	before := maxAbsDivergence(s)
	if before == 0 {
		t.Fatal("test field has no divergence to remove")
	}
	s.project()
	after := maxAbsDivergence(s)
	if after >= before {
		t.Errorf("max divergence %v after project, want below %v", after, before)
	}
}

// maxAbsDivergence measures over cells two away from the walls; the no-slip
// zeroing makes the outermost ring jump regardless of the pressure solve.
func maxAbsDivergence(s *Sim) float64 {
	max := 0.0
	for i := 2; i < s.Height-2; i++ {
		for j := 2; j < s.Width-2; j++ {
			d := math.Abs(s.u[s.idx(i, j+1)] - s.u[s.idx(i, j-1)] + s.v[s.idx(i+1, j)] - s.v[s.idx(i-1, j)])
			if d > max {
				max = d
			}
		}
	}
	return max
}

func TestStepKeepsWallsZero(t *testing.T) {
	s, err := New(21, 21, 0.0001, 0.1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.AddDensity(10, 10, 1)
	s.AddVelocity(10, 10, 0, -50)
	s.Step()
	s.Step()

	w, h := s.Width, s.Height
	for j := 0; j < w; j++ {
		if d := s.DensityAt(j, 0); d != 0 {
			t.Fatalf("top wall density at x=%d is %v, want 0", j, d)
		}
		if d := s.DensityAt(j, h-1); d != 0 {
			t.Fatalf("bottom wall density at x=%d is %v, want 0", j, d)
		}
	}
	for i := 0; i < h; i++ {
		if u, v := s.VelocityAt(0, i); u != 0 || v != 0 {
			t.Fatalf("left wall velocity at y=%d is (%v, %v), want zero", i, u, v)
		}
		if u, v := s.VelocityAt(w-1, i); u != 0 || v != 0 {
			t.Fatalf("right wall velocity at y=%d is (%v, %v), want zero", i, u, v)
		}
	}
}

func TestStepDeterministic(t *testing.T) {
	build := func() *Sim {
		s, err := New(15, 15, 0.0001, 0.1)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		s.AddDensity(7, 7, 1)
		s.AddVelocity(7, 7, 2, -3)
		s.Step()
		s.Step()
		return s
	}
	first := build()
	second := build()
	if diff := cmp.Diff(first.Density(), second.Density()); diff != "" {
		t.Errorf("identical runs diverged (-first +second):\n%s", diff)
	}
}
