package mandelbrot

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		c    complex128
		want int
	}{
		{"origin_never_escapes", complex(0, 0), 100},
		{"minus_two_on_boundary", complex(-2, 0), 100},
		{"minus_one_period_two", complex(-1, 0), 100},
		{"i_cycles_inside", complex(0, 1), 100},
		{"one_escapes_third_step", complex(1, 0), 3},
		{"two_escapes_second_step", complex(2, 0), 2},
		{"three_escapes_immediately", complex(3, 0), 1},
		{"two_i_escapes_second_step", complex(0, 2), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Escape(tt.c, 100)
			if got != tt.want {
				t.Errorf("Escape(%v, 100) = %d, want %d", tt.c, got, tt.want)
			}
		})
	}
}

func TestEscapeHonorsIterationCap(t *testing.T) {
	// c=1 escapes on the third step, so a budget of 2 reports interior.
	if got := Escape(complex(1, 0), 2); got != 2 {
		t.Errorf("Escape(1, 2) = %d, want 2", got)
	}
}

func TestRender(t *testing.T) {
	// A 2x2 sample of the default frame lands on c values whose counts are
	// known: -2-1.5i and -0.5-1.5i escape fast, -2 and -0.5 are interior.
	g, err := Render(View{
		Width: 2, Height: 2,
		ReMin: -2, ReMax: 1,
		ImMin: -1.5, ImMax: 1.5,
		MaxIter: 30,
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := []int{
		1, 2,
		30, 30,
	}
	if diff := cmp.Diff(want, g.Counts); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}
	if got := g.At(1, 1); got != 30 {
		t.Errorf("At(1, 1) = %d, want 30", got)
	}
}

func TestRenderRejectsBadViews(t *testing.T) {
	tests := []struct {
		name string
		v    View
	}{
		{"zero_width", View{Height: 10, MaxIter: 10}},
		{"negative_height", View{Width: 10, Height: -1, MaxIter: 10}},
		{"zero_iterations", View{Width: 10, Height: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Render(tt.v); err == nil {
				t.Errorf("Render(%+v) succeeded, want error", tt.v)
			}
		})
	}
}

func TestDefaultView(t *testing.T) {
	v := DefaultView(800, 600, 100)
	want := View{Width: 800, Height: 600, ReMin: -2, ReMax: 1, ImMin: -1.5, ImMax: 1.5, MaxIter: 100}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("DefaultView mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodePNG(t *testing.T) {
	g, err := Render(DefaultView(8, 8, 20))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	var buf bytes.Buffer
	if err := EncodePNG(&buf, g); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode rendered png: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 8 || bounds.Dy() != 8 {
		t.Errorf("decoded size = %dx%d, want 8x8", bounds.Dx(), bounds.Dy())
	}
}
