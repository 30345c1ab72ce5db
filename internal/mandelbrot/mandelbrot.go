package mandelbrot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math/cmplx"
)

// View describes the rendered rectangle of the complex plane and the
// iteration budget per sample.
type View struct {
	Width   int
	Height  int
	ReMin   float64
	ReMax   float64
	ImMin   float64
	ImMax   float64
	MaxIter int
}

// DefaultView frames the whole set: re in [-2, 1], im in [-1.5, 1.5].
func DefaultView(width, height, maxIter int) View {
	return View{
		Width:   width,
		Height:  height,
		ReMin:   -2,
		ReMax:   1,
		ImMin:   -1.5,
		ImMax:   1.5,
		MaxIter: maxIter,
	}
}

// Grid holds per-pixel escape counts, row-major. A count equal to MaxIter
// means the sample never escaped and is treated as interior.
type Grid struct {
	Width   int
	Height  int
	MaxIter int
	Counts  []int
}

// At returns the escape count at pixel (x, y).
func (g *Grid) At(x, y int) int {
	return g.Counts[y*g.Width+x]
}

// Escape returns how many iterations z = z*z + c takes to leave |z| <= 2,
// starting from z = 0, capped at maxIter.
func Escape(c complex128, maxIter int) int {
	z := complex(0, 0)
	n := 0
	for cmplx.Abs(z) <= 2 && n < maxIter {
		z = z*z + c
		n++
	}
	return n
}

// Render samples the view one point per pixel. Pixel (x, y) maps to
// c = reMin + x/width*(reMax-reMin) + i*(imMin + y/height*(imMax-imMin)).
func Render(v View) (*Grid, error) {
	if v.Width <= 0 || v.Height <= 0 {
		return nil, fmt.Errorf("view size %dx%d not positive", v.Width, v.Height)
	}
	if v.MaxIter <= 0 {
		return nil, fmt.Errorf("max iterations %d not positive", v.MaxIter)
	}
	g := &Grid{
		Width:   v.Width,
		Height:  v.Height,
		MaxIter: v.MaxIter,
		Counts:  make([]int, v.Width*v.Height),
	}
	for y := 0; y < v.Height; y++ {
		im := v.ImMin + float64(y)/float64(v.Height)*(v.ImMax-v.ImMin)
		for x := 0; x < v.Width; x++ {
			re := v.ReMin + float64(x)/float64(v.Width)*(v.ReMax-v.ReMin)
			g.Counts[y*v.Width+x] = Escape(complex(re, im), v.MaxIter)
		}
	}
	return g, nil
}

// EncodePNG writes the grid as a grayscale image: late escapes render bright,
// interior samples black.
func EncodePNG(w io.Writer, g *Grid) error {
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			n := g.At(x, y)
			var level uint8
			if n < g.MaxIter {
				level = uint8(255 * n / g.MaxIter)
			}
			img.SetGray(x, y, color.Gray{Y: level})
		}
	}
	return png.Encode(w, img)
}
