package ui

import (
	"strings"

	"algolab/internal/fluid"
	"algolab/internal/mandelbrot"
)

// ramp orders glyphs from empty to dense.
const ramp = " .:-=+*#%@"

// DensityGlyph maps a density value to a ramp glyph. Values at or above 1
// render as the densest glyph, values at or below 0 as blank.
func DensityGlyph(v float64) byte {
	if v <= 0 {
		return ramp[0]
	}
	if v >= 1 {
		return ramp[len(ramp)-1]
	}
	return ramp[int(v*float64(len(ramp)))]
}

// EscapeGlyph maps an escape count to a ramp glyph. Interior samples (count
// reached maxIter) render densest, immediate escapes blank.
func EscapeGlyph(n, maxIter int) byte {
	if n >= maxIter {
		return ramp[len(ramp)-1]
	}
	return ramp[n*len(ramp)/maxIter]
}

// MandelbrotASCII renders the grid one glyph per sample, one line per row.
func MandelbrotASCII(g *mandelbrot.Grid) string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			sb.WriteByte(EscapeGlyph(g.At(x, y), g.MaxIter))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FluidFrame renders the density field one glyph per cell, one line per row.
func FluidFrame(s *fluid.Sim) string {
	var sb strings.Builder
	sb.Grow((s.Width + 1) * s.Height)
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			sb.WriteByte(DensityGlyph(s.DensityAt(x, y)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
