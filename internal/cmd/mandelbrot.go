package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"algolab/internal/mandelbrot"
	"algolab/internal/ui"
)

var (
	mandelWidth  int
	mandelHeight int
	mandelIters  int
	mandelOut    string
)

var mandelbrotCmd = &cobra.Command{
	Use:   "mandelbrot",
	Short: "Render the Mandelbrot set",
	Long:  "Samples the escape-iteration grid over re [-2,1], im [-1.5,1.5] and renders ASCII to stdout, or a grayscale PNG with --out.",
	RunE:  runMandelbrot,
}

func init() {
	mandelbrotCmd.Flags().IntVar(&mandelWidth, "width", 0, "grid width (default 80 for ASCII, 800 for PNG)")
	mandelbrotCmd.Flags().IntVar(&mandelHeight, "height", 0, "grid height (default 40 for ASCII, 800 for PNG)")
	mandelbrotCmd.Flags().IntVar(&mandelIters, "iters", 100, "iteration budget per sample")
	mandelbrotCmd.Flags().StringVar(&mandelOut, "out", "", "write a PNG to this path instead of ASCII")
	rootCmd.AddCommand(mandelbrotCmd)
}

func runMandelbrot(cmd *cobra.Command, args []string) error {
	return newEnv().doMandelbrot(mandelWidth, mandelHeight, mandelIters, mandelOut)
}

func (e *env) doMandelbrot(width, height, iters int, out string) error {
	if width <= 0 {
		width = 80
		if out != "" {
			width = 800
		}
	}
	if height <= 0 {
		height = 40
		if out != "" {
			height = 800
		}
	}

	g, err := mandelbrot.Render(mandelbrot.DefaultView(width, height, iters))
	if err != nil {
		return err
	}

	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		if err := mandelbrot.EncodePNG(f, g); err != nil {
			f.Close()
			return fmt.Errorf("encode png: %w", err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		e.log.Infow("wrote image", "path", out, "width", width, "height", height)
		return nil
	}

	fmt.Fprint(e.stdout, ui.MandelbrotASCII(g))
	return nil
}
