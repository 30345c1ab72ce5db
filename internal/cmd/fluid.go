package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"algolab/internal/fluid"
	"algolab/internal/ui"
)

var (
	fluidScenePath string
	fluidSteps     int
)

var fluidCmd = &cobra.Command{
	Use:   "fluid",
	Short: "Run the toy incompressible flow solver",
	Long:  "Steps the 2D solver over a scene. Interactive terminals get a live animation; otherwise the final density frame is printed.",
	RunE:  runFluid,
}

func init() {
	fluidCmd.Flags().StringVar(&fluidScenePath, "scene", "", "YAML scene file (default the built-in demo)")
	fluidCmd.Flags().IntVar(&fluidSteps, "steps", 0, "frame count override")
	rootCmd.AddCommand(fluidCmd)
}

func runFluid(cmd *cobra.Command, args []string) error {
	return newEnv().doFluid(fluidScenePath, fluidSteps)
}

func (e *env) doFluid(scenePath string, steps int) error {
	sc := fluid.DefaultScene()
	if scenePath != "" {
		var err error
		sc, err = fluid.LoadScene(scenePath)
		if err != nil {
			return err
		}
	}
	if steps > 0 {
		sc.Frames = steps
	}

	if e.tty {
		return ui.RunFluid(sc, ui.DefaultStyles())
	}

	sim, err := sc.Build()
	if err != nil {
		return err
	}
	for frame := 0; frame < sc.Frames; frame++ {
		sc.Inject(sim, frame)
		sim.Step()
	}
	e.log.Debugw("scene complete", "frames", sc.Frames)
	fmt.Fprint(e.stdout, ui.FluidFrame(sim))
	return nil
}
