package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"algolab/internal/bootstrap"
	"algolab/internal/lock"
)

var (
	setupProject  string
	setupDryRun   bool
	setupPrintEnv bool
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Prepare the project Python environment",
	Long:  "Creates the virtualenv, installs requirements when their hash changed, copies declared config files, and can print export lines for shell eval.",
	RunE:  runSetup,
}

func init() {
	setupCmd.Flags().StringVar(&setupProject, "project", ".", "project directory")
	setupCmd.Flags().BoolVar(&setupDryRun, "dry-run", false, "print the step plan without executing")
	setupCmd.Flags().BoolVar(&setupPrintEnv, "print-env", false, "print export lines for eval instead of the step table")
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	project, err := filepath.Abs(setupProject)
	if err != nil {
		return err
	}

	if !setupDryRun {
		lk := lock.New(project)
		if err := lk.Acquire(lock.DefaultTimeout); err != nil {
			return fmt.Errorf("acquiring lock: %w", err)
		}
		defer lk.Release()
	}

	return newEnv().doSetup(project, setupDryRun, setupPrintEnv)
}

func (e *env) doSetup(project string, dryRun, printEnv bool) error {
	cfg, err := bootstrap.LoadConfig(project)
	if err != nil {
		return err
	}

	d := &bootstrap.Deps{
		Runner:  e.runner,
		Log:     e.log,
		NoCache: e.noCache,
		DryRun:  dryRun,
	}
	res, err := bootstrap.Run(d, project, cfg)
	if err != nil {
		return err
	}

	if printEnv {
		return bootstrap.WriteExports(e.stdout, project, cfg)
	}

	if e.jsonOut {
		enc := json.NewEncoder(e.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	w := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tACTION\tREASON")
	for _, st := range res.Steps {
		reason := st.Reason
		if reason == "" {
			reason = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", st.Name, st.Action, reason)
	}
	return w.Flush()
}
