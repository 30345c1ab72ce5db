package bootstrap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StepResult reports one setup step.
type StepResult struct {
	Name   string `json:"name"`
	Action string `json:"action"` // "created", "installed", "copied", "skipped", "planned"
	Reason string `json:"reason,omitempty"`
}

// Result is the outcome of one setup run.
type Result struct {
	RunID string       `json:"run_id"`
	Steps []StepResult `json:"steps"`
}

// Deps bundles the dependencies for a setup run.
type Deps struct {
	Runner  Runner
	Log     *zap.SugaredLogger
	NoCache bool
	DryRun  bool
}

// Run performs the setup steps for the project: ensure the virtualenv exists,
// install requirements unless the recorded hash still matches, copy declared
// config files into place. With DryRun set it only reports what it would do.
func Run(d *Deps, projectDir string, cfg Config) (*Result, error) {
	res := &Result{RunID: uuid.NewString()}
	venv := cfg.VenvPath(projectDir)

	step, err := ensureVenv(d, projectDir, cfg, venv)
	if err != nil {
		return nil, err
	}
	res.Steps = append(res.Steps, step)

	step, err = installRequirements(d, projectDir, cfg, venv, res.RunID)
	if err != nil {
		return nil, err
	}
	res.Steps = append(res.Steps, step)

	for _, cp := range cfg.CopyFiles {
		step, err := copyFile(d, projectDir, cp)
		if err != nil {
			return nil, err
		}
		res.Steps = append(res.Steps, step)
	}
	return res, nil
}

func ensureVenv(d *Deps, projectDir string, cfg Config, venv string) (StepResult, error) {
	if _, err := os.Stat(filepath.Join(venv, "bin", "python")); err == nil {
		return StepResult{Name: "venv", Action: "skipped", Reason: "exists"}, nil
	}
	if d.DryRun {
		return StepResult{Name: "venv", Action: "planned", Reason: "create with " + cfg.Python}, nil
	}
	if _, err := d.Runner.LookPath(cfg.Python); err != nil {
		return StepResult{}, fmt.Errorf("interpreter %q not found: %w", cfg.Python, err)
	}
	if _, err := d.Runner.Run(projectDir, cfg.Python, "-m", "venv", venv); err != nil {
		return StepResult{}, fmt.Errorf("creating virtualenv: %w", err)
	}
	d.Log.Infow("created virtualenv", "path", venv)
	return StepResult{Name: "venv", Action: "created"}, nil
}

func installRequirements(d *Deps, projectDir string, cfg Config, venv, runID string) (StepResult, error) {
	step := StepResult{Name: "install"}
	if cfg.Requirements == "" {
		step.Action, step.Reason = "skipped", "no requirements declared"
		return step, nil
	}
	req := resolve(projectDir, cfg.Requirements)
	if _, err := os.Stat(req); os.IsNotExist(err) {
		step.Action, step.Reason = "skipped", "no requirements file"
		return step, nil
	}
	hash, err := HashFile(req)
	if err != nil {
		return StepResult{}, fmt.Errorf("hashing %s: %w", req, err)
	}
	if !d.NoCache {
		if st := ReadStamp(venv); st != nil && st.RequirementsMD5 == hash {
			step.Action, step.Reason = "skipped", "requirements unchanged"
			return step, nil
		}
	}
	if d.DryRun {
		step.Action, step.Reason = "planned", "pip install -r " + cfg.Requirements
		return step, nil
	}
	pip := filepath.Join(venv, "bin", "pip")
	if _, err := d.Runner.Run(projectDir, pip, "install", "-r", req); err != nil {
		return StepResult{}, fmt.Errorf("installing requirements: %w", err)
	}
	if err := WriteStamp(venv, Stamp{RequirementsMD5: hash, InstalledAt: time.Now(), RunID: runID}); err != nil {
		d.Log.Warnw("could not record install stamp", "error", err)
	}
	d.Log.Infow("installed requirements", "file", req)
	step.Action = "installed"
	return step, nil
}

func copyFile(d *Deps, projectDir string, cp CopySpec) (StepResult, error) {
	step := StepResult{Name: "copy " + cp.Dst}
	src := resolve(projectDir, cp.Src)
	dst := resolve(projectDir, cp.Dst)

	srcInfo, err := os.Stat(src)
	if err != nil {
		return StepResult{}, fmt.Errorf("copy source %s: %w", cp.Src, err)
	}
	if dstInfo, err := os.Stat(dst); err == nil && dstInfo.Size() == srcInfo.Size() {
		step.Action, step.Reason = "skipped", "up to date"
		return step, nil
	}
	if d.DryRun {
		step.Action, step.Reason = "planned", "copy from " + cp.Src
		return step, nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return StepResult{}, fmt.Errorf("read %s: %w", cp.Src, err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return StepResult{}, fmt.Errorf("create %s: %w", filepath.Dir(dst), err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return StepResult{}, fmt.Errorf("write %s: %w", cp.Dst, err)
	}
	d.Log.Infow("copied config file", "src", cp.Src, "dst", cp.Dst)
	step.Action = "copied"
	return step, nil
}

// WriteExports prints eval-able export lines: the venv activation variables
// first, then the declared env map in sorted order.
func WriteExports(w io.Writer, projectDir string, cfg Config) error {
	venv, err := filepath.Abs(cfg.VenvPath(projectDir))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "export VIRTUAL_ENV=%q\n", venv)
	fmt.Fprintf(w, "export PATH=\"%s:$PATH\"\n", filepath.Join(venv, "bin"))
	keys := make([]string, 0, len(cfg.Env))
	for k := range cfg.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "export %s=%q\n", k, cfg.Env[k])
	}
	return nil
}
