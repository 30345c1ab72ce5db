package bootstrap

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// configName is the per-project config file, kept at the project root.
const configName = "algolab.json"

// Config declares a project's build environment: which interpreter to use,
// where the virtualenv lives, what to install, which variables to export and
// which config files to copy into place.
type Config struct {
	Python       string            `json:"python"`
	VenvDir      string            `json:"venv_dir"`
	Requirements string            `json:"requirements"`
	Env          map[string]string `json:"env"`
	CopyFiles    []CopySpec        `json:"copy_files"`
}

// CopySpec is one config file to copy, both paths relative to the project
// root unless absolute.
type CopySpec struct {
	Src string `json:"src"`
	Dst string `json:"dst"`
}

// envOverrides are process-environment knobs that win over the config file.
type envOverrides struct {
	Python  string `env:"ALGOLAB_PYTHON"`
	VenvDir string `env:"ALGOLAB_VENV"`
}

// DefaultConfig is what a project without algolab.json gets.
func DefaultConfig() Config {
	return Config{
		Python:       "python3",
		VenvDir:      ".venv",
		Requirements: "requirements.txt",
	}
}

// LoadConfig reads algolab.json from the project directory. A missing file
// yields the defaults; a malformed one is an error. ALGOLAB_PYTHON and
// ALGOLAB_VENV override the corresponding fields afterwards.
func LoadConfig(projectDir string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(filepath.Join(projectDir, configName))
	if err == nil {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", configName, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read %s: %w", configName, err)
	}

	var ov envOverrides
	if err := env.Parse(&ov); err != nil {
		return Config{}, fmt.Errorf("parse environment overrides: %w", err)
	}
	if ov.Python != "" {
		cfg.Python = ov.Python
	}
	if ov.VenvDir != "" {
		cfg.VenvDir = ov.VenvDir
	}

	if strings.TrimSpace(cfg.Python) == "" {
		return Config{}, fmt.Errorf("%s: python interpreter not set", configName)
	}
	if strings.TrimSpace(cfg.VenvDir) == "" {
		return Config{}, fmt.Errorf("%s: venv_dir not set", configName)
	}
	return cfg, nil
}

// VenvPath resolves the venv directory against the project root.
func (c Config) VenvPath(projectDir string) string {
	return resolve(projectDir, c.VenvDir)
}

// resolve joins a possibly-relative path onto the project root.
func resolve(projectDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(projectDir, path)
}
