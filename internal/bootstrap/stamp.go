package bootstrap

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// stampName is the install receipt kept inside the venv, so recreating the
// venv naturally drops it.
const stampName = ".algolab-stamp.json"

// Stamp records the last successful requirements install.
type Stamp struct {
	RequirementsMD5 string    `json:"requirements_md5"`
	InstalledAt     time.Time `json:"installed_at"`
	RunID           string    `json:"run_id"`
}

// ReadStamp loads the receipt from the venv dir. Returns nil if missing or
// unreadable.
func ReadStamp(venvDir string) *Stamp {
	data, err := os.ReadFile(filepath.Join(venvDir, stampName))
	if err != nil {
		return nil
	}
	var s Stamp
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	return &s
}

// WriteStamp records a fresh install receipt.
func WriteStamp(venvDir string, s Stamp) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(venvDir, stampName), raw, 0644)
}

// ClearStamp drops the receipt, forcing the next install.
func ClearStamp(venvDir string) {
	os.Remove(filepath.Join(venvDir, stampName))
}

// HashFile returns the md5 hex digest of a file's contents.
func HashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", md5.Sum(data)), nil
}
