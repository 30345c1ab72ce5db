package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

// fakeRunner implements bootstrap.Runner for command-level testing.
type fakeRunner struct {
	calls   [][]string
	failOn  string // base name of a command that should fail
	lookErr error
}

func (f *fakeRunner) Run(dir, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.failOn != "" && filepath.Base(name) == f.failOn {
		return "", errors.New("exit status 1")
	}
	return "", nil
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.lookErr != nil {
		return "", f.lookErr
	}
	return "/usr/bin/" + name, nil
}

// testEnv creates an env suitable for testing with sensible defaults.
// Returns the env and a buffer capturing stdout.
func testEnv(t *testing.T) (*env, *bytes.Buffer) {
	t.Helper()
	var stdout bytes.Buffer
	return &env{
		stdout: &stdout,
		stdin:  strings.NewReader(""),
		log:    zap.NewNop().Sugar(),
		runner: &fakeRunner{},
	}, &stdout
}
