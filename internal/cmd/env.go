package cmd

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"algolab/internal/bootstrap"
)

// env bundles dependencies for command execution.
// Production commands use newEnv(); tests construct directly with mocks.
type env struct {
	stdout  io.Writer
	stdin   io.Reader
	log     *zap.SugaredLogger
	runner  bootstrap.Runner
	tty     bool
	jsonOut bool
	noCache bool
}

func newEnv() *env {
	return &env{
		stdout:  os.Stdout,
		stdin:   os.Stdin,
		log:     logger.Sugar(),
		runner:  bootstrap.NewExecRunner(),
		tty:     isatty.IsTerminal(os.Stdout.Fd()),
		jsonOut: jsonOut,
		noCache: noCache,
	}
}
