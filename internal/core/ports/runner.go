// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"
)

// Command is a single external tool invocation.
//
// Env is the complete child environment; when nil the parent environment is
// inherited unchanged. Stdout and Stderr receive the raw child streams; when
// nil the runner falls back to the vertex attached to the context, then to
// line-by-line logging.
type Command struct {
	Argv   []string
	Dir    string
	Env    []string
	Stdout io.Writer
	Stderr io.Writer
}

// Runner executes external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes the command and blocks until it exits. A non-zero exit
	// status is returned as an error carrying the exit code.
	Run(ctx context.Context, cmd Command) error
}
