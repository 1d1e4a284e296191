// Package shell provides the subprocess runner adapter.
package shell

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/whylabs/sketchbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.Runner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// Run executes the command and blocks until it exits.
//
// When cmd.Env is nil the parent environment is inherited unchanged. The
// executable is resolved against the PATH of the environment the child will
// actually see, not the parent's.
func (r *Runner) Run(ctx context.Context, cmd ports.Command) error {
	if len(cmd.Argv) == 0 {
		return zerr.New("empty command")
	}

	name := cmd.Argv[0]
	args := cmd.Argv[1:]

	env := cmd.Env
	if env == nil {
		env = os.Environ()
	}

	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, env); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, args...) //nolint:gosec // argv is assembled by the caller

	// exec.CommandContext sets Args[0] to the resolved executable path.
	// Preserve the name as invoked.
	if len(c.Args) > 0 {
		c.Args[0] = name
	}

	c.Dir = cmd.Dir
	c.Env = env

	stdout, stderr := r.streams(ctx, cmd)
	c.Stdout = stdout
	c.Stderr = stderr

	if err := c.Run(); err != nil {
		var exitCode int
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1 // Unknown or signal
		}
		return zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
	}

	return nil
}

// streams selects the writers the child streams into: explicit writers win,
// then the vertex attached to the context, then line-by-line logging.
func (r *Runner) streams(ctx context.Context, cmd ports.Command) (io.Writer, io.Writer) {
	if cmd.Stdout != nil || cmd.Stderr != nil {
		stdout := cmd.Stdout
		if stdout == nil {
			stdout = io.Discard
		}
		stderr := cmd.Stderr
		if stderr == nil {
			stderr = io.Discard
		}
		return stdout, stderr
	}

	if vtx, ok := ports.VertexFromContext(ctx); ok {
		return vtx.Stdout(), vtx.Stderr()
	}

	return &logWriter{logger: r.logger, level: "info"},
		&logWriter{logger: r.logger, level: "error"}
}

// logWriter forwards child output to the logger one line at a time.
type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	msg := string(p)

	lines := strings.Split(strings.TrimSuffix(msg, "\n"), "\n")
	for _, line := range lines {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}

// lookPath searches for an executable in the directories named by the PATH
// entry of the given environment.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
