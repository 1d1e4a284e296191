// Package python locates the interpreter an extension is compiled against
// and introspects its build-relevant properties.
package python

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/whylabs/sketchbuild/internal/core/domain"
	"github.com/whylabs/sketchbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// introspectProgram prints the include directory, the "major.minor" version
// and the EXT_SUFFIX of the interpreter, one per line.
const introspectProgram = `import sys, sysconfig; print(sysconfig.get_path("include")); print("%d.%d" % sys.version_info[:2]); print(sysconfig.get_config_var("EXT_SUFFIX") or "")`

// Resolver implements ports.InterpreterResolver by querying the interpreter
// itself.
type Resolver struct {
	runner ports.Runner
	logger ports.Logger
}

// NewResolver creates an interpreter resolver.
func NewResolver(runner ports.Runner, logger ports.Logger) *Resolver {
	return &Resolver{runner: runner, logger: logger}
}

// Resolve selects the interpreter and fills in its properties. An explicit
// path is carried through exactly as given so the interpreter identity is
// preserved into the cmake cache entries. When the introspection query
// fails, the include directory is derived from the executable path instead
// and the version and suffix stay empty.
func (r *Resolver) Resolve(ctx context.Context, explicit string) (domain.Interpreter, error) {
	exe, err := selectExecutable(explicit)
	if err != nil {
		return domain.Interpreter{}, err
	}

	interp := domain.Interpreter{Executable: exe}
	if err := r.introspect(ctx, &interp); err != nil {
		interp.IncludeDir = filepath.Dir(exe)
		interp.Version = ""
		interp.ExtSuffix = ""
		r.logger.Warn("python introspection failed, guessing include dir " + interp.IncludeDir)
	}

	return interp, nil
}

func selectExecutable(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	for _, name := range []string{"python3", "python"} {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	return "", domain.ErrInterpreterNotFound
}

func (r *Resolver) introspect(ctx context.Context, interp *domain.Interpreter) error {
	var out bytes.Buffer
	cmd := ports.Command{
		Argv:   []string{interp.Executable, "-c", introspectProgram},
		Stdout: &out,
		Stderr: io.Discard,
	}
	if err := r.runner.Run(ctx, cmd); err != nil {
		return err
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) < 3 {
		return zerr.With(zerr.New("unexpected introspection output"), "output", out.String())
	}

	interp.IncludeDir = strings.TrimSpace(lines[0])
	interp.Version = strings.TrimSpace(lines[1])
	interp.ExtSuffix = strings.TrimSpace(lines[2])

	if interp.IncludeDir == "" {
		return zerr.New("introspection reported no include directory")
	}

	return nil
}
