// Package cmake drives the external cmake toolchain: probing that it is
// installed, deriving per-build argument lists and running the configure and
// build phases for each extension.
package cmake

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/whylabs/sketchbuild/internal/core/domain"
	"github.com/whylabs/sketchbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder implements ports.ExtensionBuilder. Each build runs the two cmake
// phases in order inside the request's scratch directory; a configure failure
// means the build phase is never attempted.
type Builder struct {
	runner    ports.Runner
	workspace ports.Workspace
	locator   ports.ArtifactLocator
	logger    ports.Logger
	telemetry ports.Telemetry
}

// NewBuilder creates an extension builder.
func NewBuilder(
	runner ports.Runner,
	workspace ports.Workspace,
	locator ports.ArtifactLocator,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Builder {
	return &Builder{
		runner:    runner,
		workspace: workspace,
		locator:   locator,
		logger:    logger,
		telemetry: telemetry,
	}
}

// Build configures and compiles one extension. Both phases run with the
// scratch directory as working directory and a derived environment whose
// CXXFLAGS carry the package version. After a successful build the produced
// module must be present under the request's output directory.
func (b *Builder) Build(ctx context.Context, req *domain.BuildRequest) error {
	if err := b.workspace.EnsureDir(req.ScratchDir); err != nil {
		return err
	}
	if err := b.workspace.EnsureDir(req.OutputDir); err != nil {
		return err
	}

	env := domain.BuildEnv(os.Environ(), req.Version)

	if err := b.runPhase(ctx, "configure", req, ConfigureArgs(req), env, domain.ErrConfigureFailed); err != nil {
		return err
	}
	if err := b.runPhase(ctx, "build", req, BuildArgs(req), env, domain.ErrBuildFailed); err != nil {
		return err
	}

	artifact, err := b.locator.Locate(req.OutputDir, req.Target.Stem(), req.Interpreter.ExtSuffix)
	if err != nil {
		missingErr := zerr.With(domain.ErrBuildFailed, "target", req.Target.Name)
		return zerr.With(missingErr, "cause", err.Error())
	}
	b.logger.Info("built " + artifact)

	return nil
}

// runPhase records one vertex for the phase and blocks on the tool. The
// child's streams go both to the process streams and into the vertex.
func (b *Builder) runPhase(
	ctx context.Context,
	phase string,
	req *domain.BuildRequest,
	argv []string,
	env []string,
	sentinel error,
) error {
	ctx, vtx := b.telemetry.Record(ctx, phase+" "+req.Target.Name)

	err := b.runner.Run(ctx, ports.Command{
		Argv:   argv,
		Dir:    req.ScratchDir,
		Env:    env,
		Stdout: io.MultiWriter(os.Stdout, vtx.Stdout()),
		Stderr: io.MultiWriter(os.Stderr, vtx.Stderr()),
	})
	vtx.Complete(err)

	if err != nil {
		phaseErr := zerr.With(sentinel, "target", req.Target.Name)
		phaseErr = zerr.With(phaseErr, "argv", strings.Join(argv, " "))
		return zerr.With(phaseErr, "cause", err.Error())
	}

	return nil
}
