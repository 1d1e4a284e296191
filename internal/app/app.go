// Package app implements the application layer for sketchbuild.
package app

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/whylabs/sketchbuild/internal/core/domain"
	"github.com/whylabs/sketchbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	toolchain    ports.Toolchain
	interpreter  ports.InterpreterResolver
	builder      ports.ExtensionBuilder
	workspace    ports.Workspace
	locator      ports.ArtifactLocator
	logger       ports.Logger
	telemetry    ports.Telemetry
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	toolchain ports.Toolchain,
	interpreter ports.InterpreterResolver,
	builder ports.ExtensionBuilder,
	workspace ports.Workspace,
	locator ports.ArtifactLocator,
	log ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		toolchain:    toolchain,
		interpreter:  interpreter,
		builder:      builder,
		workspace:    workspace,
		locator:      locator,
		logger:       log,
		telemetry:    telemetry,
	}
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	// ConfigPath is the manifest location.
	ConfigPath string
	// Targets restricts the build to the named extensions. Empty builds all.
	Targets []string
	// Debug selects the Debug configuration instead of Release.
	Debug bool
	// InstallRoot overrides the manifest's install root when non-empty.
	InstallRoot string
	// Interpreter overrides the manifest's python executable when non-empty.
	Interpreter string
}

// Build compiles the selected extensions in declaration order. The first
// failing target aborts the run; a partially built package is not usable.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	// 1. Load the manifest
	manifest, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load manifest")
	}

	// 2. Select targets
	targets, err := manifest.SelectTargets(opts.Targets)
	if err != nil {
		return err
	}

	names := make([]string, len(targets))
	for i, target := range targets {
		names[i] = target.Name
	}

	// 3. Resolve prerequisites. The toolchain probe and the interpreter
	// introspection are independent; both must succeed before the first
	// configure.
	pythonPath := manifest.Interpreter
	if opts.Interpreter != "" {
		pythonPath = opts.Interpreter
	}

	var interp domain.Interpreter

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		probeCtx, vtx := a.telemetry.Record(gctx, "probe toolchain", ports.WithInternal())
		probeErr := a.toolchain.Probe(probeCtx, names)
		vtx.Complete(probeErr)
		return probeErr
	})
	g.Go(func() error {
		var resolveErr error
		interp, resolveErr = a.interpreter.Resolve(gctx, pythonPath)
		return resolveErr
	})
	if err := g.Wait(); err != nil {
		return err
	}

	// 4. Build each target in declaration order.
	installRoot := manifest.Build.InstallRoot
	if opts.InstallRoot != "" {
		installRoot, err = filepath.Abs(opts.InstallRoot)
		if err != nil {
			return zerr.Wrap(err, "failed to resolve install root")
		}
	}

	platform := domain.HostPlatform()
	mode := domain.ModeFor(opts.Debug)

	for _, target := range targets {
		req, err := buildRequest(manifest, target, platform, mode, installRoot, interp)
		if err != nil {
			return err
		}
		if err := a.builder.Build(ctx, req); err != nil {
			return err
		}
	}

	return nil
}

// buildRequest derives the per-target request from the manifest defaults and
// the resolved prerequisites.
func buildRequest(
	m *domain.Manifest,
	target domain.ExtensionTarget,
	platform domain.Platform,
	mode domain.BuildMode,
	installRoot string,
	interp domain.Interpreter,
) (*domain.BuildRequest, error) {
	outputDir, err := target.OutputDir(installRoot)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve output directory"), "target", target.Name)
	}

	return &domain.BuildRequest{
		Target:      target,
		Platform:    platform,
		Mode:        mode,
		OutputDir:   outputDir,
		ScratchDir:  filepath.Join(m.Build.ScratchDir, domain.ScratchDirName(target, platform, mode)),
		Interpreter: interp,
		Version:     m.Package.Version,
		CXXStandard: m.Build.CXXStandard,
	}, nil
}

// ProbeOptions configuration for the Probe method.
type ProbeOptions struct {
	// ConfigPath is the manifest location.
	ConfigPath string
}

// Probe verifies the toolchain can build the manifest's extensions.
func (a *App) Probe(ctx context.Context, opts ProbeOptions) error {
	manifest, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load manifest")
	}

	if err := a.toolchain.Probe(ctx, manifest.TargetNames()); err != nil {
		return err
	}

	a.logger.Info("cmake toolchain is available")
	return nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// ConfigPath is the manifest location.
	ConfigPath string
	// Artifacts also removes built extension modules from their output
	// directories.
	Artifacts bool
}

// Clean removes the scratch tree and, with Artifacts, the built extension
// modules. Output directories are left in place; with an undotted target
// name the output directory is the install root itself.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	manifest, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load manifest")
	}

	var errs error

	a.logger.Info("removing scratch directory " + manifest.Build.ScratchDir)
	if err := a.workspace.RemoveDir(manifest.Build.ScratchDir); err != nil {
		errs = errors.Join(errs, zerr.Wrap(err, "failed to remove scratch directory"))
	}

	if !opts.Artifacts {
		return errs
	}

	for _, target := range manifest.Extensions {
		outputDir, err := target.OutputDir(manifest.Build.InstallRoot)
		if err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to resolve output directory"), "target", target.Name))
			continue
		}

		// A locate miss means there is nothing to remove.
		artifact, err := a.locator.Locate(outputDir, target.Stem(), "")
		if err != nil {
			continue
		}

		a.logger.Info("removing " + artifact)
		if err := a.workspace.RemoveFile(artifact); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to remove artifact"), "target", target.Name))
		}
	}

	return errs
}
