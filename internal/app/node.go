package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/whylabs/sketchbuild/internal/adapters/cmake"
	"github.com/whylabs/sketchbuild/internal/adapters/config"
	"github.com/whylabs/sketchbuild/internal/adapters/fs"
	"github.com/whylabs/sketchbuild/internal/adapters/logger"
	"github.com/whylabs/sketchbuild/internal/adapters/python"
	"github.com/whylabs/sketchbuild/internal/adapters/telemetry/progrock"
	"github.com/whylabs/sketchbuild/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			cmake.ProberNodeID,
			python.NodeID,
			cmake.BuilderNodeID,
			fs.WorkspaceNodeID,
			fs.LocatorNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	toolchain, err := graft.Dep[ports.Toolchain](ctx)
	if err != nil {
		return nil, err
	}

	interpreter, err := graft.Dep[ports.InterpreterResolver](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[ports.ExtensionBuilder](ctx)
	if err != nil {
		return nil, err
	}

	workspace, err := graft.Dep[ports.Workspace](ctx)
	if err != nil {
		return nil, err
	}

	locator, err := graft.Dep[ports.ArtifactLocator](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, toolchain, interpreter, builder, workspace, locator, log, telemetry), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}
