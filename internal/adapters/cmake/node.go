package cmake

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/whylabs/sketchbuild/internal/adapters/fs"
	"github.com/whylabs/sketchbuild/internal/adapters/logger"
	"github.com/whylabs/sketchbuild/internal/adapters/shell"
	"github.com/whylabs/sketchbuild/internal/adapters/telemetry/progrock"
	"github.com/whylabs/sketchbuild/internal/core/ports"
)

const (
	ProberNodeID  graft.ID = "adapter.cmake.prober"
	BuilderNodeID graft.ID = "adapter.cmake.builder"
)

func init() {
	graft.Register(graft.Node[ports.Toolchain]{
		ID:        ProberNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Toolchain, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewProber(runner), nil
		},
	})

	graft.Register(graft.Node[ports.ExtensionBuilder]{
		ID:        BuilderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.WorkspaceNodeID,
			fs.LocatorNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (ports.ExtensionBuilder, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
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
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(runner, workspace, locator, log, tel), nil
		},
	})
}
