package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/whylabs/sketchbuild/internal/core/ports"
)

const (
	WorkspaceNodeID graft.ID = "adapter.fs.workspace"
	LocatorNodeID   graft.ID = "adapter.fs.locator"
)

func init() {
	graft.Register(graft.Node[ports.Workspace]{
		ID:        WorkspaceNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Workspace, error) {
			return NewWorkspace(), nil
		},
	})

	graft.Register(graft.Node[ports.ArtifactLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ArtifactLocator, error) {
			return NewLocator(), nil
		},
	})
}
