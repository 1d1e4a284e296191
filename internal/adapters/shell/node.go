package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/whylabs/sketchbuild/internal/adapters/logger"
	"github.com/whylabs/sketchbuild/internal/core/ports"
)

const NodeID graft.ID = "adapter.runner"

func init() {
	graft.Register(graft.Node[ports.Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Runner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})
}
