package python

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/whylabs/sketchbuild/internal/adapters/logger"
	"github.com/whylabs/sketchbuild/internal/adapters/shell"
	"github.com/whylabs/sketchbuild/internal/core/ports"
)

const NodeID graft.ID = "adapter.python"

func init() {
	graft.Register(graft.Node[ports.InterpreterResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.InterpreterResolver, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(runner, log), nil
		},
	})
}
