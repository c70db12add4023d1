package distwatch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tether/internal/adapters/logger"
	"go.trai.ch/tether/internal/core/ports"
)

// NodeID is the unique identifier for the dist observer Graft node.
const NodeID graft.ID = "adapter.distwatch"

func init() {
	graft.Register(graft.Node[*Observer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Observer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewObserver(log), nil
		},
	})
}
