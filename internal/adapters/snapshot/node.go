package snapshot

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sanity/internal/adapters/logger"
	"go.trai.ch/sanity/internal/core/ports"
)

// NodeID is the unique identifier for the snapshot loader Graft node.
const NodeID graft.ID = "adapter.snapshot_loader"

func init() {
	graft.Register(graft.Node[ports.SnapshotLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SnapshotLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
