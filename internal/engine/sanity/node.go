package sanity

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sanity/internal/adapters/hierarchy"
	"go.trai.ch/sanity/internal/adapters/logger"
	"go.trai.ch/sanity/internal/adapters/sizer"
	"go.trai.ch/sanity/internal/core/ports"
)

// NodeID is the unique identifier for the sanity checker Graft node.
const NodeID graft.ID = "engine.sanity"

func init() {
	graft.Register(graft.Node[*Checker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			hierarchy.NodeID,
			sizer.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Checker, error) {
			h, err := graft.Dep[ports.ReaderHierarchy](ctx)
			if err != nil {
				return nil, err
			}

			estimator, err := graft.Dep[ports.SizeEstimator](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewChecker(h, estimator, log), nil
		},
	})
}
