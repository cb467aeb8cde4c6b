package hierarchy

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sanity/internal/core/ports"
)

// NodeID is the unique identifier for the reader hierarchy Graft node.
const NodeID graft.ID = "adapter.hierarchy"

func init() {
	graft.Register(graft.Node[ports.ReaderHierarchy]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ReaderHierarchy, error) {
			return NewStructural(), nil
		},
	})
}
