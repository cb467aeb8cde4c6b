package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sanity/internal/adapters/config"
	"go.trai.ch/sanity/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the snapshot walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// ResolverNodeID is the unique identifier for the snapshot resolver Graft node.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
)

// SnapshotExtensions are the file extensions picked up when walking a directory.
var SnapshotExtensions = []string{".yaml", ".yml"}

func init() {
	// Walker Node (Concrete implementation needed by Resolver)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(SnapshotExtensions...), nil
		},
	})

	// Resolver Node
	graft.Register(graft.Node[ports.SnapshotResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.SnapshotResolver, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(walker, config.DefaultFilename), nil
		},
	})
}
