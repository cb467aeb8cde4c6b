package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sanity/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/sanity/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/sanity/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/sanity/internal/adapters/snapshot"           //nolint:depguard // Wired in app layer
	"go.trai.ch/sanity/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/sanity/internal/core/ports"
	"go.trai.ch/sanity/internal/engine/sanity"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.ResolverNodeID,
			snapshot.NodeID,
			sanity.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.SnapshotResolver](ctx)
			if err != nil {
				return nil, err
			}

			snapshotLoader, err := graft.Dep[ports.SnapshotLoader](ctx)
			if err != nil {
				return nil, err
			}

			checker, err := graft.Dep[*sanity.Checker](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(configLoader, resolver, snapshotLoader, checker, tel, log), nil
		},
	})

	// Components Node
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

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
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

	return NewComponents(a, log, tel), nil
}
