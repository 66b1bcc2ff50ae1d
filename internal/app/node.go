package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/humotica/kit/internal/adapters/advisory" //nolint:depguard // Wired in app layer
	"github.com/humotica/kit/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"github.com/humotica/kit/internal/adapters/registry" //nolint:depguard // Wired in app layer
	"github.com/humotica/kit/internal/adapters/remote"   //nolint:depguard // Wired in app layer
	"github.com/humotica/kit/internal/adapters/shell"    //nolint:depguard // Wired in app layer
	"github.com/humotica/kit/internal/core/ports"
	"github.com/humotica/kit/internal/engine/gateway"
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
			registry.NodeID,
			gateway.NodeID,
			shell.NodeID,
			advisory.NodeID,
			remote.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: application, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	reg, err := graft.Dep[ports.Registry](ctx)
	if err != nil {
		return nil, err
	}

	gw, err := graft.Dep[*gateway.Gateway](ctx)
	if err != nil {
		return nil, err
	}

	installer, err := graft.Dep[ports.Installer](ctx)
	if err != nil {
		return nil, err
	}

	client, err := graft.Dep[ports.AdvisoryClient](ctx)
	if err != nil {
		return nil, err
	}

	fetcher, err := graft.Dep[ports.RegistryFetcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(reg, gw, installer, client, fetcher, log), nil
}
