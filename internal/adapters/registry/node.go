package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/humotica/kit/internal/adapters/logger"
	"github.com/humotica/kit/internal/adapters/remote"
	"github.com/humotica/kit/internal/core/ports"
)

// NodeID is the unique identifier for the registry Graft node.
const NodeID graft.ID = "adapter.registry"

func init() {
	graft.Register(graft.Node[ports.Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			remote.NodeID,
		},
		Run: func(ctx context.Context) (ports.Registry, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			fetcher, err := graft.Dep[ports.RegistryFetcher](ctx)
			if err != nil {
				return nil, err
			}

			return NewStore("", fetcher, log), nil
		},
	})
}
