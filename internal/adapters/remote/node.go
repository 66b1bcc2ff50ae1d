package remote

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/humotica/kit/internal/core/ports"
)

// NodeID is the unique identifier for the registry fetcher Graft node.
const NodeID graft.ID = "adapter.remote"

func init() {
	graft.Register(graft.Node[ports.RegistryFetcher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RegistryFetcher, error) {
			return NewFetcher(), nil
		},
	})
}
