package gateway

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/humotica/kit/internal/adapters/advisory"
	"github.com/humotica/kit/internal/core/ports"
)

// NodeID is the unique identifier for the gateway Graft node.
const NodeID graft.ID = "engine.gateway"

func init() {
	graft.Register(graft.Node[*Gateway]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			advisory.NodeID,
		},
		Run: func(ctx context.Context) (*Gateway, error) {
			client, err := graft.Dep[ports.AdvisoryClient](ctx)
			if err != nil {
				return nil, err
			}
			return New(client), nil
		},
	})
}
