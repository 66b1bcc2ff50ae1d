package advisory

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/humotica/kit/internal/adapters/settings"
	"github.com/humotica/kit/internal/core/ports"
)

// NodeID is the unique identifier for the advisory client Graft node.
const NodeID graft.ID = "adapter.advisory"

func init() {
	graft.Register(graft.Node[ports.AdvisoryClient]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			settings.NodeID,
		},
		Run: func(ctx context.Context) (ports.AdvisoryClient, error) {
			store, err := graft.Dep[ports.SettingsStore](ctx)
			if err != nil {
				return nil, err
			}

			env, err := settings.LoadEnv()
			if err != nil {
				return nil, err
			}

			return New(settings.ResolveAdvisoryURL("", env, store)), nil
		},
	})
}
