package naga

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the graft node that provides the headless device.
const NodeID graft.ID = "adapter.naga"

func init() {
	graft.Register(graft.Node[*Device]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Device, error) {
			return New(), nil
		},
	})
}
