package rgbe

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hdrview/internal/core/ports"
)

// NodeID is the graft node that provides the image decoder.
const NodeID graft.ID = "adapter.rgbe"

func init() {
	graft.Register(graft.Node[ports.ImageDecoder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ImageDecoder, error) {
			return New(), nil
		},
	})
}
