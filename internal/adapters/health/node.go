package health

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gimmisn/internal/core/ports"
)

// NodeID is the unique identifier for the health unit Graft node.
const NodeID graft.ID = "adapter.health"

func init() {
	graft.Register(graft.Node[ports.Unit]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Unit, error) {
			return New(), nil
		},
	})
}
