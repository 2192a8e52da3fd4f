package procstatus

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gimmisn/internal/core/ports"
)

// NodeID is the unique identifier for the memory probe Graft node.
const NodeID graft.ID = "adapter.procstatus"

func init() {
	graft.Register(graft.Node[ports.MemoryProbe]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MemoryProbe, error) {
			return New(), nil
		},
	})
}
