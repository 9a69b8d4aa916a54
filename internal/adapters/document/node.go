package document

import (
	"context"

	"github.com/Midhun-Kanadan/pdf-status/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the document store Graft node.
const NodeID graft.ID = "adapter.document"

func init() {
	graft.Register(graft.Node[ports.DocumentStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DocumentStore, error) {
			return NewStore(), nil
		},
	})
}
