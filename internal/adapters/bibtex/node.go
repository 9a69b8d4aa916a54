package bibtex

import (
	"context"

	"github.com/Midhun-Kanadan/pdf-status/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the citation parser Graft node.
const NodeID graft.ID = "adapter.bibtex"

func init() {
	graft.Register(graft.Node[ports.CitationParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CitationParser, error) {
			return NewParser(), nil
		},
	})
}
