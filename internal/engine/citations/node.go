package citations

import (
	"context"

	"github.com/Midhun-Kanadan/pdf-status/internal/adapters/bibtex" //nolint:depguard // Wired in engine wiring
	"github.com/Midhun-Kanadan/pdf-status/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"github.com/Midhun-Kanadan/pdf-status/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the citation engine Graft node.
const NodeID graft.ID = "engine.citations"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{bibtex.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Engine, error) {
			parser, err := graft.Dep[ports.CitationParser](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(parser, log), nil
		},
	})
}
