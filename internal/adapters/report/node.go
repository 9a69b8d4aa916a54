package report

import (
	"context"

	"github.com/Midhun-Kanadan/pdf-status/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the report renderer Graft node.
const NodeID graft.ID = "adapter.report"

func init() {
	graft.Register(graft.Node[ports.ReportRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ReportRenderer, error) {
			return NewHTMLRenderer(), nil
		},
	})
}
