package app

import (
	"context"

	"github.com/Midhun-Kanadan/pdf-status/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"github.com/Midhun-Kanadan/pdf-status/internal/adapters/document" //nolint:depguard // Wired in app layer
	"github.com/Midhun-Kanadan/pdf-status/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"github.com/Midhun-Kanadan/pdf-status/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"github.com/Midhun-Kanadan/pdf-status/internal/adapters/report"   //nolint:depguard // Wired in app layer
	"github.com/Midhun-Kanadan/pdf-status/internal/adapters/store"    //nolint:depguard // Wired in app layer
	"github.com/Midhun-Kanadan/pdf-status/internal/core/ports"
	"github.com/Midhun-Kanadan/pdf-status/internal/engine/citations"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.ScannerNodeID,
			citations.NodeID,
			store.NodeID,
			report.NodeID,
			document.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			scanner, err := graft.Dep[ports.CorpusScanner](ctx)
			if err != nil {
				return nil, err
			}

			engine, err := graft.Dep[*citations.Engine](ctx)
			if err != nil {
				return nil, err
			}

			snapshots, err := graft.Dep[ports.SnapshotStore](ctx)
			if err != nil {
				return nil, err
			}

			renderer, err := graft.Dep[ports.ReportRenderer](ctx)
			if err != nil {
				return nil, err
			}

			documents, err := graft.Dep[ports.DocumentStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, scanner, engine, snapshots, renderer, documents, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}
