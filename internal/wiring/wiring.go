// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/Midhun-Kanadan/pdf-status/internal/adapters/bibtex"
	_ "github.com/Midhun-Kanadan/pdf-status/internal/adapters/config"
	_ "github.com/Midhun-Kanadan/pdf-status/internal/adapters/document"
	_ "github.com/Midhun-Kanadan/pdf-status/internal/adapters/fs"
	_ "github.com/Midhun-Kanadan/pdf-status/internal/adapters/logger"
	_ "github.com/Midhun-Kanadan/pdf-status/internal/adapters/report"
	_ "github.com/Midhun-Kanadan/pdf-status/internal/adapters/store"
	// Register app and engine nodes.
	_ "github.com/Midhun-Kanadan/pdf-status/internal/app"
	_ "github.com/Midhun-Kanadan/pdf-status/internal/engine/citations"
)
