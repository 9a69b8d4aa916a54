package ports

import "github.com/Midhun-Kanadan/pdf-status/internal/core/domain"

// SnapshotStore defines the interface for persisting the corpus snapshot.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SnapshotStore interface {
	// Load reads the snapshot at path.
	// Returns the zero-value snapshot and a nil error if the file does not exist.
	Load(path string) (domain.CorpusSnapshot, error)

	// Save replaces the snapshot at path atomically.
	Save(path string, snapshot domain.CorpusSnapshot) error
}
