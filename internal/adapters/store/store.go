// Package store persists the corpus snapshot as a JSON document.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Midhun-Kanadan/pdf-status/internal/core/domain"
	"github.com/Midhun-Kanadan/pdf-status/internal/core/ports"
	"go.trai.ch/zerr"
)

const indent = "    "

// Store implements ports.SnapshotStore using a flat JSON file.
type Store struct {
	logger ports.Logger
}

// NewStore creates a new Store.
func NewStore(logger ports.Logger) *Store {
	return &Store{logger: logger}
}

// Load reads the snapshot at path. A missing or empty file yields the zero-value snapshot.
// A snapshot whose partition counts do not sum to their totals, as written by
// tools that counted documents outside the partitions, is stale: its counts
// are dropped with a warning and only its citation cache is kept.
func (s *Store) Load(path string) (domain.CorpusSnapshot, error) {
	//nolint:gosec // Path is provided by trusted configuration
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewSnapshot(), nil
		}
		return domain.CorpusSnapshot{}, zerr.With(zerr.Wrap(err, domain.ErrSnapshotReadFailed.Error()), "path", path)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return domain.NewSnapshot(), nil
	}

	var snap domain.CorpusSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.CorpusSnapshot{}, zerr.With(zerr.Wrap(err, domain.ErrSnapshotDecodeFailed.Error()), "path", path)
	}
	if snap.CitationFiles == nil {
		snap.CitationFiles = domain.NewCitationCache()
	}

	if err := snap.CheckCounts(); err != nil {
		return domain.CorpusSnapshot{}, zerr.With(err, "path", path)
	}
	if err := snap.CheckSums(); err != nil {
		s.logger.Warn(fmt.Sprintf("snapshot at %s is inconsistent, ignoring its counts: %v", path, err))
		stale := domain.NewSnapshot()
		stale.CitationFiles = snap.CitationFiles
		return stale, nil
	}
	return snap, nil
}

// Save replaces the snapshot at path. The document is written to a temporary
// file in the same directory and renamed over the target, so readers see
// either the previous or the new snapshot. Snapshots that fail validation are
// not written.
func (s *Store) Save(path string, snapshot domain.CorpusSnapshot) error {
	if err := snapshot.Validate(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSnapshotSaveFailed.Error()), "path", path)
	}

	data, err := Encode(snapshot)
	if err != nil {
		return err
	}

	path = filepath.Clean(path)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSnapshotSaveFailed.Error()), "path", dir)
	}

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSnapshotSaveFailed.Error()), "path", path)
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, err := os.Stat(tmpName); err == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrSnapshotSaveFailed.Error()), "path", tmpName)
	}

	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrSnapshotSaveFailed.Error()), "path", tmpName)
	}

	if err := tmpFile.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSnapshotSaveFailed.Error()), "path", tmpName)
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSnapshotSaveFailed.Error()), "path", tmpName)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSnapshotSaveFailed.Error()), "path", path)
	}

	return nil
}

// Encode renders the snapshot in its persisted form: four-space indentation,
// sorted cache keys and a trailing newline.
func Encode(snapshot domain.CorpusSnapshot) ([]byte, error) {
	if snapshot.CitationFiles == nil {
		snapshot.CitationFiles = domain.NewCitationCache()
	}

	data, err := json.MarshalIndent(snapshot, "", indent)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrSnapshotEncodeFailed.Error())
	}
	return append(data, '\n'), nil
}
