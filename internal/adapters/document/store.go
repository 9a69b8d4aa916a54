// Package document reads and atomically rewrites the report document.
package document

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Midhun-Kanadan/pdf-status/internal/core/domain"
	"github.com/cespare/xxhash/v2"
	"github.com/natefinch/atomic"
	"go.trai.ch/zerr"
)

// Store implements ports.DocumentStore on the local file system.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Read returns the document at path and whether it exists.
func (s *Store) Read(path string) (string, bool, error) {
	//nolint:gosec // Path is provided by trusted configuration
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "path", path)
	}
	return string(data), true, nil
}

// Write replaces the document at path with content.
// The write is skipped when the current file already has the same fingerprint.
func (s *Store) Write(path, content string) (bool, error) {
	path = filepath.Clean(path)

	current, exists, err := fileFingerprint(path)
	if err != nil {
		return false, err
	}
	if exists && current == Fingerprint(content) {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrDocumentWriteFailed.Error()), "path", path)
	}

	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrDocumentWriteFailed.Error()), "path", path)
	}

	// atomic.WriteFile keeps the mode of an existing file but not for new ones.
	if !exists {
		if err := os.Chmod(path, domain.FilePerm); err != nil {
			return false, zerr.With(zerr.Wrap(err, domain.ErrDocumentWriteFailed.Error()), "path", path)
		}
	}

	return true, nil
}

// Fingerprint computes the XXHash of the content.
func Fingerprint(content string) uint64 {
	return xxhash.Sum64String(content)
}

// fileFingerprint computes the XXHash of a file's content.
func fileFingerprint(path string) (uint64, bool, error) {
	f, err := os.Open(path) //nolint:gosec // Path is provided by trusted configuration
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, false, nil
		}
		return 0, false, zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, false, zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "path", path)
	}
	return hasher.Sum64(), true, nil
}
