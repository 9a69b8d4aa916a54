package fs_test

import (
	iofs "io/fs"
	"path"
	"testing/fstest"
)

// faultyFS fails ReadDir for unreadable directories and Info for vanished files.
type faultyFS struct {
	fstest.MapFS
	unreadable map[string]bool
	vanished   map[string]bool
}

func (f faultyFS) ReadDir(name string) ([]iofs.DirEntry, error) {
	if f.unreadable[name] {
		return nil, &iofs.PathError{Op: "readdir", Path: name, Err: iofs.ErrPermission}
	}

	entries, err := f.MapFS.ReadDir(name)
	if err != nil {
		return nil, err
	}
	for i, e := range entries {
		if f.vanished[path.Join(name, e.Name())] {
			entries[i] = vanishedEntry{e}
		}
	}
	return entries, nil
}

type vanishedEntry struct {
	iofs.DirEntry
}

func (vanishedEntry) Info() (iofs.FileInfo, error) {
	return nil, iofs.ErrNotExist
}
