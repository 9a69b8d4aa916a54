// Package fs provides file system adapters for walking the corpus.
package fs

import (
	"io/fs"
	"iter"
	"path"
)

// Entry is a regular file yielded by the Walker.
type Entry struct {
	// Path is slash separated and relative to the walked file system.
	Path string
	fs.DirEntry
}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all regular files below root in lexical order, skipping .git,
// .jj and any file or directory whose name matches one of the ignore patterns.
// A path that cannot be read is yielded with its error and the walk goes on
// with the rest of the tree.
func (w *Walker) WalkFiles(fsys fs.FS, root string, ignores []string) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		_ = fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				if !yield(Entry{Path: p, DirEntry: d}, err) {
					return fs.SkipAll
				}
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			if skip, action := w.shouldSkip(d, ignores); skip {
				return action
			}

			if !d.Type().IsRegular() {
				return nil
			}

			if !yield(Entry{Path: p, DirEntry: d}, nil) {
				return fs.SkipAll
			}
			return nil
		})
	}
}

// shouldSkip reports whether the entry is excluded from the walk.
// For directories the returned action is fs.SkipDir.
func (w *Walker) shouldSkip(d fs.DirEntry, ignores []string) (bool, error) {
	name := d.Name()

	if d.IsDir() && (name == ".git" || name == ".jj") {
		return true, fs.SkipDir
	}

	for _, ignore := range ignores {
		if matched, _ := path.Match(ignore, name); matched {
			if d.IsDir() {
				return true, fs.SkipDir
			}
			return true, nil
		}
	}

	return false, nil
}
