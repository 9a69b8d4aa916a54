// Package citations maintains the per-file entry counts of citation databases.
//
// Counts are keyed by the modification time of each file, so a file is only
// parsed again when it changed since the previous run.
package citations

import (
	"fmt"
	"io/fs"

	"github.com/Midhun-Kanadan/pdf-status/internal/core/domain"
	"github.com/Midhun-Kanadan/pdf-status/internal/core/ports"
	"go.trai.ch/zerr"
)

// RefreshOptions controls a single refresh.
type RefreshOptions struct {
	// Force re-parses every file regardless of the cached modification time.
	Force bool
}

// Failure describes a citation file that could not be counted.
type Failure struct {
	Path string
	Err  error
}

// Result is the outcome of a refresh over one set of citation files.
type Result struct {
	// Total is the sum of entry counts over the successfully processed files.
	Total int
	// Cache holds exactly one record per successfully processed file.
	Cache domain.CitationCache
	// Parsed is the number of files that were opened and parsed.
	Parsed int
	// Reused is the number of files whose cached count was carried forward.
	Reused int
	// Failures lists the files skipped because of open or parse errors.
	Failures []Failure
}

// Engine recomputes citation entry totals against a previous cache.
type Engine struct {
	parser ports.CitationParser
	logger ports.Logger
}

// New creates a new Engine.
func New(parser ports.CitationParser, logger ports.Logger) *Engine {
	return &Engine{parser: parser, logger: logger}
}

// Refresh computes the entry total for files.
//
// A file is parsed when it has no record in previous, when its current
// modification time is strictly newer than the recorded one, or when
// opts.Force is set. Otherwise the recorded count is reused. Records for
// files that are no longer present are dropped. previous is not modified.
func (e *Engine) Refresh(
	fsys fs.FS,
	files []domain.CitationFile,
	previous domain.CitationCache,
	opts RefreshOptions,
) Result {
	res := Result{Cache: domain.NewCitationCache()}

	for _, f := range files {
		if rec, ok := previous.Lookup(f.Path); ok && !opts.Force && !rec.StaleAt(f.ModTime) {
			res.Cache[f.Path] = rec
			res.Total += rec.EntryCount
			res.Reused++
			continue
		}

		count, err := e.count(fsys, f.Path)
		if err != nil {
			e.logger.Warn(fmt.Sprintf("skipping %s: %v", f.Path, err))
			res.Failures = append(res.Failures, Failure{Path: f.Path, Err: err})
			continue
		}

		res.Cache[f.Path] = domain.CitationFileRecord{ModTime: f.ModTime, EntryCount: count}
		res.Total += count
		res.Parsed++
	}

	return res
}

func (e *Engine) count(fsys fs.FS, path string) (int, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrCitationOpenFailed.Error()), "path", path)
	}
	defer func() {
		_ = file.Close()
	}()

	count, err := e.parser.CountEntries(file)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrCitationParseFailed.Error()), "path", path)
	}
	if count < 0 {
		return 0, zerr.With(domain.ErrNegativeCount, "path", path)
	}
	return count, nil
}
