package fs

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/Midhun-Kanadan/pdf-status/internal/core/domain"
	"github.com/Midhun-Kanadan/pdf-status/internal/core/ports"
	"go.trai.ch/zerr"
)

// Scanner collects documents, artifacts and citation files of a partition.
type Scanner struct {
	walker *Walker
	logger ports.Logger
}

// NewScanner creates a new Scanner.
func NewScanner(walker *Walker, logger ports.Logger) *Scanner {
	return &Scanner{walker: walker, logger: logger}
}

// Scan walks the partition directory of fsys. Extensions are matched
// case-sensitively against the end of each file name. Paths that cannot be
// read are skipped with a warning.
func (s *Scanner) Scan(
	fsys fs.FS,
	partition domain.Partition,
	exts domain.Extensions,
	ignore []string,
) (domain.PartitionScan, error) {
	scan := domain.NewPartitionScan(partition)
	root := partition.String()

	if _, err := fs.Stat(fsys, root); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn(fmt.Sprintf("partition directory %q not found, counting it as empty", root))
			return scan, nil
		}
		return scan, zerr.With(zerr.Wrap(err, domain.ErrCorpusScanFailed.Error()), "partition", root)
	}

	for entry, err := range s.walker.WalkFiles(fsys, root, ignore) {
		if err != nil {
			s.logger.Warn(fmt.Sprintf("skipping unreadable path %s: %v", entry.Path, err))
			continue
		}

		name := path.Base(entry.Path)
		switch {
		case strings.HasSuffix(name, exts.Document):
			scan.Documents++
			scan.DocumentBasenames[strings.TrimSuffix(name, exts.Document)] = struct{}{}
		case strings.HasSuffix(name, exts.Artifact):
			scan.ArtifactBasenames[strings.TrimSuffix(name, exts.Artifact)] = struct{}{}
		case strings.HasSuffix(name, exts.Citation):
			info, err := entry.Info()
			if err != nil {
				s.logger.Warn(fmt.Sprintf("skipping citation file %s: %v", entry.Path, err))
				continue
			}
			scan.CitationFiles = append(scan.CitationFiles, domain.CitationFile{
				Path:    entry.Path,
				ModTime: domain.ModTimeOf(info.ModTime()),
			})
		}
	}

	slices.SortFunc(scan.CitationFiles, func(a, b domain.CitationFile) int {
		return strings.Compare(a.Path, b.Path)
	})
	return scan, nil
}
