package ports

import (
	"io/fs"

	"github.com/Midhun-Kanadan/pdf-status/internal/core/domain"
)

// CorpusScanner walks one partition of the corpus.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type CorpusScanner interface {
	// Scan walks the partition directory inside fsys and returns its document counts,
	// basenames and discovered citation files.
	// A partition directory that does not exist yields an empty scan.
	Scan(fsys fs.FS, partition domain.Partition, exts domain.Extensions, ignore []string) (domain.PartitionScan, error)
}
