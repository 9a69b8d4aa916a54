package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Extensions selects which files count as documents, derived artifacts and citation databases.
type Extensions struct {
	Document string
	Artifact string
	Citation string
}

// Markers delimit the report section inside the report document.
type Markers struct {
	Start string
	End   string
}

// Config is the resolved configuration of a run. Paths are already resolved
// against the configuration file directory.
type Config struct {
	CorpusRoot   string
	SnapshotPath string
	ReportPath   string
	Extensions   Extensions
	Markers      Markers
	// Ignore holds glob patterns matched against file and directory names.
	Ignore []string
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		CorpusRoot:   DefaultCorpusRoot,
		SnapshotPath: SnapshotFileName,
		ReportPath:   ReportFileName,
		Extensions: Extensions{
			Document: DocumentExt,
			Artifact: ArtifactExt,
			Citation: CitationExt,
		},
		Markers: Markers{
			Start: StartMarker,
			End:   EndMarker,
		},
	}
}

// Validate checks paths, extensions and markers.
func (c Config) Validate() error {
	for name, path := range map[string]string{
		"corpus_root":   c.CorpusRoot,
		"snapshot_path": c.SnapshotPath,
		"report_path":   c.ReportPath,
	} {
		if strings.TrimSpace(path) == "" {
			return zerr.With(ErrEmptyPath, "option", name)
		}
	}

	exts := []string{c.Extensions.Document, c.Extensions.Artifact, c.Extensions.Citation}
	for _, ext := range exts {
		if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
			return zerr.With(ErrInvalidExtension, "extension", ext)
		}
	}
	if exts[0] == exts[1] || exts[0] == exts[2] || exts[1] == exts[2] {
		return ErrDuplicateExtension
	}

	start := strings.TrimSpace(c.Markers.Start)
	end := strings.TrimSpace(c.Markers.End)
	if start == "" || end == "" || start == end ||
		strings.Contains(c.Markers.Start, "\n") || strings.Contains(c.Markers.End, "\n") {
		return ErrInvalidMarkers
	}
	return nil
}
