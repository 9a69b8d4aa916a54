package domain

const (
	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "pdfstatus.yaml"

	// SnapshotFileName is the default name of the persisted snapshot.
	SnapshotFileName = "dataset_count_reference.json"

	// ReportFileName is the default name of the document the report is spliced into.
	ReportFileName = "README.md"

	// DefaultCorpusRoot is the default directory holding the partitions.
	DefaultCorpusRoot = "."

	// DocumentExt is the default extension of source documents.
	DocumentExt = ".pdf"

	// ArtifactExt is the default extension of derived artifacts.
	ArtifactExt = ".json"

	// CitationExt is the default extension of citation databases.
	CitationExt = ".bib"

	// StartMarker opens the report section of the report document.
	StartMarker = "<!--- START COUNT TABLE --->"

	// EndMarker closes the report section of the report document.
	EndMarker = "<!--- END COUNT TABLE --->"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
