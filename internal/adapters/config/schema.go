package config

// File represents the structure of the pdfstatus.yaml configuration file.
// Empty values fall back to the defaults.
type File struct {
	CorpusRoot   string        `yaml:"corpus_root"`
	SnapshotPath string        `yaml:"snapshot_path"`
	ReportPath   string        `yaml:"report_path"`
	Extensions   ExtensionsDTO `yaml:"extensions"`
	Markers      MarkersDTO    `yaml:"markers"`
	Ignore       []string      `yaml:"ignore"`
}

// ExtensionsDTO represents the extensions section of the configuration.
type ExtensionsDTO struct {
	Document string `yaml:"document"`
	Artifact string `yaml:"artifact"`
	Citation string `yaml:"citation"`
}

// MarkersDTO represents the markers section of the configuration.
type MarkersDTO struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}
