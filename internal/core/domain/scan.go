package domain

// CitationFile is a citation database discovered during a scan.
type CitationFile struct {
	// Path is relative to the corpus root and slash separated.
	Path    string
	ModTime ModTime
}

// PartitionScan holds the raw facts collected by walking one partition.
type PartitionScan struct {
	Partition Partition
	// Documents is the number of files carrying the document extension.
	Documents int
	// DocumentBasenames and ArtifactBasenames hold file names with the extension stripped.
	DocumentBasenames map[string]struct{}
	ArtifactBasenames map[string]struct{}
	// CitationFiles is sorted by path.
	CitationFiles []CitationFile
}

// NewPartitionScan returns an empty scan for the partition.
func NewPartitionScan(p Partition) PartitionScan {
	return PartitionScan{
		Partition:         p,
		DocumentBasenames: make(map[string]struct{}),
		ArtifactBasenames: make(map[string]struct{}),
	}
}

// DocumentInventory summarizes documents and their derived artifacts across partitions.
type DocumentInventory struct {
	Total        int
	PerPartition map[Partition]int
	// Processed counts document basenames that have an artifact with the same basename.
	Processed int
	// Unprocessed counts document basenames without such an artifact.
	Unprocessed int
}
