package domain

// Partition names one of the two tracked subdirectories of the corpus root.
type Partition string

const (
	// PartitionConf holds conference papers.
	PartitionConf Partition = "conf"
	// PartitionJrnl holds journal papers.
	PartitionJrnl Partition = "jrnl"
)

// Partitions returns the tracked partitions in reporting order.
func Partitions() []Partition {
	return []Partition{PartitionConf, PartitionJrnl}
}

// String returns the directory name of the partition.
func (p Partition) String() string {
	return string(p)
}
