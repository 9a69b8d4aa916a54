// Package reconciler decides whether a freshly computed inventory replaces the persisted snapshot.
package reconciler

import (
	"github.com/Midhun-Kanadan/pdf-status/internal/core/domain"
	"github.com/Midhun-Kanadan/pdf-status/internal/engine/citations"
)

// Reason explains why a snapshot update was triggered.
type Reason string

const (
	// ReasonCacheChanged indicates a citation file was added, removed or modified.
	ReasonCacheChanged Reason = "cache_changed"
	// ReasonDocumentsChanged indicates the total document count moved.
	ReasonDocumentsChanged Reason = "documents_changed"
)

// Decision is the outcome of a reconciliation.
type Decision struct {
	// Update reports whether Snapshot differs from the persisted one and must be saved.
	Update  bool
	Reasons []Reason
	// Snapshot is the snapshot to report: fresh on update, previous otherwise.
	Snapshot domain.CorpusSnapshot
}

// Fresh assembles a snapshot from the document inventory and the per-partition
// citation results. The partition caches are merged into one and the total
// citation entry count is taken from the merged cache.
func Fresh(inv domain.DocumentInventory, results map[domain.Partition]citations.Result) domain.CorpusSnapshot {
	snap := domain.NewSnapshot()
	snap.DocumentCount = inv.Total
	snap.ConfDocumentCount = inv.PerPartition[domain.PartitionConf]
	snap.JrnlDocumentCount = inv.PerPartition[domain.PartitionJrnl]
	snap.ProcessedCount = inv.Processed
	snap.UnprocessedCount = inv.Unprocessed

	for _, p := range domain.Partitions() {
		res := results[p]
		switch p {
		case domain.PartitionConf:
			snap.ConfCitationEntries = res.Total
		case domain.PartitionJrnl:
			snap.JrnlCitationEntries = res.Total
		}
		snap.CitationFiles = snap.CitationFiles.Merge(res.Cache)
	}
	snap.CitationEntryCount = snap.CitationFiles.Total()

	return snap
}

// Reconcile compares fresh against previous.
//
// An update is due when the citation caches differ in path set or in any
// record, or when the total document count changed. Either condition alone
// is sufficient. Without an update previous is returned unchanged.
func Reconcile(previous, fresh domain.CorpusSnapshot) Decision {
	var reasons []Reason
	if !fresh.CitationFiles.Equal(previous.CitationFiles) {
		reasons = append(reasons, ReasonCacheChanged)
	}
	if fresh.DocumentCount != previous.DocumentCount {
		reasons = append(reasons, ReasonDocumentsChanged)
	}

	if len(reasons) == 0 {
		return Decision{Snapshot: previous}
	}
	return Decision{Update: true, Reasons: reasons, Snapshot: fresh}
}
