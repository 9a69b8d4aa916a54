package domain

import "go.trai.ch/zerr"

// CorpusSnapshot is the persisted inventory of the corpus and the sole input to reporting.
// Partition counts always sum to their totals.
type CorpusSnapshot struct {
	DocumentCount       int           `json:"pdf_count"`
	ConfDocumentCount   int           `json:"pdf_count_conf"`
	JrnlDocumentCount   int           `json:"pdf_count_jrnl"`
	ProcessedCount      int           `json:"processed_pdf_count"`
	UnprocessedCount    int           `json:"unprocessed_pdf_count"`
	CitationEntryCount  int           `json:"bib_total_count"`
	ConfCitationEntries int           `json:"bib_conf_count"`
	JrnlCitationEntries int           `json:"bib_jrnl_count"`
	CitationFiles       CitationCache `json:"bib_file_mod_times"`
}

// NewSnapshot returns the zero-value snapshot used when nothing was persisted yet.
func NewSnapshot() CorpusSnapshot {
	return CorpusSnapshot{CitationFiles: NewCitationCache()}
}

// IsZero reports whether the snapshot carries no counts and no cached files.
func (s CorpusSnapshot) IsZero() bool {
	return s.DocumentCount == 0 &&
		s.ConfDocumentCount == 0 &&
		s.JrnlDocumentCount == 0 &&
		s.ProcessedCount == 0 &&
		s.UnprocessedCount == 0 &&
		s.CitationEntryCount == 0 &&
		s.ConfCitationEntries == 0 &&
		s.JrnlCitationEntries == 0 &&
		len(s.CitationFiles) == 0
}

// Documents returns the document count of a partition.
func (s CorpusSnapshot) Documents(p Partition) int {
	switch p {
	case PartitionConf:
		return s.ConfDocumentCount
	case PartitionJrnl:
		return s.JrnlDocumentCount
	default:
		return 0
	}
}

// CitationEntries returns the citation entry count of a partition.
func (s CorpusSnapshot) CitationEntries(p Partition) int {
	switch p {
	case PartitionConf:
		return s.ConfCitationEntries
	case PartitionJrnl:
		return s.JrnlCitationEntries
	default:
		return 0
	}
}

// Validate checks that counts are non-negative and that partition counts sum to totals.
func (s CorpusSnapshot) Validate() error {
	if err := s.CheckCounts(); err != nil {
		return err
	}
	return s.CheckSums()
}

// CheckCounts reports the first negative count.
func (s CorpusSnapshot) CheckCounts() error {
	counts := map[string]int{
		"pdf_count":             s.DocumentCount,
		"pdf_count_conf":        s.ConfDocumentCount,
		"pdf_count_jrnl":        s.JrnlDocumentCount,
		"processed_pdf_count":   s.ProcessedCount,
		"unprocessed_pdf_count": s.UnprocessedCount,
		"bib_total_count":       s.CitationEntryCount,
		"bib_conf_count":        s.ConfCitationEntries,
		"bib_jrnl_count":        s.JrnlCitationEntries,
	}
	for field, n := range counts {
		if n < 0 {
			return zerr.With(zerr.With(ErrNegativeCount, "field", field), "value", n)
		}
	}
	return nil
}

// CheckSums reports whether partition counts sum to their totals.
func (s CorpusSnapshot) CheckSums() error {
	if s.ConfDocumentCount+s.JrnlDocumentCount != s.DocumentCount {
		return zerr.With(ErrSnapshotInconsistent, "field", "pdf_count")
	}
	if s.ConfCitationEntries+s.JrnlCitationEntries != s.CitationEntryCount {
		return zerr.With(ErrSnapshotInconsistent, "field", "bib_total_count")
	}
	return nil
}
