package domain

import (
	"maps"
	"slices"
)

// CitationFileRecord is the cached entry count of one citation file.
// EntryCount is only valid as of ModTime.
type CitationFileRecord struct {
	ModTime    ModTime `json:"mod_time"`
	EntryCount int     `json:"entry_count"`
}

// StaleAt reports whether the record must be recomputed for a file whose
// current modification time is current. Equal timestamps are not stale.
func (r CitationFileRecord) StaleAt(current ModTime) bool {
	return current > r.ModTime
}

// CitationCache maps a citation file path, relative to the corpus root and
// slash separated, to its cached record.
type CitationCache map[string]CitationFileRecord

// NewCitationCache returns an empty cache.
func NewCitationCache() CitationCache {
	return make(CitationCache)
}

// Clone returns a copy of the cache. The copy of a nil cache is empty, not nil.
func (c CitationCache) Clone() CitationCache {
	out := make(CitationCache, len(c))
	maps.Copy(out, c)
	return out
}

// Lookup returns the record stored for path.
func (c CitationCache) Lookup(path string) (CitationFileRecord, bool) {
	rec, ok := c[path]
	return rec, ok
}

// Equal reports whether both caches hold the same paths with identical records.
// A nil cache equals an empty one.
func (c CitationCache) Equal(other CitationCache) bool {
	return maps.Equal(c, other)
}

// Merge returns a new cache with the records of c and others. Later caches win
// on duplicate paths.
func (c CitationCache) Merge(others ...CitationCache) CitationCache {
	out := c.Clone()
	for _, other := range others {
		maps.Copy(out, other)
	}
	return out
}

// Total returns the sum of the cached entry counts.
func (c CitationCache) Total() int {
	total := 0
	for _, rec := range c {
		total += rec.EntryCount
	}
	return total
}

// Paths returns the cached paths in sorted order.
func (c CitationCache) Paths() []string {
	return slices.Sorted(maps.Keys(c))
}
