// Package inventory aggregates partition scans into document counts.
package inventory

import "github.com/Midhun-Kanadan/pdf-status/internal/core/domain"

// Compute sums the document counts of scans and matches documents to artifacts.
//
// A document is processed when an artifact with the same basename exists in
// any scanned partition. Basenames are compared as sets, so a basename that
// occurs in several partitions is counted once towards processed or unprocessed.
func Compute(scans ...domain.PartitionScan) domain.DocumentInventory {
	inv := domain.DocumentInventory{
		PerPartition: make(map[domain.Partition]int, len(scans)),
	}

	documents := make(map[string]struct{})
	artifacts := make(map[string]struct{})

	for _, scan := range scans {
		inv.Total += scan.Documents
		inv.PerPartition[scan.Partition] += scan.Documents

		for name := range scan.DocumentBasenames {
			documents[name] = struct{}{}
		}
		for name := range scan.ArtifactBasenames {
			artifacts[name] = struct{}{}
		}
	}

	for name := range documents {
		if _, ok := artifacts[name]; ok {
			inv.Processed++
		} else {
			inv.Unprocessed++
		}
	}

	return inv
}
