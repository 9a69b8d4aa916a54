// Package summary prints the corpus counts to the terminal.
package summary

import (
	"fmt"
	"strings"

	"github.com/Midhun-Kanadan/pdf-status/internal/core/domain"
	"github.com/Midhun-Kanadan/pdf-status/internal/ui/style"
	"github.com/muesli/termenv"
)

// Headlines distinguishing a saved update from a cached result.
const (
	HeadlineUpdated   = "Counts updated:"
	HeadlineUnchanged = "No updates detected. Using cached counts:"
)

// Write prints the counts of snapshot preceded by a headline stating whether
// the snapshot was updated during this run.
func Write(out *termenv.Output, updated bool, snapshot domain.CorpusSnapshot) error {
	headline := out.String(HeadlineUnchanged).Foreground(termenv.RGBColor(string(style.Slate)))
	if updated {
		headline = out.String(HeadlineUpdated).Foreground(termenv.RGBColor(string(style.Green))).Bold()
	}

	var b strings.Builder
	b.WriteString(headline.String() + "\n")
	fmt.Fprintf(&b, "Total number of PDFs: %d\n", snapshot.DocumentCount)
	for _, p := range domain.Partitions() {
		fmt.Fprintf(&b, "  Number of PDFs in '%s': %d\n", p, snapshot.Documents(p))
	}
	fmt.Fprintf(&b, "  Processed PDFs: %d\n", snapshot.ProcessedCount)
	fmt.Fprintf(&b, "  Unprocessed PDFs: %d\n", snapshot.UnprocessedCount)
	fmt.Fprintf(&b, "Total number of .bib entries: %d\n", snapshot.CitationEntryCount)
	for _, p := range domain.Partitions() {
		fmt.Fprintf(&b, "  Number of entries in '%s': %d\n", p, snapshot.CitationEntries(p))
	}

	_, err := out.WriteString(b.String())
	return err
}
