// Package splice places a rendered fragment between two marker lines of a document.
package splice

import (
	"strings"

	"github.com/Midhun-Kanadan/pdf-status/internal/core/domain"
)

// Outcome describes how the fragment was placed.
type Outcome int

const (
	// OutcomeCreated means the document did not exist and was created from the fragment.
	OutcomeCreated Outcome = iota
	// OutcomeReplaced means the region between existing markers was replaced.
	OutcomeReplaced
	// OutcomeAppended means no marker pair was found and a delimited region was appended.
	OutcomeAppended
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeReplaced:
		return "replaced"
	case OutcomeAppended:
		return "appended"
	default:
		return "unknown"
	}
}

// Splice returns document with fragment placed between the marker lines.
//
// Marker lines are matched on their trimmed content. The region ends at the
// first end marker preceded by a start marker and begins at the closest start
// marker before it. Content outside the region is preserved byte for byte. Without such a pair
// the delimited fragment is appended after a newline separator.
func Splice(fragment, document string, exists bool, markers domain.Markers) (string, Outcome) {
	block := markers.Start + "\n" + strings.TrimRight(fragment, "\n") + "\n" + markers.End

	if !exists {
		return block + "\n", OutcomeCreated
	}

	lines := strings.SplitAfter(document, "\n")
	start, end := -1, -1
	for i, line := range lines {
		switch strings.TrimSpace(line) {
		case markers.Start:
			start = i
		case markers.End:
			if start >= 0 {
				end = i
			}
		}
		if end >= 0 {
			break
		}
	}

	if start < 0 || end < 0 {
		return document + "\n" + block + "\n", OutcomeAppended
	}

	var b strings.Builder
	for _, line := range lines[:start+1] {
		b.WriteString(line)
	}
	b.WriteString(strings.TrimRight(fragment, "\n"))
	b.WriteString("\n")
	for _, line := range lines[end:] {
		b.WriteString(line)
	}
	return b.String(), OutcomeReplaced
}
