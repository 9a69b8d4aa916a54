// Package report renders the corpus snapshot as an HTML table of badges.
package report

import (
	_ "embed"
	"html/template"
	"strings"

	"github.com/Midhun-Kanadan/pdf-status/internal/core/domain"
	"go.trai.ch/zerr"
)

//go:embed table.html.tmpl
var tableSource string

var tableTemplate = template.Must(template.New("table").Parse(tableSource))

// row is one line of the badge table.
type row struct {
	// Label is a fixed caption and may contain quotes that must stay literal.
	Label  template.HTML
	Nested bool
	Badge  string
	Count  int
	Color  string
	Alt    string
}

// HTMLRenderer implements ports.ReportRenderer.
type HTMLRenderer struct{}

// NewHTMLRenderer creates a new HTMLRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Render returns the badge table for the snapshot. The output depends only on the snapshot.
func (r *HTMLRenderer) Render(snapshot domain.CorpusSnapshot) (string, error) {
	var b strings.Builder
	if err := tableTemplate.Execute(&b, rows(snapshot)); err != nil {
		return "", zerr.Wrap(err, domain.ErrReportRenderFailed.Error())
	}
	return b.String(), nil
}

func rows(s domain.CorpusSnapshot) []row {
	return []row{
		{Label: "Total PDFs", Badge: "Total_PDFs", Count: s.DocumentCount, Color: "blue", Alt: "Total PDFs"},
		{Label: "PDFs in 'conf'", Nested: true, Badge: "Conf_PDFs", Count: s.ConfDocumentCount, Color: "blue", Alt: "Conf PDFs"},
		{Label: "PDFs in 'jrnl'", Nested: true, Badge: "Jrnl_PDFs", Count: s.JrnlDocumentCount, Color: "blue", Alt: "Jrnl PDFs"},
		{Label: "Processed PDFs", Nested: true, Badge: "Processed_PDFs", Count: s.ProcessedCount, Color: "green", Alt: "Processed PDFs"},
		{Label: "Unprocessed PDFs", Nested: true, Badge: "Unprocessed_PDFs", Count: s.UnprocessedCount, Color: "red", Alt: "Unprocessed PDFs"},
		{Label: "Total .bib Entries", Badge: "Total_Bib", Count: s.CitationEntryCount, Color: "orange", Alt: "Total Bib"},
		{Label: ".bib Entries in 'conf'", Nested: true, Badge: "Conf_Bib", Count: s.ConfCitationEntries, Color: "orange", Alt: "Conf Bib"},
		{Label: ".bib Entries in 'jrnl'", Nested: true, Badge: "Jrnl_Bib", Count: s.JrnlCitationEntries, Color: "orange", Alt: "Jrnl Bib"},
	}
}
