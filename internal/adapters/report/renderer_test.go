package report_test

import (
	"testing"

	"github.com/Midhun-Kanadan/pdf-status/internal/adapters/report"
	"github.com/Midhun-Kanadan/pdf-status/internal/core/domain"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func TestHTMLRenderer_Render(t *testing.T) {
	snap := domain.CorpusSnapshot{
		DocumentCount:       1204,
		ConfDocumentCount:   800,
		JrnlDocumentCount:   404,
		ProcessedCount:      1100,
		UnprocessedCount:    104,
		CitationEntryCount:  3520,
		ConfCitationEntries: 2000,
		JrnlCitationEntries: 1520,
	}

	out, err := report.NewHTMLRenderer().Render(snap)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "table", []byte(out))
}

func TestHTMLRenderer_Render_ZeroSnapshot(t *testing.T) {
	out, err := report.NewHTMLRenderer().Render(domain.NewSnapshot())
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "table_zero", []byte(out))
}

func TestHTMLRenderer_Render_Deterministic(t *testing.T) {
	r := report.NewHTMLRenderer()
	snap := domain.CorpusSnapshot{DocumentCount: 2, ConfDocumentCount: 2, ProcessedCount: 1, UnprocessedCount: 1}

	first, err := r.Render(snap)
	require.NoError(t, err)
	second, err := r.Render(snap)
	require.NoError(t, err)

	require.Equal(t, first, second)
}
