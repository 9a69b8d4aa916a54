package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"testing"
	"testing/fstest"
	"time"

	fsadapter "github.com/Midhun-Kanadan/pdf-status/internal/adapters/fs"
	"github.com/Midhun-Kanadan/pdf-status/internal/app"
	"github.com/Midhun-Kanadan/pdf-status/internal/core/domain"
	"github.com/Midhun-Kanadan/pdf-status/internal/core/ports/mocks"
	"github.com/Midhun-Kanadan/pdf-status/internal/engine/citations"
	"github.com/Midhun-Kanadan/pdf-status/internal/engine/reconciler"
	"github.com/Midhun-Kanadan/pdf-status/internal/engine/splice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

var mtime = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

type fixture struct {
	loader    *mocks.MockConfigLoader
	store     *mocks.MockSnapshotStore
	renderer  *mocks.MockReportRenderer
	documents *mocks.MockDocumentStore
	parser    *mocks.MockCitationParser
	logger    *mocks.MockLogger
	stdout    *bytes.Buffer
	app       *app.App
	cfg       domain.Config
}

func newFixture(t *testing.T, corpus fstest.MapFS) *fixture {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	f := &fixture{
		loader:    mocks.NewMockConfigLoader(ctrl),
		store:     mocks.NewMockSnapshotStore(ctrl),
		renderer:  mocks.NewMockReportRenderer(ctrl),
		documents: mocks.NewMockDocumentStore(ctrl),
		parser:    mocks.NewMockCitationParser(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		stdout:    &bytes.Buffer{},
		cfg:       domain.DefaultConfig(),
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	f.app = app.New(
		f.loader,
		fsadapter.NewScanner(fsadapter.NewWalker(), f.logger),
		citations.New(f.parser, f.logger),
		f.store,
		f.renderer,
		f.documents,
		f.logger,
	).WithCorpusFS(func(string) fs.FS { return corpus }).WithOutput(f.stdout)

	f.loader.EXPECT().Load("pdfstatus.yaml").Return(f.cfg, nil).AnyTimes()
	return f
}

func corpus() fstest.MapFS {
	return fstest.MapFS{
		"conf/a.pdf":    {},
		"conf/a.json":   {},
		"conf/b.pdf":    {},
		"conf/refs.bib": {Data: []byte("@misc{a,}"), ModTime: mtime},
		"jrnl/c.pdf":    {},
		"jrnl/c.json":   {},
		"jrnl/j.bib":    {Data: []byte("@misc{b,}"), ModTime: mtime},
	}
}

func countedSnapshot() domain.CorpusSnapshot {
	return domain.CorpusSnapshot{
		DocumentCount:       3,
		ConfDocumentCount:   2,
		JrnlDocumentCount:   1,
		ProcessedCount:      2,
		UnprocessedCount:    1,
		CitationEntryCount:  6,
		ConfCitationEntries: 4,
		JrnlCitationEntries: 2,
		CitationFiles: domain.CitationCache{
			"conf/refs.bib": {ModTime: domain.ModTimeOf(mtime), EntryCount: 4},
			"jrnl/j.bib":    {ModTime: domain.ModTimeOf(mtime), EntryCount: 2},
		},
	}
}

func TestApp_Count_FirstRunSavesSnapshot(t *testing.T) {
	f := newFixture(t, corpus())

	f.store.EXPECT().Load(f.cfg.SnapshotPath).Return(domain.NewSnapshot(), nil)
	gomock.InOrder(
		f.parser.EXPECT().CountEntries(gomock.Any()).Return(4, nil),
		f.parser.EXPECT().CountEntries(gomock.Any()).Return(2, nil),
	)
	f.store.EXPECT().Save(f.cfg.SnapshotPath, countedSnapshot()).Return(nil)

	res, err := f.app.Count(context.Background(), app.CountOptions{ConfigPath: "pdfstatus.yaml"})
	require.NoError(t, err)

	assert.True(t, res.Updated)
	assert.Equal(t, []reconciler.Reason{reconciler.ReasonCacheChanged, reconciler.ReasonDocumentsChanged}, res.Reasons)
	assert.Equal(t, countedSnapshot(), res.Snapshot)
	assert.Equal(t, 2, res.Parsed)
	assert.Contains(t, f.stdout.String(), "Counts updated:\nTotal number of PDFs: 3\n")
	assert.Contains(t, f.stdout.String(), "Total number of .bib entries: 6\n")
}

func TestApp_Count_NoChangesSkipsSave(t *testing.T) {
	f := newFixture(t, corpus())

	f.store.EXPECT().Load(f.cfg.SnapshotPath).Return(countedSnapshot(), nil)
	// No parser or Save expectations: unchanged files are not parsed, nothing is written.

	res, err := f.app.Count(context.Background(), app.CountOptions{ConfigPath: "pdfstatus.yaml"})
	require.NoError(t, err)

	assert.False(t, res.Updated)
	assert.Equal(t, 2, res.Reused)
	assert.Equal(t, countedSnapshot(), res.Snapshot)
	assert.Contains(t, f.stdout.String(), "No updates detected. Using cached counts:\n")
}

func TestApp_Count_DocumentAddedWithUnchangedCitations(t *testing.T) {
	c := corpus()
	c["jrnl/new.pdf"] = &fstest.MapFile{}
	f := newFixture(t, c)

	f.store.EXPECT().Load(f.cfg.SnapshotPath).Return(countedSnapshot(), nil)
	f.store.EXPECT().Save(f.cfg.SnapshotPath, gomock.Any()).DoAndReturn(
		func(_ string, snap domain.CorpusSnapshot) error {
			assert.Equal(t, 4, snap.DocumentCount)
			assert.Equal(t, 2, snap.JrnlDocumentCount)
			assert.Equal(t, 2, snap.UnprocessedCount)
			assert.True(t, snap.CitationFiles.Equal(countedSnapshot().CitationFiles))
			return nil
		})

	res, err := f.app.Count(context.Background(), app.CountOptions{ConfigPath: "pdfstatus.yaml"})
	require.NoError(t, err)

	assert.True(t, res.Updated)
	assert.Equal(t, []reconciler.Reason{reconciler.ReasonDocumentsChanged}, res.Reasons)
}

func TestApp_Count_DeletedCitationFileIsDropped(t *testing.T) {
	c := corpus()
	delete(c, "jrnl/j.bib")
	f := newFixture(t, c)

	f.store.EXPECT().Load(f.cfg.SnapshotPath).Return(countedSnapshot(), nil)
	f.store.EXPECT().Save(f.cfg.SnapshotPath, gomock.Any()).Return(nil)

	res, err := f.app.Count(context.Background(), app.CountOptions{ConfigPath: "pdfstatus.yaml"})
	require.NoError(t, err)

	assert.True(t, res.Updated)
	assert.Equal(t, []reconciler.Reason{reconciler.ReasonCacheChanged}, res.Reasons)
	assert.Equal(t, []string{"jrnl/j.bib"}, res.Dropped)
	assert.Equal(t, 4, res.Snapshot.CitationEntryCount)
	assert.Equal(t, 0, res.Snapshot.JrnlCitationEntries)
}

func TestApp_Count_NoCacheReparses(t *testing.T) {
	f := newFixture(t, corpus())

	f.store.EXPECT().Load(f.cfg.SnapshotPath).Return(countedSnapshot(), nil)
	gomock.InOrder(
		f.parser.EXPECT().CountEntries(gomock.Any()).Return(4, nil),
		f.parser.EXPECT().CountEntries(gomock.Any()).Return(2, nil),
	)

	res, err := f.app.Count(context.Background(), app.CountOptions{ConfigPath: "pdfstatus.yaml", NoCache: true})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Parsed)
	assert.False(t, res.Updated, "identical counts leave the snapshot untouched")
}

func TestApp_Count_SaveFailureIsFatal(t *testing.T) {
	f := newFixture(t, corpus())

	f.store.EXPECT().Load(f.cfg.SnapshotPath).Return(domain.NewSnapshot(), nil)
	f.parser.EXPECT().CountEntries(gomock.Any()).Return(1, nil).Times(2)
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).
		Return(zerr.Wrap(errors.New("read-only file system"), domain.ErrSnapshotSaveFailed.Error()))

	_, err := f.app.Count(context.Background(), app.CountOptions{ConfigPath: "pdfstatus.yaml"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrSnapshotSaveFailed.Error())
	assert.Empty(t, f.stdout.String(), "no summary after a failed save")
}

func TestApp_Count_ParseFailureIsSkipped(t *testing.T) {
	f := newFixture(t, corpus())

	f.store.EXPECT().Load(f.cfg.SnapshotPath).Return(domain.NewSnapshot(), nil)
	gomock.InOrder(
		f.parser.EXPECT().CountEntries(gomock.Any()).Return(0, errors.New("syntax error")),
		f.parser.EXPECT().CountEntries(gomock.Any()).Return(2, nil),
	)
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	res, err := f.app.Count(context.Background(), app.CountOptions{ConfigPath: "pdfstatus.yaml"})
	require.NoError(t, err)

	require.Len(t, res.Failures, 1)
	assert.Equal(t, "conf/refs.bib", res.Failures[0].Path)
	assert.Equal(t, 2, res.Snapshot.CitationEntryCount)
	assert.NotContains(t, res.Snapshot.CitationFiles, "conf/refs.bib")
}

func TestApp_Count_ConfigError(t *testing.T) {
	f := newFixture(t, corpus())
	f.loader.EXPECT().Load("other.yaml").Return(domain.Config{}, domain.ErrConfigParseFailed)

	_, err := f.app.Count(context.Background(), app.CountOptions{ConfigPath: "other.yaml"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to load configuration")
}

func TestApp_Count_CorruptSnapshot(t *testing.T) {
	f := newFixture(t, corpus())
	f.store.EXPECT().Load(gomock.Any()).Return(domain.CorpusSnapshot{}, domain.ErrSnapshotDecodeFailed)

	_, err := f.app.Count(context.Background(), app.CountOptions{ConfigPath: "pdfstatus.yaml"})
	assert.ErrorIs(t, err, domain.ErrSnapshotDecodeFailed)
}

func TestApp_Count_Canceled(t *testing.T) {
	f := newFixture(t, corpus())
	f.store.EXPECT().Load(gomock.Any()).Return(domain.NewSnapshot(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.app.Count(ctx, app.CountOptions{ConfigPath: "pdfstatus.yaml"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestApp_Report(t *testing.T) {
	tests := []struct {
		name     string
		document string
		exists   bool
		want     string
		outcome  splice.Outcome
	}{
		{
			name:    "creates missing document",
			want:    domain.StartMarker + "\n<table/>\n" + domain.EndMarker + "\n",
			outcome: splice.OutcomeCreated,
		},
		{
			name:     "replaces marked region",
			document: "# Corpus\n" + domain.StartMarker + "\nstale\n" + domain.EndMarker + "\n",
			exists:   true,
			want:     "# Corpus\n" + domain.StartMarker + "\n<table/>\n" + domain.EndMarker + "\n",
			outcome:  splice.OutcomeReplaced,
		},
		{
			name:     "appends without markers",
			document: "# Corpus\n",
			exists:   true,
			want:     "# Corpus\n\n" + domain.StartMarker + "\n<table/>\n" + domain.EndMarker + "\n",
			outcome:  splice.OutcomeAppended,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, corpus())

			f.store.EXPECT().Load(f.cfg.SnapshotPath).Return(countedSnapshot(), nil)
			f.renderer.EXPECT().Render(countedSnapshot()).Return("<table/>\n", nil)
			f.documents.EXPECT().Read(f.cfg.ReportPath).Return(tt.document, tt.exists, nil)
			f.documents.EXPECT().Write(f.cfg.ReportPath, tt.want).Return(true, nil)

			res, err := f.app.Report(context.Background(), app.ReportOptions{ConfigPath: "pdfstatus.yaml"})
			require.NoError(t, err)

			assert.Equal(t, tt.outcome, res.Outcome)
			assert.True(t, res.Changed)
			assert.Equal(t, f.cfg.ReportPath, res.Path)
		})
	}
}

func TestApp_Report_ZeroSnapshotWarns(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockConfigLoader(ctrl)
	store := mocks.NewMockSnapshotStore(ctrl)
	renderer := mocks.NewMockReportRenderer(ctrl)
	documents := mocks.NewMockDocumentStore(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	cfg := domain.DefaultConfig()
	loader.EXPECT().Load(gomock.Any()).Return(cfg, nil)
	store.EXPECT().Load(cfg.SnapshotPath).Return(domain.NewSnapshot(), nil)
	logger.EXPECT().Warn(gomock.Any()).Times(1)
	renderer.EXPECT().Render(domain.NewSnapshot()).Return("<table/>", nil)
	documents.EXPECT().Read(cfg.ReportPath).Return(domain.StartMarker+"\n<table/>\n"+domain.EndMarker+"\n", true, nil)
	documents.EXPECT().Write(cfg.ReportPath, gomock.Any()).Return(false, nil)
	logger.EXPECT().Info(gomock.Any()).Times(1)

	a := app.New(loader, mocks.NewMockCorpusScanner(ctrl), citations.New(mocks.NewMockCitationParser(ctrl), logger),
		store, renderer, documents, logger).WithOutput(io.Discard)

	res, err := a.Report(context.Background(), app.ReportOptions{ConfigPath: domain.ConfigFileName})
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Equal(t, splice.OutcomeReplaced, res.Outcome)
}

func TestApp_Report_RenderError(t *testing.T) {
	f := newFixture(t, corpus())

	f.store.EXPECT().Load(gomock.Any()).Return(countedSnapshot(), nil)
	f.renderer.EXPECT().Render(gomock.Any()).Return("", domain.ErrReportRenderFailed)

	_, err := f.app.Report(context.Background(), app.ReportOptions{ConfigPath: "pdfstatus.yaml"})
	assert.ErrorIs(t, err, domain.ErrReportRenderFailed)
}
