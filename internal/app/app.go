// Package app implements the application layer for pdf-status.
package app

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/Midhun-Kanadan/pdf-status/internal/core/domain"
	"github.com/Midhun-Kanadan/pdf-status/internal/core/ports"
	"github.com/Midhun-Kanadan/pdf-status/internal/engine/citations"
	"github.com/Midhun-Kanadan/pdf-status/internal/engine/inventory"
	"github.com/Midhun-Kanadan/pdf-status/internal/engine/reconciler"
	"github.com/Midhun-Kanadan/pdf-status/internal/engine/splice"
	"github.com/Midhun-Kanadan/pdf-status/internal/ui/output"
	"github.com/Midhun-Kanadan/pdf-status/internal/ui/summary"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	scanner      ports.CorpusScanner
	citations    *citations.Engine
	store        ports.SnapshotStore
	renderer     ports.ReportRenderer
	documents    ports.DocumentStore
	logger       ports.Logger
	openCorpus   func(root string) fs.FS
	stdout       io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	scanner ports.CorpusScanner,
	engine *citations.Engine,
	store ports.SnapshotStore,
	renderer ports.ReportRenderer,
	documents ports.DocumentStore,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		scanner:      scanner,
		citations:    engine,
		store:        store,
		renderer:     renderer,
		documents:    documents,
		logger:       log,
		openCorpus:   os.DirFS,
		stdout:       os.Stdout,
	}
}

// WithCorpusFS replaces the function opening the corpus root.
// This is primarily used for testing with in-memory file systems.
func (a *App) WithCorpusFS(open func(root string) fs.FS) *App {
	a.openCorpus = open
	return a
}

// WithOutput redirects the count summary.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// CountOptions configuration for the Count method.
type CountOptions struct {
	ConfigPath string
	// NoCache re-parses every citation file.
	NoCache bool
}

// CountResult describes a finished count run.
type CountResult struct {
	Updated  bool
	Reasons  []reconciler.Reason
	Snapshot domain.CorpusSnapshot
	Parsed   int
	Reused   int
	Failures []citations.Failure
	// Dropped lists the previously cached citation files absent from the new cache.
	Dropped []string
}

// Count recomputes the corpus inventory, saves the snapshot when it changed
// and prints the summary.
func (a *App) Count(ctx context.Context, opts CountOptions) (CountResult, error) {
	// 1. Load configuration and the previous snapshot
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return CountResult{}, zerr.Wrap(err, "failed to load configuration")
	}

	previous, err := a.store.Load(cfg.SnapshotPath)
	if err != nil {
		return CountResult{}, err
	}

	// 2. Scan partitions and refresh citation counts
	fsys := a.openCorpus(cfg.CorpusRoot)
	scans := make([]domain.PartitionScan, 0, len(domain.Partitions()))
	results := make(map[domain.Partition]citations.Result, len(domain.Partitions()))
	var res CountResult

	for _, p := range domain.Partitions() {
		if err := ctx.Err(); err != nil {
			return CountResult{}, err
		}

		scan, err := a.scanner.Scan(fsys, p, cfg.Extensions, cfg.Ignore)
		if err != nil {
			return CountResult{}, err
		}
		scans = append(scans, scan)

		r := a.citations.Refresh(fsys, scan.CitationFiles, previous.CitationFiles, citations.RefreshOptions{
			Force: opts.NoCache,
		})
		results[p] = r
		res.Parsed += r.Parsed
		res.Reused += r.Reused
		res.Failures = append(res.Failures, r.Failures...)
	}

	// 3. Reconcile against the previous snapshot
	fresh := reconciler.Fresh(inventory.Compute(scans...), results)
	decision := reconciler.Reconcile(previous, fresh)

	if decision.Update {
		if err := a.store.Save(cfg.SnapshotPath, decision.Snapshot); err != nil {
			return CountResult{}, err
		}
		a.logger.Info(fmt.Sprintf("snapshot saved to %s (%s)", cfg.SnapshotPath, joinReasons(decision.Reasons)))

		res.Dropped = dropped(previous.CitationFiles, decision.Snapshot.CitationFiles)
		if len(res.Dropped) > 0 {
			a.logger.Info(fmt.Sprintf("dropped cached counts of %d citation files: %s",
				len(res.Dropped), strings.Join(res.Dropped, ", ")))
		}
	}
	a.logger.Info(fmt.Sprintf("citation files: %d parsed, %d reused, %d skipped",
		res.Parsed, res.Reused, len(res.Failures)))

	// 4. Print the summary
	if err := summary.Write(output.New(a.stdout), decision.Update, decision.Snapshot); err != nil {
		return CountResult{}, zerr.Wrap(err, "failed to print summary")
	}

	res.Updated = decision.Update
	res.Reasons = decision.Reasons
	res.Snapshot = decision.Snapshot
	return res, nil
}

// ReportOptions configuration for the Report method.
type ReportOptions struct {
	ConfigPath string
}

// ReportResult describes a finished report run.
type ReportResult struct {
	Path    string
	Outcome splice.Outcome
	// Changed is false when the document already contained the rendered report.
	Changed bool
}

// Report renders the persisted snapshot into the report document.
func (a *App) Report(ctx context.Context, opts ReportOptions) (ReportResult, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return ReportResult{}, zerr.Wrap(err, "failed to load configuration")
	}

	snap, err := a.store.Load(cfg.SnapshotPath)
	if err != nil {
		return ReportResult{}, err
	}
	if snap.IsZero() {
		a.logger.Warn(fmt.Sprintf("no snapshot counts at %s, reporting zeros", cfg.SnapshotPath))
	}

	fragment, err := a.renderer.Render(snap)
	if err != nil {
		return ReportResult{}, err
	}

	if err := ctx.Err(); err != nil {
		return ReportResult{}, err
	}

	current, exists, err := a.documents.Read(cfg.ReportPath)
	if err != nil {
		return ReportResult{}, err
	}

	content, outcome := splice.Splice(fragment, current, exists, cfg.Markers)
	if outcome == splice.OutcomeAppended {
		a.logger.Warn(fmt.Sprintf("markers not found in %s, appending the report", cfg.ReportPath))
	}

	changed, err := a.documents.Write(cfg.ReportPath, content)
	if err != nil {
		return ReportResult{}, err
	}

	if changed {
		a.logger.Info(fmt.Sprintf("%s %s", cfg.ReportPath, outcome))
	} else {
		a.logger.Info(fmt.Sprintf("%s already up to date", cfg.ReportPath))
	}

	return ReportResult{Path: cfg.ReportPath, Outcome: outcome, Changed: changed}, nil
}

// dropped returns the sorted paths of previous that current no longer holds.
func dropped(previous, current domain.CitationCache) []string {
	var out []string
	for _, path := range previous.Paths() {
		if _, ok := current.Lookup(path); !ok {
			out = append(out, path)
		}
	}
	return out
}

func joinReasons(reasons []reconciler.Reason) string {
	parts := make([]string, len(reasons))
	for i, r := range reasons {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}
