package domain

import (
	"context"
	"log/slog"
	"time"

	"heurun.dev/pkg/heurun/internal/adapter"
	"heurun.dev/pkg/heurun/internal/controller"
	m "heurun.dev/pkg/heurun/internal/model"
)

// RunArgs contains the arguments for one benchmark run.
type RunArgs struct {
	// Tokens is the case specification ("7", "3-5", …). Empty means
	// auto-detect from the input directory.
	Tokens []string
}

// Workflow drives a full run: case selection, the run-once build, the
// scheduled case executions, report aggregation, and the collaborators
// around the core (UI, clipboard, summary store).
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
}

type workflow struct {
	cfg       m.RunConfig
	selector  Selector
	pipeline  Pipeline
	scheduler Scheduler
	clipboard adapter.Clipboard
	store     adapter.ReportStore
	ui        controller.UI
}

// NewWorkflow creates a Workflow instance with the provided dependencies.
func NewWorkflow(
	cfg m.RunConfig,
	selector Selector,
	pipeline Pipeline,
	scheduler Scheduler,
	clipboard adapter.Clipboard,
	store adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		cfg:       cfg,
		selector:  selector,
		pipeline:  pipeline,
		scheduler: scheduler,
		clipboard: clipboard,
		store:     store,
		ui:        ui,
	}
}

// Run executes the whole benchmark. Selection and build failures are fatal
// and abort before any case executes; everything after that is contained to
// individual cases and the run always completes with a full report.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	startedAt := time.Now()

	cases, err := w.selector.Select(args.Tokens)
	if err != nil {
		return err
	}

	slog.Info("Selected cases", "count", len(cases), "threads", w.threads())

	// The build is a run-once prepare phase: it must fully succeed before
	// the worker pool is constructed.
	if err := w.pipeline.Prepare(ctx); err != nil {
		return err
	}

	if err := w.ui.Start(ctx, len(cases), w.threads()); err != nil {
		return err
	}

	results, runErr := w.scheduler.Run(ctx, cases, func(result m.CaseResult) {
		w.ui.CaseDone(ctx, result)
	})

	report := BuildReport(results)

	if err := w.ui.Summary(ctx, report); err != nil {
		slog.Error("Failed to render summary", "error", err)
	}

	w.ui.Close(ctx)

	if report.LastOutput != "" {
		if err := w.clipboard.Copy(report.LastOutput); err != nil {
			slog.Warn("Clipboard copy failed", "error", err)
		}
	}

	summary := Summarize(report, w.threads(), startedAt)
	if err := w.store.Save(w.cfg.Report.StoreDir, summary); err != nil {
		slog.Warn("Failed to persist run summary", "dir", w.cfg.Report.StoreDir, "error", err)
	}

	return runErr
}

func (w *workflow) threads() int {
	if w.cfg.Test.Threads < 1 {
		return 1
	}

	return w.cfg.Test.Threads
}
