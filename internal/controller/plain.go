package controller

import (
	"context"
	"fmt"
	"io"

	m "heurun.dev/pkg/heurun/internal/model"
)

// PlainUI renders one line per case as it completes, with no interactive
// elements. Used when stdout is not a terminal or the TUI is disabled.
type PlainUI struct {
	output io.Writer
}

// NewPlainUI creates a new PlainUI.
func NewPlainUI(output io.Writer) *PlainUI {
	return &PlainUI{output: output}
}

// Start announces the run.
func (p *PlainUI) Start(ctx context.Context, total, threads int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(p.output, "Running %d case(s) with %d worker(s)\n", total, threads)

	return err
}

// CaseDone prints the case's report line.
func (p *PlainUI) CaseDone(ctx context.Context, result m.CaseResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	fmt.Fprintln(p.output, caseLine(result))
}

// Summary prints the aggregate line.
func (p *PlainUI) Summary(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return writeSummary(p.output, report)
}

// Close finalizes the UI (no-op for PlainUI).
func (p *PlainUI) Close(context.Context) {}
