// Package controller provides the output surfaces for rendering run progress
// and results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	m "heurun.dev/pkg/heurun/internal/model"
)

// UI receives the lifecycle of one run. CaseDone is always invoked in
// ascending case order, from a single goroutine, as soon as the next case in
// order has completed.
type UI interface {
	Start(ctx context.Context, total, threads int) error
	CaseDone(ctx context.Context, result m.CaseResult)
	Summary(ctx context.Context, report m.Report) error
	Close(ctx context.Context)
}

// NewUI selects the interactive progress UI or the plain line renderer.
func NewUI(output io.Writer, interactive bool) UI {
	if interactive {
		return NewTUI(output)
	}

	return NewPlainUI(output)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
