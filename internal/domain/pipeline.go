package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"heurun.dev/pkg/heurun/internal/adapter"
	m "heurun.dev/pkg/heurun/internal/model"
)

// Pipeline runs the per-case sequence: solver invocation, optional
// visualizer or tester invocation, and output extraction. Prepare executes
// the run-once build step and must succeed before any case runs.
type Pipeline interface {
	Prepare(ctx context.Context) error
	// RunCase never returns an error: per-case failures are encoded in the
	// CaseResult so a failing case cannot abort its siblings.
	RunCase(ctx context.Context, id m.CaseID) m.CaseResult
}

type pipeline struct {
	cfg       m.RunConfig
	runner    adapter.ProcessRunner
	fs        adapter.CaseFS
	extractor *Extractor
}

// NewPipeline constructs a Pipeline over the given runner and case
// filesystem. cfg is shared read-only by all concurrent case executions.
func NewPipeline(cfg m.RunConfig, runner adapter.ProcessRunner, fs adapter.CaseFS, extractor *Extractor) Pipeline {
	return &pipeline{cfg: cfg, runner: runner, fs: fs, extractor: extractor}
}

// Prepare runs the build command once, before the worker pool starts. A
// spawn failure or non-zero exit is fatal for the whole run.
func (p *pipeline) Prepare(ctx context.Context) error {
	if !p.cfg.Build.Enable {
		slog.Debug("Build step disabled, skipping")
		return nil
	}

	slog.Info("Building solver", "command", p.cfg.Build.Command.String())

	run, err := p.runner.Run(ctx, p.cfg.Build.Command, adapter.RunOptions{})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildFailed, err)
	}

	if run.ExitCode != 0 {
		return fmt.Errorf("%w: exit status %d: %s", ErrBuildFailed, run.ExitCode, tail(run.Stderr, 10))
	}

	return nil
}

// RunCase drives one case through solve, evaluate and extract.
func (p *pipeline) RunCase(ctx context.Context, id m.CaseID) m.CaseResult {
	if p.cfg.Test.UseTester && !p.cfg.Test.NoEvaluate {
		return p.runTesterCase(ctx, id)
	}

	return p.runSolverCase(ctx, id)
}

// runSolverCase runs the solver against the case's input, writes its output
// artifact, and scores it with the visualizer unless evaluation is skipped.
func (p *pipeline) runSolverCase(ctx context.Context, id m.CaseID) m.CaseResult {
	result := m.CaseResult{Case: id}

	inf := p.fs.InputPath(p.cfg.Test.InDir, id)
	outf := p.fs.OutputPath(p.cfg.Test.OutDir, id)

	run, err := p.runner.Run(ctx, p.cfg.Test.Bin, adapter.RunOptions{
		StdinPath: inf,
		Env:       caseEnv(inf),
	})

	result.Elapsed = run.Elapsed
	result.Output = truncate(run.Stdout, p.cfg.Report.MaxOutput)
	result.Comments = p.extractor.Comments(run.Stderr)

	if err != nil {
		result.Failure = m.FailureSolver
		result.Detail = err.Error()

		return result
	}

	// The partial artifact is kept on disk even when the solver failed, so
	// it stays available for manual inspection.
	if werr := p.fs.WriteOutput(outf, run.Stdout); werr != nil {
		result.Failure = m.FailureSolver
		result.Detail = werr.Error()

		return result
	}

	if run.ExitCode != 0 {
		result.Failure = m.FailureSolver
		result.Detail = fmt.Sprintf("solver exit status %d", run.ExitCode)

		return result
	}

	if p.cfg.Test.NoEvaluate {
		return result
	}

	vis := p.cfg.Test.Vis.WithArgs(inf, outf)

	vrun, verr := p.runner.Run(ctx, vis, adapter.RunOptions{})
	if verr != nil {
		result.Failure = m.FailureEvaluation
		result.Detail = verr.Error()

		return result
	}

	if vrun.ExitCode != 0 {
		result.Failure = m.FailureEvaluation
		result.Detail = fmt.Sprintf("visualizer exit status %d", vrun.ExitCode)

		return result
	}

	result.Evaluated = true
	p.extractScore(&result, vrun.Stdout)

	return result
}

// runTesterCase runs the combined tester, which produces both the output
// artifact and the scoring text on its own standard output. The solver
// command is appended to the tester's arguments.
func (p *pipeline) runTesterCase(ctx context.Context, id m.CaseID) m.CaseResult {
	result := m.CaseResult{Case: id}

	inf := p.fs.InputPath(p.cfg.Test.InDir, id)
	outf := p.fs.OutputPath(p.cfg.Test.OutDir, id)

	cmd := p.cfg.Test.Tester.WithArgs(p.cfg.Test.Bin.Argv()...)

	run, err := p.runner.Run(ctx, cmd, adapter.RunOptions{
		StdinPath: inf,
		Env:       caseEnv(inf),
	})

	result.Elapsed = run.Elapsed
	result.Output = truncate(run.Stdout, p.cfg.Report.MaxOutput)
	result.Comments = p.extractor.Comments(run.Stderr)

	if err != nil {
		result.Failure = m.FailureEvaluation
		result.Detail = err.Error()

		return result
	}

	if werr := p.fs.WriteOutput(outf, run.Stdout); werr != nil {
		result.Failure = m.FailureEvaluation
		result.Detail = werr.Error()

		return result
	}

	if run.ExitCode != 0 {
		result.Failure = m.FailureEvaluation
		result.Detail = fmt.Sprintf("tester exit status %d", run.ExitCode)

		return result
	}

	result.Evaluated = true
	p.extractScore(&result, run.Stdout)

	return result
}

// extractScore records the extracted score on the result. A parse failure is
// reported on the case and the score stays absent; the run continues.
func (p *pipeline) extractScore(result *m.CaseResult, scoringText string) {
	score, err := p.extractor.Score(scoringText)
	if err != nil {
		slog.Warn("Score extraction failed", "case", result.Case.String(), "error", err)

		result.ScoreErr = err

		return
	}

	result.Score = score
}

// caseEnv exposes the case's input path to the child process, matching the
// contest tooling convention.
func caseEnv(inputPath string) []string {
	return []string{
		"INPUT_FILE=" + inputPath,
		"IN_FILE=" + inputPath,
	}
}

func truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}

	return s[:limit]
}

// tail returns the last n lines of s, for compact diagnostics.
func tail(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}

	return strings.Join(lines, "\n")
}
