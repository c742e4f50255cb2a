// Package adapter provides the process, filesystem, clipboard and storage
// integrations the harness core depends on.
package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	m "heurun.dev/pkg/heurun/internal/model"
)

// ErrSpawn marks a process that could not be located or started. A started
// process that exits non-zero is reported through RunResult.ExitCode instead.
var ErrSpawn = errors.New("spawn process")

// RunResult captures one finished process invocation.
type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Elapsed  time.Duration
}

// RunOptions configures a single invocation.
type RunOptions struct {
	// StdinPath, when non-empty, is opened read-only and attached to the
	// process's standard input.
	StdinPath string
	// Dir is the working directory; empty means the caller's.
	Dir string
	// Env lists extra KEY=VALUE pairs appended to the current environment.
	Env []string
}

// ProcessRunner invokes one external command, capturing standard output and
// standard error fully as text and measuring wall-clock elapsed time around
// the process lifetime. Stateless, reusable per invocation.
type ProcessRunner interface {
	Run(ctx context.Context, cmd m.Command, opts RunOptions) (RunResult, error)
}

// LocalProcessRunner implements ProcessRunner using os/exec.
type LocalProcessRunner struct{}

// NewLocalProcessRunner constructs a LocalProcessRunner.
func NewLocalProcessRunner() *LocalProcessRunner {
	return &LocalProcessRunner{}
}

// Run executes cmd and waits for it to finish. A non-zero exit status is not
// an error: it is surfaced through RunResult.ExitCode so the caller decides
// the outcome. Spawn failures wrap ErrSpawn.
func (r *LocalProcessRunner) Run(ctx context.Context, cmd m.Command, opts RunOptions) (RunResult, error) {
	if cmd.IsZero() {
		return RunResult{}, fmt.Errorf("%w: empty command", ErrSpawn)
	}

	command := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	command.Dir = opts.Dir

	if len(opts.Env) > 0 {
		command.Env = append(os.Environ(), opts.Env...)
	}

	if opts.StdinPath != "" {
		stdin, err := os.Open(opts.StdinPath)
		if err != nil {
			return RunResult{}, fmt.Errorf("%w: open stdin %s: %v", ErrSpawn, opts.StdinPath, err)
		}

		defer stdin.Close()

		command.Stdin = stdin
	}

	var stdout, stderr bytes.Buffer

	command.Stdout = &stdout
	command.Stderr = &stderr

	start := time.Now()
	err := command.Run()
	elapsed := time.Since(start)

	result := RunResult{
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
		Elapsed: elapsed,
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}

		return result, fmt.Errorf("%w: %s: %v", ErrSpawn, cmd.Program, err)
	}

	return result, nil
}
