// Package domain implements the case-execution engine: case selection, the
// per-case pipeline, the bounded-concurrency scheduler and the report
// aggregation.
package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidCaseSpec marks a case-specification token that could not be
// parsed. It is fatal: selection fails as a whole, before any execution.
var ErrInvalidCaseSpec = errors.New("invalid case spec")

// ErrBuildFailed marks a failed build step. It is fatal: the run aborts
// before any case executes.
var ErrBuildFailed = errors.New("build failed")

// ScoreParseError reports a score capture that matched the score regex but
// did not parse as an unsigned integer. It is recorded on the case, which
// keeps an absent score; the run continues.
type ScoreParseError struct {
	Capture string
	Err     error
}

func (e *ScoreParseError) Error() string {
	return fmt.Sprintf("parse score capture %q: %v", e.Capture, e.Err)
}

func (e *ScoreParseError) Unwrap() error {
	return e.Err
}
