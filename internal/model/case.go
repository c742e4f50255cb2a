// Package model defines the data types shared by the benchmark harness.
package model

import (
	"fmt"
	"time"
)

// CommentDelimiter joins a case's extracted comments for display.
const CommentDelimiter = "/"

// CaseID identifies one input/output pair of a benchmark run.
type CaseID uint32

// String formats the ID the way case files are named, zero-padded to four digits.
func (id CaseID) String() string {
	return fmt.Sprintf("%04d", uint32(id))
}

// FileName returns the file name of the case's input or output artifact.
func (id CaseID) FileName() string {
	return id.String() + ".txt"
}

// FailureReason tags why a case did not complete cleanly.
type FailureReason int

// Available FailureReason values.
const (
	// FailureNone marks a case that completed cleanly.
	FailureNone FailureReason = iota
	// FailureSolver marks a solver that could not be started or exited non-zero.
	FailureSolver
	// FailureEvaluation marks a visualizer or tester that could not be
	// started or exited non-zero.
	FailureEvaluation
)

func (r FailureReason) String() string {
	switch r {
	case FailureSolver:
		return "solver"
	case FailureEvaluation:
		return "evaluation"
	default:
		return "none"
	}
}

// CaseResult is the outcome of running a single case through the pipeline.
//
// Score is nil when evaluation was skipped, when the score regex found no
// match, or when the case failed; it is never a sentinel zero. Output holds
// the raw captured text of the case's produced artifact, truncated to the
// configured limit, so the last case's output can be handed to the clipboard.
type CaseResult struct {
	Case      CaseID
	Elapsed   time.Duration
	Score     *uint64
	ScoreErr  error // non-nil when the score capture did not parse
	Comments  []string
	Output    string
	Evaluated bool // false when the scoring step was skipped
	Failure   FailureReason
	Detail    string // human-readable failure detail
}

// Failed reports whether the case's processes did not complete cleanly.
func (r CaseResult) Failed() bool {
	return r.Failure != FailureNone
}

// Report is the aggregate outcome of a run: all case results in ascending
// case order, the sum of all present scores, and the raw output of the case
// with the numerically highest ID.
type Report struct {
	Cases      []CaseResult
	Total      uint64
	LastOutput string
}
