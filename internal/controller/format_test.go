package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "heurun.dev/pkg/heurun/internal/model"
)

func scoreOf(n uint64) *uint64 { return &n }

func TestFormatScore(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{12345, "12,345"},
		{1234567, "1,234,567"},
		{1000000000, "1,000,000,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatScore(tt.n))
	}
}

func TestScoreLabel(t *testing.T) {
	tests := []struct {
		name   string
		result m.CaseResult
		want   string
	}{
		{
			name:   "scored",
			result: m.CaseResult{Score: scoreOf(12345), Evaluated: true},
			want:   "12,345",
		},
		{
			name:   "zero is a real score",
			result: m.CaseResult{Score: scoreOf(0), Evaluated: true},
			want:   "0",
		},
		{
			name:   "failed",
			result: m.CaseResult{Failure: m.FailureSolver},
			want:   "FAILED",
		},
		{
			name:   "skipped evaluation",
			result: m.CaseResult{Evaluated: false},
			want:   "skipped",
		},
		{
			name:   "score parse error",
			result: m.CaseResult{Evaluated: true, ScoreErr: &scoreParseErr{}},
			want:   "parse error",
		},
		{
			name:   "no match",
			result: m.CaseResult{Evaluated: true},
			want:   "no match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreLabel(tt.result))
		})
	}
}

type scoreParseErr struct{}

func (*scoreParseErr) Error() string { return "parse score" }

func TestCaseLine(t *testing.T) {
	result := m.CaseResult{
		Case:      7,
		Score:     scoreOf(1234),
		Evaluated: true,
		Elapsed:   1500 * time.Millisecond,
		Comments:  []string{"greedy", "two-opt"},
	}

	line := caseLine(result)

	assert.Contains(t, line, "0007")
	assert.Contains(t, line, "1,234")
	assert.Contains(t, line, "1.50s")
	assert.Contains(t, line, "greedy/two-opt")
}

func TestCaseLine_FailedIncludesReason(t *testing.T) {
	result := m.CaseResult{
		Case:    3,
		Failure: m.FailureSolver,
		Detail:  "exit status 1",
	}

	line := caseLine(result)

	assert.Contains(t, line, "FAILED")
	assert.Contains(t, line, "solver")
	assert.Contains(t, line, "exit status 1")
}

func TestWriteSummary(t *testing.T) {
	report := m.Report{
		Total: 54321,
		Cases: []m.CaseResult{
			{Case: 0, Score: scoreOf(54321), Evaluated: true},
			{Case: 1, Evaluated: true},
			{Case: 2, Failure: m.FailureEvaluation},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, writeSummary(&buf, report))

	out := buf.String()
	assert.Contains(t, out, "TOTAL=54,321")
	assert.Contains(t, out, "3 cases")
	assert.Contains(t, out, "1 scored")
	assert.Contains(t, out, "1 failed")
}

func TestRenderSummaryTable(t *testing.T) {
	summary := m.RunSummary{
		StartedAt: time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC),
		Threads:   8,
		Total:     2469,
		Cases: []m.CaseSummary{
			{Case: 0, Score: scoreOf(1234), ElapsedSec: 0.5, Evaluated: true, Comments: "greedy"},
			{Case: 1, Score: scoreOf(1235), ElapsedSec: 0.7, Evaluated: true},
			{Case: 2, ElapsedSec: 0.1, Failure: "solver", Detail: "exit status 2"},
			{Case: 3, ElapsedSec: 0.1, Evaluated: false},
		},
	}

	out := RenderSummaryTable(summary)

	assert.Contains(t, out, "8 worker(s)")
	assert.Contains(t, out, "0000")
	assert.Contains(t, out, "1,234")
	assert.Contains(t, out, "FAILED")
	assert.Contains(t, out, "skipped")
	assert.Contains(t, out, "greedy")
	// The footer cell is upcased by the table renderer.
	assert.Contains(t, strings.ToUpper(out), "4 CASES")
	assert.Contains(t, out, "2,469")
}
