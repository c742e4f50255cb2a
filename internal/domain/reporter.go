package domain

import (
	"sort"
	"strings"
	"time"

	m "heurun.dev/pkg/heurun/internal/model"
)

// BuildReport sorts results into ascending case order, sums all present
// scores into the total, and designates the output of the case with the
// numerically highest ID as the clipboard payload. Failed cases contribute
// no score but stay in the report.
func BuildReport(results []m.CaseResult) m.Report {
	cases := make([]m.CaseResult, len(results))
	copy(cases, results)

	sort.Slice(cases, func(i, j int) bool { return cases[i].Case < cases[j].Case })

	var total uint64

	for _, result := range cases {
		if result.Score != nil {
			total += *result.Score
		}
	}

	report := m.Report{Cases: cases, Total: total}
	if len(cases) > 0 {
		report.LastOutput = cases[len(cases)-1].Output
	}

	return report
}

// Summarize converts a report into its persistable form.
func Summarize(report m.Report, threads int, startedAt time.Time) m.RunSummary {
	summary := m.RunSummary{
		StartedAt: startedAt,
		Threads:   threads,
		Total:     report.Total,
		Cases:     make([]m.CaseSummary, 0, len(report.Cases)),
	}

	for _, result := range report.Cases {
		entry := m.CaseSummary{
			Case:       uint32(result.Case),
			Score:      result.Score,
			ElapsedSec: result.Elapsed.Seconds(),
			Evaluated:  result.Evaluated,
			Comments:   strings.Join(result.Comments, m.CommentDelimiter),
		}

		if result.Failed() {
			entry.Failure = result.Failure.String()
			entry.Detail = result.Detail
		}

		summary.Cases = append(summary.Cases, entry)
	}

	return summary
}
