package controller

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	m "heurun.dev/pkg/heurun/internal/model"
)

var (
	failedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	totalStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// formatScore renders n with comma grouping (12345 -> "12,345").
func formatScore(n uint64) string {
	digits := fmt.Sprintf("%d", n)

	var b strings.Builder

	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}

		b.WriteRune(c)
	}

	return b.String()
}

// scoreLabel names the score column content, distinguishing a failed case,
// a skipped evaluation, and an extraction that found no match.
func scoreLabel(result m.CaseResult) string {
	switch {
	case result.Failed():
		return "FAILED"
	case !result.Evaluated:
		return "skipped"
	case result.ScoreErr != nil:
		return "parse error"
	case result.Score == nil:
		return "no match"
	default:
		return formatScore(*result.Score)
	}
}

// caseLine renders one case's report line.
func caseLine(result m.CaseResult) string {
	label := scoreLabel(result)
	if result.Failed() {
		label = failedStyle.Render(label)
	}

	line := fmt.Sprintf("%s SCORE[%11s] ELAPSED[%5.2fs] CMTS[%s]",
		result.Case,
		label,
		result.Elapsed.Seconds(),
		strings.Join(result.Comments, m.CommentDelimiter),
	)

	if result.Failed() {
		line += " " + dimStyle.Render(fmt.Sprintf("(%s: %s)", result.Failure, result.Detail))
	}

	return line
}

// writeSummary renders the aggregate line that closes a run.
func writeSummary(w io.Writer, report m.Report) error {
	scored := 0
	failed := 0

	for _, result := range report.Cases {
		if result.Score != nil {
			scored++
		}

		if result.Failed() {
			failed++
		}
	}

	counts := fmt.Sprintf("(%d cases, %d scored, %d failed)", len(report.Cases), scored, failed)

	_, err := fmt.Fprintf(w, "\n%s %s\n",
		totalStyle.Render("TOTAL="+formatScore(report.Total)),
		dimStyle.Render(counts),
	)

	return err
}

// RenderSummaryTable renders a persisted run summary as a table, used by the
// view command.
func RenderSummaryTable(summary m.RunSummary) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Run started %s with %d worker(s)\n\n",
		summary.StartedAt.Format("2006-01-02 15:04:05"), summary.Threads)

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Case", "Score", "Elapsed", "Failure", "Comments"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for _, entry := range summary.Cases {
		table.Append([]string{
			m.CaseID(entry.Case).String(),
			summaryScoreCell(entry),
			fmt.Sprintf("%.2fs", entry.ElapsedSec),
			entry.Failure,
			entry.Comments,
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("%d cases", len(summary.Cases)),
		formatScore(summary.Total),
		"", "", "",
	})

	table.Render()

	return buf.String()
}

func summaryScoreCell(entry m.CaseSummary) string {
	switch {
	case entry.Failure != "":
		return "FAILED"
	case !entry.Evaluated:
		return "skipped"
	case entry.Score == nil:
		return "no match"
	default:
		return formatScore(*entry.Score)
	}
}
