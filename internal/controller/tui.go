package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	m "heurun.dev/pkg/heurun/internal/model"
)

const maxProgressWidth = 60

// TUI renders run progress with Bubble Tea: completed case lines scroll into
// the terminal history while a progress bar tracks the worker pool.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
	finish  sync.Once
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output, done: make(chan struct{})}
}

type caseDoneMsg struct {
	result m.CaseResult
}

type runFinishedMsg struct{}

// Start launches the progress program in the background.
func (t *TUI) Start(ctx context.Context, total, threads int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.program = tea.NewProgram(newRunModel(total, threads), tea.WithOutput(t.output), tea.WithContext(ctx))

	go func() {
		defer close(t.done)

		if _, err := t.program.Run(); err != nil && ctx.Err() == nil {
			slog.Error("Progress UI failed", "error", err)
		}
	}()

	return nil
}

// CaseDone feeds one completed case into the progress view.
func (t *TUI) CaseDone(_ context.Context, result m.CaseResult) {
	if t.program == nil {
		return
	}

	t.program.Send(caseDoneMsg{result: result})
}

// Summary stops the progress view and prints the aggregate line.
func (t *TUI) Summary(ctx context.Context, report m.Report) error {
	t.stop()

	if err := ctx.Err(); err != nil {
		return err
	}

	return writeSummary(t.output, report)
}

// Close stops the progress view if it is still running.
func (t *TUI) Close(context.Context) {
	t.stop()
}

func (t *TUI) stop() {
	t.finish.Do(func() {
		if t.program == nil {
			return
		}

		t.program.Send(runFinishedMsg{})
		<-t.done
	})
}

// runModel is the Bubble Tea model behind the progress view.
type runModel struct {
	total     int
	threads   int
	completed int
	failed    int
	spinner   spinner.Model
	progress  progress.Model
	quitting  bool
}

func newRunModel(total, threads int) runModel {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	pr := progress.New(progress.WithDefaultGradient())

	return runModel{
		total:    total,
		threads:  threads,
		spinner:  sp,
		progress: pr,
	}
}

func (rm runModel) Init() tea.Cmd {
	return rm.spinner.Tick
}

func (rm runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			rm.quitting = true
			return rm, tea.Quit
		}

		return rm, nil

	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width > maxProgressWidth {
			width = maxProgressWidth
		}

		if width > 0 {
			rm.progress.Width = width
		}

		return rm, nil

	case caseDoneMsg:
		rm.completed++
		if msg.result.Failed() {
			rm.failed++
		}

		cmds := []tea.Cmd{tea.Println(caseLine(msg.result))}
		if rm.total > 0 {
			cmds = append(cmds, rm.progress.SetPercent(float64(rm.completed)/float64(rm.total)))
		}

		return rm, tea.Batch(cmds...)

	case runFinishedMsg:
		rm.quitting = true
		return rm, tea.Quit

	case progress.FrameMsg:
		updated, cmd := rm.progress.Update(msg)
		rm.progress = updated.(progress.Model)

		return rm, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		rm.spinner, cmd = rm.spinner.Update(msg)

		return rm, cmd
	}

	return rm, nil
}

func (rm runModel) View() string {
	if rm.quitting {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s%d/%d cases", rm.spinner.View(), rm.completed, rm.total)

	if rm.failed > 0 {
		fmt.Fprintf(&b, ", %s", failedStyle.Render(fmt.Sprintf("%d failed", rm.failed)))
	}

	fmt.Fprintf(&b, " (%d worker(s))\n", rm.threads)
	b.WriteString(rm.progress.View())
	b.WriteString("\n")

	return b.String()
}
