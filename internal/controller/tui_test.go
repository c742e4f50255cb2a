package controller

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "heurun.dev/pkg/heurun/internal/model"
)

func TestNewUI_SelectsRenderer(t *testing.T) {
	var buf bytes.Buffer

	assert.IsType(t, &TUI{}, NewUI(&buf, true))
	assert.IsType(t, &PlainUI{}, NewUI(&buf, false))
}

func TestRunModel_CaseDoneAdvancesProgress(t *testing.T) {
	model := newRunModel(4, 2)

	updated, cmd := model.Update(caseDoneMsg{result: m.CaseResult{Case: 0, Score: scoreOf(10), Evaluated: true}})
	require.NotNil(t, cmd)

	rm, ok := updated.(runModel)
	require.True(t, ok)
	assert.Equal(t, 1, rm.completed)
	assert.Equal(t, 0, rm.failed)
}

func TestRunModel_FailedCaseIsCounted(t *testing.T) {
	model := newRunModel(4, 2)

	updated, _ := model.Update(caseDoneMsg{result: m.CaseResult{Case: 0, Failure: m.FailureSolver}})

	rm := updated.(runModel)
	assert.Equal(t, 1, rm.completed)
	assert.Equal(t, 1, rm.failed)
}

func TestRunModel_RunFinishedQuits(t *testing.T) {
	model := newRunModel(1, 1)

	updated, cmd := model.Update(runFinishedMsg{})
	require.NotNil(t, cmd)

	rm := updated.(runModel)
	assert.True(t, rm.quitting)
	assert.Empty(t, rm.View())
}

func TestRunModel_CtrlCQuits(t *testing.T) {
	model := newRunModel(1, 1)

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)

	rm := updated.(runModel)
	assert.True(t, rm.quitting)
}

func TestRunModel_WindowSizeCapsProgressWidth(t *testing.T) {
	model := newRunModel(1, 1)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 200, Height: 40})

	rm := updated.(runModel)
	assert.Equal(t, maxProgressWidth, rm.progress.Width)
}

func TestRunModel_View(t *testing.T) {
	model := newRunModel(4, 2)

	updated, _ := model.Update(caseDoneMsg{result: m.CaseResult{Case: 0, Failure: m.FailureSolver}})
	rm := updated.(runModel)

	view := rm.View()
	assert.Contains(t, view, "1/4 cases")
	assert.Contains(t, view, "1 failed")
	assert.Contains(t, view, "2 worker(s)")
}

func TestRunModel_SpinnerTick(t *testing.T) {
	model := newRunModel(1, 1)

	_, cmd := model.Update(spinner.TickMsg{ID: model.spinner.ID()})
	assert.NotNil(t, cmd)
}
