package ui

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/cairn/internal/config"
	"github.com/renato0307/cairn/internal/domain"
)

func newTestModel(t *testing.T, keys config.KeyBindingsConfig) *Model {
	t.Helper()
	return NewModel(domain.DefaultSessionConfig, "", true, false, keys, Sound{}, rand.New(rand.NewSource(7)))
}

func press(m *Model, k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

// tickOnce delivers the firing of the countdown's current tick task
func tickOnce(m *Model) {
	for id := range m.scheduler.tasks {
		if m.scheduler.tasks[id].every > 0 {
			m.Update(taskFiredMsg{id: id})
			return
		}
	}
}

func TestModel_StartPauseResetKeys(t *testing.T) {
	m := newTestModel(t, nil)

	press(m, "s")
	assert.Equal(t, domain.PhaseRunning, m.Timer().State().Phase())

	tickOnce(m)
	assert.Equal(t, 59, m.Timer().State().TimeLeft)
	assert.Equal(t, "00:59", m.panel.Clock())

	press(m, " ")
	assert.Equal(t, domain.PhasePaused, m.Timer().State().Phase())
	assert.Equal(t, []string{ResumeLabel, ResetLabel}, m.panel.Controls())

	press(m, "p")
	assert.Equal(t, domain.PhaseRunning, m.Timer().State().Phase())

	press(m, "r")
	assert.Equal(t, domain.PhaseIdle, m.Timer().State().Phase())
	assert.Equal(t, 60, m.Timer().State().TimeLeft)
	assert.Equal(t, []string{StartLabel}, m.panel.Controls())
}

func TestModel_EnterStarts(t *testing.T) {
	m := newTestModel(t, nil)

	press(m, "enter")

	assert.True(t, m.Timer().State().Running)
}

func TestModel_QuickModeKeys(t *testing.T) {
	m := newTestModel(t, nil)

	press(m, "2")
	assert.Equal(t, "25min", m.Timer().Mode().Name)
	assert.Equal(t, "25:00", m.panel.Clock())

	press(m, "9")
	assert.Equal(t, "25min", m.Timer().Mode().Name, "no ninth mode")

	press(m, "s")
	press(m, "1")
	assert.Equal(t, "25min", m.Timer().Mode().Name, "ignored while running")
}

func TestModel_ChooseModeDialog(t *testing.T) {
	m := newTestModel(t, nil)

	press(m, "m")
	require.Equal(t, stateChoosingMode, m.state)
	assert.Contains(t, m.View(), "Session Length")

	press(m, "esc")
	assert.Equal(t, stateTimer, m.state)
	assert.Equal(t, "1min", m.Timer().Mode().Name)
}

func TestModel_ChooseModeOverlaysTimer(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	press(m, "m")
	view := m.View()

	assert.Contains(t, view, "Session Length")
	assert.GreaterOrEqual(t, len(strings.Split(view, "\n")), 40)
}

func TestModel_ChooseModeIgnoredWhileRunning(t *testing.T) {
	m := newTestModel(t, nil)

	press(m, "s")
	press(m, "m")

	assert.Equal(t, stateTimer, m.state)
}

func TestModel_ChooseModeIgnoredWhilePaused(t *testing.T) {
	m := newTestModel(t, nil)

	press(m, "s")
	press(m, "p")
	require.True(t, m.Timer().State().Paused)
	press(m, "m")

	assert.Equal(t, stateTimer, m.state)
}

func TestModel_FooterTipOnlyWhileIdle(t *testing.T) {
	m := newTestModel(t, nil)
	assert.Contains(t, m.footerView(), "press")

	press(m, "s")
	assert.NotContains(t, m.footerView(), "press")

	press(m, "p")
	assert.NotContains(t, m.footerView(), "press", "paused still counts as started")

	press(m, "r")
	assert.Contains(t, m.footerView(), "press")
}

func TestModel_HelpScreen(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	press(m, "?")
	require.Equal(t, stateHelp, m.state)
	assert.Contains(t, m.View(), "start the countdown")

	press(m, "esc")
	assert.Equal(t, stateTimer, m.state)
}

func TestModel_QuitKeys(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			m := newTestModel(t, nil)

			cmd := press(m, k)

			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestModel_CustomKeyBindings(t *testing.T) {
	m := newTestModel(t, config.KeyBindingsConfig{"start": {"g"}})

	press(m, "s")
	assert.False(t, m.Timer().State().Running)

	press(m, "g")
	assert.True(t, m.Timer().State().Running)
}

func TestModel_TimerKeepsTickingBehindDialogs(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	press(m, "s")
	press(m, "h")
	require.Equal(t, stateHelp, m.state)

	tickOnce(m)

	assert.Equal(t, 59, m.Timer().State().TimeLeft)
}

func TestModel_CompletionStartsFrameLoop(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, "s")

	for i := 0; i < 59; i++ {
		tickOnce(m)
	}
	assert.False(t, m.framePending)

	tickOnce(m)

	assert.Equal(t, 1, m.Timer().Sessions())
	assert.True(t, m.cairn.Animating())
	assert.True(t, m.confetti.Active())
	assert.True(t, m.framePending)
}

func TestModel_ViewShowsTimer(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	view := m.View()

	assert.Contains(t, view, "Cairn")
	assert.Contains(t, view, "🪨 0 sessions today")
	assert.Contains(t, view, "▶ Start")
	assert.Contains(t, view, "press s to start a session")
}
