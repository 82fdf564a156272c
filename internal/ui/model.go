package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/cairn/internal/config"
	"github.com/renato0307/cairn/internal/domain"
	"github.com/renato0307/cairn/internal/logging"
	"github.com/renato0307/cairn/internal/services"
	"github.com/renato0307/cairn/internal/theme"
)

type uiState int

const (
	stateTimer uiState = iota
	stateChoosingMode
	stateHelp
)

const (
	// frameInterval paces animations while anything is moving
	frameInterval = time.Second / 30

	confettiRows = 4
	minCairnRows = 4
)

type Model struct {
	animations   bool              // Drop, confetti fall and guide dance
	bell         *terminalBell     // Nil unless the bell is on
	cairn        *CairnView        // Stone stack
	confetti     *Confetti         // Completion burst
	devMode      bool              // Development mode (shows version info in headers)
	dispatcher   *ActionDispatcher // Key press to action mapping
	framePending bool              // A frameMsg is in flight
	guide        *Guide            // Mascot
	height       int
	helpScreen   *Dialog       // Help screen dialog
	keys         KeyMap        // Keyboard shortcuts
	modeForm     *Dialog       // Mode chooser dialog
	panel        *TimerPanel   // Clock, controls and counter
	scheduler    *TeaScheduler // Tick and one-shot tasks
	state        uiState
	timer        *services.SessionTimer // Countdown controller
	width        int
}

// NewModel builds the widget. initialMode may be empty to use the
// config's default; rng feeds the confetti.
func NewModel(
	sessionConfig domain.SessionConfig,
	initialMode string,
	animations bool,
	devMode bool,
	keysConfig config.KeyBindingsConfig,
	sound Sound,
	rng domain.RandomSource,
) *Model {
	scheduler := NewTeaScheduler()
	var bell *terminalBell
	if sound.Bell {
		bell = newTerminalBell(scheduler)
	}
	panel := NewTimerPanel(sessionConfig.Modes())
	cairn := NewCairnView(animations)
	confetti := NewConfetti(rng, scheduler, animations)
	guide := NewGuide()

	timer := services.NewSessionTimer(sessionConfig, scheduler, services.TimerViews{
		Cairn:       cairn,
		Celebration: confetti,
		Counter:     panel,
		Display:     panel,
		Guide:       guide,
	}, newChime(sound, bell))

	if initialMode != "" && !timer.SelectMode(initialMode) {
		logging.Logger.Warn("Unknown initial mode, keeping default", "mode", initialMode)
	}

	m := &Model{
		animations: animations,
		bell:       bell,
		cairn:      cairn,
		confetti:   confetti,
		devMode:    devMode,
		guide:      guide,
		keys:       NewKeyMap(keysConfig),
		panel:      panel,
		scheduler:  scheduler,
		state:      stateTimer,
		timer:      timer,
	}
	m.dispatcher = NewActionDispatcher(&m.keys)
	return m
}

// Timer exposes the countdown controller
func (m *Model) Timer() *services.SessionTimer {
	return m.timer
}

func (m *Model) Init() tea.Cmd {
	return m.scheduler.Drain()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case taskFiredMsg:
		m.scheduler.Fire(msg)
	case frameMsg:
		m.framePending = false
		m.advanceFrame(time.Time(msg))
	default:
		if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
			m.width = sizeMsg.Width
			m.height = sizeMsg.Height
		}
		if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Application.ForceQuit.Binding) {
			logging.Logger.Info("Force quit requested")
			return m, tea.Quit
		}

		switch m.state {
		case stateTimer:
			cmd = m.updateTimer(msg)
		case stateChoosingMode:
			cmd = m.updateChoosingMode(msg)
		case stateHelp:
			cmd = m.updateHelp(msg)
		}
	}

	return m, tea.Batch(cmd, m.scheduler.Drain(), m.scheduleFrame())
}

func (m *Model) updateTimer(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch action := m.dispatcher.Dispatch(keyMsg).(type) {
	case QuitMsg:
		return tea.Quit
	case StartTimerMsg:
		m.timer.Start()
	case TogglePauseMsg:
		m.timer.TogglePause()
	case ResetTimerMsg:
		m.timer.Reset()
	case SelectModeMsg:
		if mode, ok := m.timer.Config().At(action.Index); ok {
			m.timer.SelectMode(mode.Name)
		}
	case ChooseModeMsg:
		if m.timer.State().Started() {
			return nil
		}
		contentForm := NewModeForm(m.timer.Config(), m.timer.Mode().Name)
		m.modeForm = NewDialog("Session Length", contentForm, m.devMode)
		m.state = stateChoosingMode
		return m.modeForm.Init()
	case ShowHelpMsg:
		contentForm := NewHelpScreen(&m.keys)
		m.helpScreen = NewDialog("Help", contentForm, m.devMode)
		m.state = stateHelp
		// Send initial WindowSizeMsg so viewport can initialize
		initCmd := m.helpScreen.Init()
		updatedDialog, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.helpScreen = updatedDialog.(*Dialog)
		return tea.Batch(initCmd, sizeCmd)
	}
	return nil
}

func (m *Model) updateChoosingMode(msg tea.Msg) tea.Cmd {
	// Delegate to dialog (it handles cancel internally)
	updated, cmd := m.modeForm.Update(msg)
	m.modeForm = updated.(*Dialog)

	if content, ok := m.modeForm.Content().(*ModeForm); ok && content.Completed {
		result := content.Result()
		m.state = stateTimer
		m.modeForm = nil

		if !result.Cancelled {
			m.timer.SelectMode(result.Mode)
		}
		return nil
	}

	return cmd
}

func (m *Model) updateHelp(msg tea.Msg) tea.Cmd {
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.state = stateTimer
		m.helpScreen = nil
		return nil
	}

	return cmd
}

func (m *Model) animating() bool {
	if !m.animations {
		return false
	}
	return m.cairn.Animating() || m.confetti.Active() || m.guide.Animating()
}

func (m *Model) advanceFrame(now time.Time) {
	m.cairn.Frame(now)
	m.confetti.Frame(now)
	m.guide.Frame(now)
}

// scheduleFrame starts the frame loop when something is moving and no
// frame is already queued
func (m *Model) scheduleFrame() tea.Cmd {
	if m.framePending || !m.animating() {
		return nil
	}
	m.framePending = true
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) View() string {
	return m.bell.decorate(m.screenView())
}

func (m *Model) screenView() string {
	switch m.state {
	case stateChoosingMode:
		if m.modeForm != nil {
			// The countdown stays visible behind the chooser
			if m.width > 0 && m.height > 0 {
				return compositeOverlay(m.timerView(), m.modeForm.View(), m.width, m.height)
			}
			return m.modeForm.View()
		}
	case stateHelp:
		if m.helpScreen != nil {
			return m.helpScreen.View()
		}
	}
	return m.timerView()
}

func (m *Model) timerView() string {
	header := renderHeader(m.devMode, "")

	right := lipgloss.JoinVertical(lipgloss.Left,
		m.panel.View(&m.keys),
		"",
		m.guide.View(),
	)

	cairnRows := 0
	if m.height > 0 {
		// header, confetti, gap, footer
		cairnRows = m.height - lipgloss.Height(header) - confettiRows - 4
		if cairnRows < minCairnRows {
			cairnRows = minCairnRows
		}
	}
	body := lipgloss.JoinHorizontal(lipgloss.Bottom, m.cairn.View(cairnRows), "    ", right)
	confetti := m.confetti.View(lipgloss.Width(body), confettiRows)

	return lipgloss.JoinVertical(lipgloss.Left, header, confetti, body, "", m.footerView())
}

// footerView shows a tip while idle and the short help line
func (m *Model) footerView() string {
	var lines []string
	if !m.timer.State().Started() {
		if tips := m.keys.Tips(); len(tips) > 0 {
			lines = append(lines, RenderTip(tips[m.timer.Sessions()%len(tips)]))
		}
	}

	parts := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, theme.HelpShortcutStyle.Render(h.Key)+" "+theme.HelpLabelStyle.Render(h.Desc))
	}
	lines = append(lines, strings.Join(parts, theme.MutedStyle.Render(" • ")))

	return strings.Join(lines, "\n")
}
