package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/cairn/internal/domain"
	"github.com/renato0307/cairn/internal/theme"
)

// Control labels
const (
	PauseLabel  = "Pause"
	ResetLabel  = "Reset"
	ResumeLabel = "▶ Resume"
	StartLabel  = "▶ Start"
)

// TimerPanel implements ports.TimerDisplay and ports.SessionCounterDisplay.
// It only stores what it was told and renders it on View.
type TimerPanel struct {
	activeMode  string
	modes       []domain.Mode
	paused      bool
	secondsLeft int
	sessions    int
	started     bool
}

// NewTimerPanel creates a panel offering the given modes
func NewTimerPanel(modes []domain.Mode) *TimerPanel {
	return &TimerPanel{modes: modes}
}

func (p *TimerPanel) ShowControls(started bool) { p.started = started }
func (p *TimerPanel) ShowMode(name string)      { p.activeMode = name }
func (p *TimerPanel) ShowPaused(paused bool)    { p.paused = paused }
func (p *TimerPanel) ShowSessions(count int)    { p.sessions = count }
func (p *TimerPanel) ShowTime(secondsLeft int)  { p.secondsLeft = secondsLeft }

// Clock returns the countdown as MM:SS
func (p *TimerPanel) Clock() string {
	return domain.FormatClock(p.secondsLeft)
}

// PauseButtonLabel is the label of the pause/resume control
func (p *TimerPanel) PauseButtonLabel() string {
	if p.paused {
		return ResumeLabel
	}
	return PauseLabel
}

// SessionCountLabel renders the completed session count
func SessionCountLabel(count int) string {
	noun := "sessions"
	if count == 1 {
		noun = "session"
	}
	return fmt.Sprintf("🪨 %d %s today", count, noun)
}

// Controls returns the visible control labels in display order
func (p *TimerPanel) Controls() []string {
	if !p.started {
		return []string{StartLabel}
	}
	return []string{p.PauseButtonLabel(), ResetLabel}
}

// View renders mode selectors, the clock, the controls and the counter
func (p *TimerPanel) View(keys *KeyMap) string {
	var sections []string

	sections = append(sections, p.modesView(keys))
	clockStyle := theme.ClockStyle
	if p.paused {
		clockStyle = theme.ClockPausedStyle
	}
	sections = append(sections, clockStyle.Render(bigClock(p.Clock())))
	sections = append(sections, p.controlsView(keys))
	sections = append(sections, theme.SessionCountStyle.Render(SessionCountLabel(p.sessions)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (p *TimerPanel) modesView(keys *KeyMap) string {
	quick := keys.Mode.Quick.Binding.Keys()
	parts := make([]string, 0, len(p.modes))
	for i, m := range p.modes {
		label := m.Label()
		if i < len(quick) {
			label = quick[i] + " " + label
		}
		if m.Name == p.activeMode {
			parts = append(parts, theme.ModeActiveStyle.Render(label))
		} else {
			parts = append(parts, theme.ModeStyle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (p *TimerPanel) controlsView(keys *KeyMap) string {
	hints := map[string]string{
		PauseLabel:  keys.Timer.Pause.Binding.Help().Key,
		ResetLabel:  keys.Timer.Reset.Binding.Help().Key,
		ResumeLabel: keys.Timer.Pause.Binding.Help().Key,
		StartLabel:  keys.Timer.Start.Binding.Help().Key,
	}

	controls := p.Controls()
	buttons := make([]string, 0, len(controls))
	for _, label := range controls {
		buttons = append(buttons, theme.ControlStyle.Render(
			label+" "+theme.MutedStyle.Render("["+hints[label]+"]")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

// bigDigits is a 3x5 block font for the clock
var bigDigits = map[rune][5]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {"██ ", " █ ", " █ ", " █ ", "███"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "█", " ", "█", " "},
}

// bigClock renders text in the block font; unknown runes are skipped
func bigClock(text string) string {
	var rows [5][]string
	for _, r := range text {
		glyph, ok := bigDigits[r]
		if !ok {
			continue
		}
		for i := range rows {
			rows[i] = append(rows[i], glyph[i])
		}
	}

	lines := make([]string, len(rows))
	for i, parts := range rows {
		lines[i] = strings.Join(parts, " ")
	}
	return strings.Join(lines, "\n")
}
