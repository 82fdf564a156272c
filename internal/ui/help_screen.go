package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/cairn/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string         // Pre-built help content
	height      int            // Terminal height
	initialized bool           // Track if viewport has been sized
	keys        *KeyMap        // Key bindings to display
	viewport    viewport.Model // Scrollable viewport
	width       int            // Terminal width
}

// renderShortcut renders a single shortcut line with key and description
func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

// buildHelpContent builds the complete help text content using key bindings
func buildHelpContent(keys *KeyMap) string {
	var content string

	content += theme.HelpGroupStyle.Render("Timer") + "\n"
	content += renderBinding(keys.Timer.Start.Binding)
	content += renderBinding(keys.Timer.Pause.Binding)
	content += renderBinding(keys.Timer.Reset.Binding)

	content += "\n" + theme.HelpGroupStyle.Render("Session Length") + "\n"
	content += renderBinding(keys.Mode.Quick.Binding)
	content += renderBinding(keys.Mode.Choose.Binding)
	content += renderShortcut("", "modes can only change while the timer is stopped")

	content += "\n" + theme.HelpGroupStyle.Render("Application") + "\n"
	content += renderBinding(keys.Application.Help.Binding)
	content += renderBinding(keys.Application.Quit.Binding)
	content += renderBinding(keys.Application.ForceQuit.Binding)

	content += "\n" + theme.HelpGroupStyle.Render("The Cairn (read-only)") + "\n"
	content += renderShortcut("stones", "one per completed session, the bottom one is free")
	content += renderShortcut(SessionCountLabel(1), "sessions completed since launch")
	content += renderShortcut(guidePoses["dance"][0], "the guide dances when a session completes")

	return content
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width
		h.height = msg.Height

		// Dialog header: 4 lines, Footer: 2 lines
		viewportHeight := msg.Height - 6
		if viewportHeight < 5 {
			viewportHeight = 5
		}

		h.viewport.Width = msg.Width
		h.viewport.Height = viewportHeight
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Application.Quit.Binding, h.keys.Application.Help.Binding) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	footer := lipgloss.NewStyle().Foreground(theme.ColorMuted).Padding(1, 0).
		Render("Press esc, q, h, or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}

// renderBinding renders a single shortcut line from a key binding
func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}
