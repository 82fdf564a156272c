package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Timer styles
var (
	ClockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorClock).
			Padding(0, 2)

	ClockPausedStyle = ClockStyle.
				Foreground(ColorClockPaused)

	ControlStyle = lipgloss.NewStyle().
			Foreground(ColorControl).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	ModeStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Padding(0, 1)

	ModeActiveStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Underline(true).
			Padding(0, 1)

	SessionCountStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary)

	GroundStyle = lipgloss.NewStyle().
			Foreground(ColorGround)

	GuideStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Hint styles
var (
	HintKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHintKey).
			Bold(true)

	HintLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// FillStyle returns a style painting the foreground with a hex color
func FillStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// CellStyle paints a half-block cell: top pixel as foreground, bottom as background
func CellStyle(top, bottom string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(top)).
		Background(lipgloss.Color(bottom))
}
