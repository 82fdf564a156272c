package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "#e07b39" // Ember - app name, active mode
	ColorSecondary Color = "#a8a29e" // Stone - subtitles
)

// Timer colors
const (
	ColorClock       Color = "#fdf0e8" // Warm white - countdown digits
	ColorClockPaused Color = "#78716c" // Dim stone - paused countdown
	ColorControl     Color = "#d6d3d1" // Control labels
	ColorGround      Color = "#57534e" // Baseline under the cairn
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorHelpGroup Color = "#e07b39"
	ColorHintKey   Color = "226" // Yellow - key hints
)
