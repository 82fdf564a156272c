package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/renato0307/cairn/internal/theme"
)

// compositeOverlay centers overlay on top of a dimmed copy of background.
// The result is at least height lines tall and every line is padded to width.
func compositeOverlay(background, overlay string, width, height int) string {
	bgLines := strings.Split(background, "\n")
	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}
	for i, line := range bgLines {
		bgLines[i] = dimLine(line, width)
	}

	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := lipgloss.Width(overlay)

	startX := max((width-overlayWidth)/2, 0)
	startY := max((height-len(overlayLines))/2, 0)
	leftPad := strings.Repeat(" ", startX)

	for i, line := range overlayLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		rightPad := max(width-startX-lipgloss.Width(line), 0)
		bgLines[y] = leftPad + line + strings.Repeat(" ", rightPad)
	}

	return strings.Join(bgLines, "\n")
}

// dimLine drops a line's colors, greys it and pads it to width
func dimLine(line string, width int) string {
	plain := ansi.Strip(line)
	if pad := width - lipgloss.Width(plain); pad > 0 {
		plain += strings.Repeat(" ", pad)
	}
	return theme.MutedStyle.Render(plain)
}
