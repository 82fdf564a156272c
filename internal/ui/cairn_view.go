package ui

import (
	"math"
	"strings"
	"time"

	"github.com/renato0307/cairn/internal/domain"
	"github.com/renato0307/cairn/internal/theme"
)

// DropDuration is the length of the newest stone's entrance
const DropDuration = 600 * time.Millisecond

// CairnView implements ports.CairnRenderer as a half-block drawing.
// Every RenderCairn call rebuilds the layout from scratch.
type CairnView struct {
	animate   bool
	dropStart time.Time
	dropping  bool
	layout    domain.CairnLayout
	progress  float64
}

// NewCairnView creates an empty cairn view. With animate false new stones
// appear at rest.
func NewCairnView(animate bool) *CairnView {
	return &CairnView{
		animate: animate,
		layout:  domain.LayoutCairn(nil),
	}
}

// RenderCairn lays out all stones, bottom first
func (c *CairnView) RenderCairn(stones []domain.Stone, animateLast bool) {
	c.layout = domain.LayoutCairn(stones)
	c.dropping = animateLast && c.animate && len(stones) > 0
	c.dropStart = time.Time{}
	c.progress = 0
	if !c.dropping {
		c.progress = 1
	}
}

// Animating reports whether the newest stone is still falling
func (c *CairnView) Animating() bool {
	return c.dropping
}

// Frame advances the drop. The first frame after a render starts the clock.
func (c *CairnView) Frame(now time.Time) {
	if !c.dropping {
		return
	}
	if c.dropStart.IsZero() {
		c.dropStart = now
		return
	}

	c.progress = float64(now.Sub(c.dropStart)) / float64(DropDuration)
	if c.progress >= 1 {
		c.progress = 1
		c.dropping = false
	}
}

// DropOffset is how far above its resting place the newest stone is drawn
func (c *CairnView) DropOffset() float64 {
	if !c.dropping {
		return 0
	}
	return domain.EntranceOffset(c.layout.Height) * (1 - dropEasing(c.progress))
}

// Layout returns the current layout
func (c *CairnView) Layout() domain.CairnLayout {
	return c.layout
}

// View renders the cairn above a ground line, keeping at most maxRows
// rows. maxRows <= 0 means no limit.
func (c *CairnView) View(maxRows int) string {
	dropIndex := -1
	if c.dropping {
		dropIndex = len(c.layout.Stones) - 1
	}
	lines := rasterize(c.layout, dropIndex, c.DropOffset()).render()
	if maxRows > 0 && len(lines) > maxRows {
		start := c.windowStart(len(lines), maxRows)
		lines = lines[start : start+maxRows]
	}
	lines = append(lines, groundLine(c.layout))
	return strings.Join(lines, "\n")
}

// windowStart picks the first row shown when the canvas has more rows than
// fit. The bottom rows win while the newest stone fits below a third of the
// window; after that the window follows the top of the stack and the oldest
// stones go.
func (c *CairnView) windowStart(rows, maxRows int) int {
	bottom := rows - maxRows
	if len(c.layout.Stones) == 0 {
		return bottom
	}

	newest := c.layout.Stones[len(c.layout.Stones)-1]
	top := int(math.Floor(newest.Y/canvasUnitsPerPixel)) / 2
	return clampInt(top-maxRows/3, 0, bottom)
}

// RenderCairnPreview draws a cairn at rest with empty sky trimmed, for
// output outside the TUI
func RenderCairnPreview(stones []domain.Stone) string {
	layout := domain.LayoutCairn(stones)
	grid := rasterize(layout, -1, 0)

	first := 0
	for first+2 <= len(grid) && grid.blank(first, first+2) {
		first += 2
	}
	lines := grid[first:].render()
	lines = append(lines, groundLine(layout))
	return strings.Join(lines, "\n")
}

func groundLine(layout domain.CairnLayout) string {
	cols := int(layout.Width / canvasUnitsPerPixel)
	return theme.GroundStyle.Render(strings.Repeat("▔", cols))
}
