package ui

import (
	"math"
	"strings"

	"github.com/renato0307/cairn/internal/domain"
	"github.com/renato0307/cairn/internal/theme"
)

// canvasUnitsPerPixel maps cairn canvas units onto terminal pixels.
// Each terminal cell holds two pixels stacked vertically.
const canvasUnitsPerPixel = 5.0

// pixelGrid holds one fill color per pixel, "" for empty
type pixelGrid [][]string

// rasterize samples the layout at each pixel center. The stone at
// dropIndex is drawn dropOffset units above its resting place; pass -1 to
// draw everything at rest. Later stones paint over earlier ones.
func rasterize(layout domain.CairnLayout, dropIndex int, dropOffset float64) pixelGrid {
	cols := int(math.Ceil(layout.Width / canvasUnitsPerPixel))
	rows := int(math.Ceil(layout.Height / canvasUnitsPerPixel))
	if rows%2 == 1 {
		rows++
	}

	grid := make(pixelGrid, rows)
	for r := range grid {
		grid[r] = make([]string, cols)
	}

	for i, st := range layout.Stones {
		if i == dropIndex {
			st.Y -= dropOffset
		}
		paintStone(grid, st)
	}
	return grid
}

func paintStone(grid pixelGrid, st domain.PlacedStone) {
	if len(grid) == 0 {
		return
	}
	cols := len(grid[0])

	firstRow := clampInt(int(math.Floor(st.Y/canvasUnitsPerPixel)), 0, len(grid))
	lastRow := clampInt(int(math.Ceil((st.Y+st.Height)/canvasUnitsPerPixel)), 0, len(grid))
	firstCol := clampInt(int(math.Floor(st.X/canvasUnitsPerPixel)), 0, cols)
	lastCol := clampInt(int(math.Ceil((st.X+st.Width)/canvasUnitsPerPixel)), 0, cols)

	for r := firstRow; r < lastRow; r++ {
		y := (float64(r) + 0.5) * canvasUnitsPerPixel
		for c := firstCol; c < lastCol; c++ {
			x := (float64(c) + 0.5) * canvasUnitsPerPixel
			if stoneContains(st, x, y) {
				grid[r][c] = st.Fill
			}
		}
	}
}

// stoneContains reports whether a canvas point lies inside the stone's
// rounded rectangle
func stoneContains(st domain.PlacedStone, x, y float64) bool {
	if x < st.X || x > st.X+st.Width || y < st.Y || y > st.Y+st.Height {
		return false
	}
	r := math.Min(st.CornerRadius, math.Min(st.Width, st.Height)/2)
	cx := math.Max(st.X+r, math.Min(x, st.X+st.Width-r))
	cy := math.Max(st.Y+r, math.Min(y, st.Y+st.Height-r))
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}

// render turns pixel pairs into half-block cells, one string per cell row
func (g pixelGrid) render() []string {
	lines := make([]string, 0, len(g)/2)
	for r := 0; r+1 < len(g); r += 2 {
		var b strings.Builder
		for c := range g[r] {
			b.WriteString(halfBlock(g[r][c], g[r+1][c]))
		}
		lines = append(lines, b.String())
	}
	return lines
}

func halfBlock(top, bottom string) string {
	switch {
	case top == "" && bottom == "":
		return " "
	case bottom == "":
		return theme.FillStyle(top).Render("▀")
	case top == "":
		return theme.FillStyle(bottom).Render("▄")
	case top == bottom:
		return theme.FillStyle(top).Render("█")
	default:
		return theme.CellStyle(top, bottom).Render("▀")
	}
}

// blank reports whether no pixel in rows [from, to) is painted
func (g pixelGrid) blank(from, to int) bool {
	for r := from; r < to && r < len(g); r++ {
		for _, px := range g[r] {
			if px != "" {
				return false
			}
		}
	}
	return true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
