package domain

// Canvas geometry for the cairn, in canvas units
const (
	CairnCanvasWidth     = 120.0
	CairnMinCanvasHeight = 160.0
	CairnStoneGap        = 3.0
	CairnCanvasMargin    = 16.0
	CairnBaselineInset   = 8.0
)

// PlacedStone is a stone with its resting top-left corner on the canvas
type PlacedStone struct {
	Stone
	X float64
	Y float64
}

// CairnLayout is the full canvas for one render of the cairn
type CairnLayout struct {
	Height float64
	Stones []PlacedStone
	Width  float64
}

// LayoutCairn places stones bottom-up, each centered horizontally with a
// fixed gap. The canvas grows with the stack and never drops below
// CairnMinCanvasHeight, so no stone is clipped.
func LayoutCairn(stones []Stone) CairnLayout {
	total := CairnCanvasMargin
	for _, st := range stones {
		total += st.Height + CairnStoneGap
	}
	height := CairnMinCanvasHeight
	if total > height {
		height = total
	}

	placed := make([]PlacedStone, 0, len(stones))
	y := height - CairnBaselineInset
	for _, st := range stones {
		y -= st.Height
		placed = append(placed, PlacedStone{
			Stone: st,
			X:     (CairnCanvasWidth - st.Width) / 2,
			Y:     y,
		})
		y -= CairnStoneGap
	}

	return CairnLayout{
		Height: height,
		Stones: placed,
		Width:  CairnCanvasWidth,
	}
}

// EntranceOffset is how far above its resting place a newly added stone
// starts its drop, for a canvas of the given height
func EntranceOffset(canvasHeight float64) float64 {
	return canvasHeight + 40
}
