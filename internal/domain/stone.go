package domain

// Stone is one block of the cairn, in canvas units
type Stone struct {
	CornerRadius float64
	Fill         string
	Height       float64
	Width        float64
}

// StoneShape is a width/height/corner-radius preset
type StoneShape struct {
	CornerRadius float64
	Height       float64
	Width        float64
}

// StoneShapes and StoneFills are independent cyclic palettes.
// Stone i takes StoneShapes[i%len] and StoneFills[i%len].
var (
	StoneShapes = []StoneShape{
		{Width: 90, Height: 20, CornerRadius: 10},
		{Width: 78, Height: 18, CornerRadius: 9},
		{Width: 86, Height: 22, CornerRadius: 11},
		{Width: 70, Height: 17, CornerRadius: 8},
		{Width: 82, Height: 19, CornerRadius: 9},
		{Width: 74, Height: 21, CornerRadius: 10},
	}

	StoneFills = []string{
		"#a8a29e", "#8d8580", "#c4c0bc", "#78716c", "#b8b2ae", "#6a6460",
	}
)

// PickStone returns the stone for position i (0 = bottom of the cairn).
// It is a pure function of i.
func PickStone(i int) Stone {
	shape := StoneShapes[paletteIndex(i, len(StoneShapes))]
	return Stone{
		CornerRadius: shape.CornerRadius,
		Fill:         StoneFills[paletteIndex(i, len(StoneFills))],
		Height:       shape.Height,
		Width:        shape.Width,
	}
}

// paletteIndex maps i onto [0, n). Negative positions mirror positive ones.
func paletteIndex(i, n int) int {
	r := i % n
	if r < 0 {
		return -r
	}
	return r
}

// StonePatternPeriod is the number of stones after which the shape and
// fill combination repeats
func StonePatternPeriod() int {
	return lcm(len(StoneShapes), len(StoneFills))
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return a / gcd(a, b) * b
}

// Cairn is the append-only stack of stones, oldest (bottom) first
type Cairn struct {
	stones []Stone
}

// NewCairn returns a cairn holding its first stone
func NewCairn() *Cairn {
	return &Cairn{stones: []Stone{PickStone(0)}}
}

// Append adds the next stone in the pattern and returns it
func (c *Cairn) Append() Stone {
	st := PickStone(len(c.stones))
	c.stones = append(c.stones, st)
	return st
}

// Len returns the number of stones
func (c *Cairn) Len() int {
	return len(c.stones)
}

// Stones returns a copy of the stones, bottom first
func (c *Cairn) Stones() []Stone {
	out := make([]Stone, len(c.stones))
	copy(out, c.stones)
	return out
}
