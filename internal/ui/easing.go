package ui

import "math"

// cubicBezier returns an easing function for the CSS-style curve through
// (0,0), (x1,y1), (x2,y2), (1,1). x1 and x2 must lie in [0,1]; y values may
// leave that range to overshoot.
func cubicBezier(x1, y1, x2, y2 float64) func(t float64) float64 {
	// Polynomial coefficients of B(s) = ((a*s + b)*s + c)*s
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx

	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(s float64) float64 { return ((ax*s+bx)*s + cx) * s }
	sampleY := func(s float64) float64 { return ((ay*s+by)*s + cy) * s }
	slopeX := func(s float64) float64 { return (3*ax*s+2*bx)*s + cx }

	solve := func(x float64) float64 {
		// Newton first, bisection when the slope flattens out
		s := x
		for i := 0; i < 8; i++ {
			err := sampleX(s) - x
			if math.Abs(err) < 1e-7 {
				return s
			}
			d := slopeX(s)
			if math.Abs(d) < 1e-6 {
				break
			}
			s -= err / d
		}

		lo, hi := 0.0, 1.0
		s = x
		for i := 0; i < 64 && lo < hi; i++ {
			v := sampleX(s)
			if math.Abs(v-x) < 1e-7 {
				return s
			}
			if v < x {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
		return s
	}

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return sampleY(solve(t))
	}
}

// dropEasing settles a falling stone with a small overshoot
var dropEasing = cubicBezier(0.2, 1.6, 0.4, 1)
