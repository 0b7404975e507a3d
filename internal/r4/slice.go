package r4

import "math"

// minHalfWidth keeps SlabAlpha away from a zero-width slab.
const minHalfWidth = 1e-9

// SlabAlpha weights a point at coordinate w against a slab centred on w0
// with half-width half. It is 1 in the inner half of the slab, 0 at or
// beyond the edge, and falls off with a mirrored smoothstep in between.
func SlabAlpha(w, w0, half float64) float64 {
	d := math.Abs(w - w0)
	h := math.Max(minHalfWidth, half)
	inner := 0.5 * h
	if d >= h {
		return 0
	}
	if d <= inner {
		return 1
	}
	x := (d - inner) / (h - inner)
	return 1 - x*x*(3-2*x)
}
