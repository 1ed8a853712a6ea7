package kaleido

import (
	"image"
	"math"
)

// Midpoint is the normalized anchor point that determines where the four
// source quadrants are cut. Both coordinates are expected in [0,1];
// out-of-range values are clamped. {0.5, 0.5} is the buffer center.
type Midpoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Partition cuts a width x height buffer into four rectangles at the
// midpoint, returned in canonical order (index by Quadrant).
//
// The midpoint line lands at a real-valued coordinate; each edge coordinate
// is rounded to the nearest integer exactly once and the rectangles are built
// from those shared rounded edges. Adjacent rectangles therefore meet on
// identical pixel boundaries: the union tiles the buffer with no gap and no
// overlap. A midpoint at 0 or 1 on an axis legally yields zero-width or
// zero-height rectangles on that side.
func Partition(width, height int, mid Midpoint) [4]image.Rectangle {
	mx := int(math.Round(clamp01(mid.X) * float64(width)))
	my := int(math.Round(clamp01(mid.Y) * float64(height)))

	return [4]image.Rectangle{
		TopLeft:     image.Rect(0, 0, mx, my),
		TopRight:    image.Rect(mx, 0, width, my),
		BottomLeft:  image.Rect(0, my, mx, height),
		BottomRight: image.Rect(mx, my, width, height),
	}
}
