package source

import (
	"fmt"
	"image"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA holds 8-bit color components including alpha.
type RGBA struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// HSL holds a color in hue/saturation/lightness form, the representation the
// UI uses for its color readout.
type HSL struct {
	H float64 `json:"h"` // 0-360 degrees
	S float64 `json:"s"` // 0-1
	L float64 `json:"l"` // 0-1
}

// ColorSample is the color under a pixel coordinate in the formats the UI
// consumes.
type ColorSample struct {
	Hex  string `json:"hex"` // "#rrggbb", alpha excluded
	RGBA RGBA   `json:"rgba"`
	HSL  HSL    `json:"hsl"`
}

// SampleColor reads the color at (x, y). The UI calls this as the crosshair
// moves so the user can see what the mirror axes are anchored on.
//
// Coordinates are 0-based from the top-left; out-of-bounds coordinates are an
// error.
func SampleColor(img image.Image, x, y int) (*ColorSample, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	r, g, b, a := img.At(x, y).RGBA()
	r8, g8, b8, a8 := uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)

	c := colorful.Color{R: float64(r8) / 255, G: float64(g8) / 255, B: float64(b8) / 255}
	h, s, l := c.Hsl()

	return &ColorSample{
		Hex:  c.Hex(),
		RGBA: RGBA{R: r8, G: g8, B: b8, A: a8},
		HSL:  HSL{H: h, S: s, L: l},
	}, nil
}
