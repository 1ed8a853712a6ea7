package source

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestSampleColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(1, 2, color.NRGBA{255, 0, 0, 255})

	sample, err := SampleColor(img, 1, 2)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if sample.Hex != "#ff0000" {
		t.Errorf("hex: got %s, want #ff0000", sample.Hex)
	}
	if sample.RGBA != (RGBA{R: 255, G: 0, B: 0, A: 255}) {
		t.Errorf("rgba: got %+v", sample.RGBA)
	}
	if sample.HSL.H != 0 || sample.HSL.S != 1 || math.Abs(sample.HSL.L-0.5) > 0.01 {
		t.Errorf("hsl: got %+v, want hue 0, sat 1, lightness ~0.5", sample.HSL)
	}
}

func TestSampleColor_Gray(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{128, 128, 128, 255})

	sample, err := SampleColor(img, 0, 0)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if sample.HSL.S != 0 {
		t.Errorf("gray saturation: got %g, want 0", sample.HSL.S)
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x at width", 4, 0},
		{"y at height", 0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SampleColor(img, tt.x, tt.y); err == nil {
				t.Error("SampleColor should fail out of bounds")
			}
		})
	}
}
