package kaleido

import (
	"image"
	"image/color"
	"testing"
)

// fillImage creates a solid-color test image.
func fillImage(t *testing.T, width, height int, c color.NRGBA) *image.NRGBA {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// patternImage creates a test image with a distinct solid color per quadrant:
// red top-left, green top-right, blue bottom-left, white bottom-right.
func patternImage(t *testing.T, width, height int) *image.NRGBA {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.NRGBA
			switch {
			case x < width/2 && y < height/2:
				c = color.NRGBA{255, 0, 0, 255}
			case x >= width/2 && y < height/2:
				c = color.NRGBA{0, 255, 0, 255}
			case x < width/2:
				c = color.NRGBA{0, 0, 255, 255}
			default:
				c = color.NRGBA{255, 255, 255, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestPreprocess_NilImage(t *testing.T) {
	out := Preprocess(nil, Transform{Zoom: 1}, TierPreview)
	if out == nil {
		t.Fatal("Preprocess(nil) returned nil, want empty buffer")
	}
	if out.Bounds().Dx() != 0 || out.Bounds().Dy() != 0 {
		t.Errorf("dimensions: got %v, want zero", out.Bounds())
	}
}

func TestPreprocess_EmptyImage(t *testing.T) {
	out := Preprocess(image.NewNRGBA(image.Rectangle{}), Transform{Zoom: 1}, TierHighRes)
	if out.Bounds().Dx() != 0 || out.Bounds().Dy() != 0 {
		t.Errorf("dimensions: got %v, want zero", out.Bounds())
	}
}

func TestPreprocess_PreviewCap(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"wide landscape", 4000, 2000, 1024, 512},
		{"portrait", 2000, 4000, 512, 1024},
		{"under cap unchanged", 800, 600, 800, 600},
		{"exactly at cap", 1024, 768, 1024, 768},
		// Each axis rounds independently; the near-square case drifts to an
		// exact square, which is the documented per-axis rounding behavior.
		{"per-axis rounding", 2049, 2048, 1024, 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewNRGBA(image.Rect(0, 0, tt.w, tt.h))
			out := Preprocess(src, Transform{Zoom: 1}, TierPreview)
			if out.Bounds().Dx() != tt.wantW || out.Bounds().Dy() != tt.wantH {
				t.Errorf("dimensions: got %dx%d, want %dx%d",
					out.Bounds().Dx(), out.Bounds().Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestPreprocess_PreviewAspectWithinOnePixel(t *testing.T) {
	sizes := []struct{ w, h int }{
		{4000, 2000}, {3000, 1001}, {1365, 2048}, {2049, 2048},
	}
	for _, sz := range sizes {
		src := image.NewNRGBA(image.Rect(0, 0, sz.w, sz.h))
		out := Preprocess(src, Transform{Zoom: 1}, TierPreview)
		w, h := out.Bounds().Dx(), out.Bounds().Dy()

		// Height predicted by the output width and the original aspect ratio
		// must match the actual height to within a pixel.
		predicted := float64(w) * float64(sz.h) / float64(sz.w)
		if diff := predicted - float64(h); diff > 1 || diff < -1 {
			t.Errorf("%dx%d: aspect drift %g pixels (got %dx%d)", sz.w, sz.h, diff, w, h)
		}
	}
}

func TestPreprocess_HighResKeepsNativeSize(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3000, 1400))
	out := Preprocess(src, Transform{Zoom: 1}, TierHighRes)
	if out.Bounds().Dx() != 3000 || out.Bounds().Dy() != 1400 {
		t.Errorf("dimensions: got %v, want 3000x1400", out.Bounds())
	}
}

func TestPreprocess_IdentityTransformCopiesPixels(t *testing.T) {
	src := patternImage(t, 40, 40)
	out := Preprocess(src, Transform{RotationDeg: 0, Zoom: 1}, TierHighRes)

	for _, p := range []struct {
		x, y int
		want color.NRGBA
	}{
		{10, 10, color.NRGBA{255, 0, 0, 255}},
		{30, 10, color.NRGBA{0, 255, 0, 255}},
		{10, 30, color.NRGBA{0, 0, 255, 255}},
		{30, 30, color.NRGBA{255, 255, 255, 255}},
	} {
		if got := out.NRGBAAt(p.x, p.y); got != p.want {
			t.Errorf("pixel (%d,%d): got %v, want %v", p.x, p.y, got, p.want)
		}
	}
}

func TestPreprocess_RotationShowsBackgroundInCorners(t *testing.T) {
	src := fillImage(t, 100, 100, color.NRGBA{255, 0, 0, 255})
	out := Preprocess(src, Transform{RotationDeg: 45, Zoom: 1}, TierHighRes)

	if got := out.NRGBAAt(0, 0); got != Background {
		t.Errorf("corner (0,0): got %v, want background %v", got, Background)
	}
	if got := out.NRGBAAt(99, 99); got != Background {
		t.Errorf("corner (99,99): got %v, want background %v", got, Background)
	}
	// The center stays covered by the source.
	if got := out.NRGBAAt(50, 50); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("center: got %v, want red", got)
	}
}

func TestPreprocess_ZoomOutShowsBackgroundAtEdges(t *testing.T) {
	src := fillImage(t, 100, 100, color.NRGBA{0, 255, 0, 255})
	out := Preprocess(src, Transform{RotationDeg: 0, Zoom: 0.5}, TierHighRes)

	if got := out.NRGBAAt(1, 1); got != Background {
		t.Errorf("edge: got %v, want background", got)
	}
	if got := out.NRGBAAt(50, 50); got != (color.NRGBA{0, 255, 0, 255}) {
		t.Errorf("center: got %v, want green", got)
	}
}

func TestPreprocess_NonPositiveZoomTreatedAsOne(t *testing.T) {
	src := patternImage(t, 40, 40)
	want := Preprocess(src, Transform{Zoom: 1}, TierHighRes)
	got := Preprocess(src, Transform{Zoom: 0}, TierHighRes)

	if !samePix(got, want) {
		t.Error("zoom 0 should render identically to zoom 1")
	}
}

func TestPreprocess_DoesNotMutateSource(t *testing.T) {
	src := patternImage(t, 40, 40)
	before := append([]uint8(nil), src.Pix...)

	Preprocess(src, Transform{RotationDeg: 30, Zoom: 1.5}, TierHighRes)

	for i := range before {
		if src.Pix[i] != before[i] {
			t.Fatal("Preprocess mutated its source image")
		}
	}
}

// samePix reports whether two buffers have equal dimensions and pixel bytes.
func samePix(a, b *image.NRGBA) bool {
	if a.Bounds() != b.Bounds() || len(a.Pix) != len(b.Pix) {
		return false
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			return false
		}
	}
	return true
}
