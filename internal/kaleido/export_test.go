package kaleido

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/disintegration/imaging"
)

func TestExport_InvalidQuadrant(t *testing.T) {
	src := patternImage(t, 16, 16)
	for _, q := range []Quadrant{-1, 4, 7} {
		_, err := Export(src, Midpoint{X: 0.5, Y: 0.5}, Transform{Zoom: 1}, q)
		if !errors.Is(err, ErrInvalidQuadrant) {
			t.Errorf("quadrant %d: got %v, want ErrInvalidQuadrant", q, err)
		}
	}
}

func TestExport_EmptySourceIsEncodeFailure(t *testing.T) {
	_, err := Export(nil, Midpoint{X: 0.5, Y: 0.5}, Transform{Zoom: 1}, TopLeft)
	if !errors.Is(err, ErrEncodeFailed) {
		t.Errorf("got %v, want ErrEncodeFailed", err)
	}
}

func TestExport_RoundTripMatchesHighResRender(t *testing.T) {
	src := patternImage(t, 64, 48)
	mid := Midpoint{X: 0.4, Y: 0.6}
	tr := Transform{RotationDeg: 25, Zoom: 1.2}

	result, err := Export(src, mid, tr, BottomLeft)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("decoding export: %v", err)
	}

	direct, err := RenderQuadrant(src, mid, tr, BottomLeft, TierHighRes)
	if err != nil {
		t.Fatalf("RenderQuadrant failed: %v", err)
	}

	if !samePix(imaging.Clone(decoded), direct) {
		t.Error("decoded export differs from direct high-res render")
	}
	if result.Width != direct.Bounds().Dx() || result.Height != direct.Bounds().Dy() {
		t.Errorf("reported size %dx%d, want %v", result.Width, result.Height, direct.Bounds())
	}
}

func TestExport_NativeResolution(t *testing.T) {
	// Export never applies the preview cap.
	src := image.NewNRGBA(image.Rect(0, 0, 1500, 1100))
	result, err := Export(src, Midpoint{X: 0.5, Y: 0.5}, Transform{Zoom: 1}, TopRight)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if result.Width != 1500 || result.Height != 1100 {
		t.Errorf("export size: got %dx%d, want 1500x1100", result.Width, result.Height)
	}
}

func TestExport_SuggestedFilename(t *testing.T) {
	src := patternImage(t, 16, 16)
	result, err := Export(src, Midpoint{X: 0.5, Y: 0.5}, Transform{Zoom: 1}, BottomRight)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if len(result.Filename) == 0 {
		t.Fatal("empty filename")
	}
	if want := "refract-bottom-right-"; result.Filename[:len(want)] != want {
		t.Errorf("filename %q does not start with %q", result.Filename, want)
	}
	if ext := result.Filename[len(result.Filename)-4:]; ext != ".png" {
		t.Errorf("filename %q does not end in .png", result.Filename)
	}
}

func TestFilename(t *testing.T) {
	at := time.UnixMilli(1700000000000)
	tests := []struct {
		q    Quadrant
		want string
	}{
		{TopLeft, "refract-top-left-1700000000000.png"},
		{TopRight, "refract-top-right-1700000000000.png"},
		{BottomLeft, "refract-bottom-left-1700000000000.png"},
		{BottomRight, "refract-bottom-right-1700000000000.png"},
	}
	for _, tt := range tests {
		if got := Filename(tt.q, at); got != tt.want {
			t.Errorf("Filename(%s): got %q, want %q", tt.q, got, tt.want)
		}
	}
}
