package kaleido

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"

	"github.com/TGALLOWAY1/Refract/internal/geom"
)

// Tier selects the resolution the pipeline works at.
type Tier int

const (
	// TierPreview caps the canonical buffer's longer side at PreviewMaxDim,
	// trading fidelity for interactive speed.
	TierPreview Tier = iota

	// TierHighRes keeps the source's native resolution, for export.
	TierHighRes
)

// PreviewMaxDim is the cap on the canonical buffer's longer side at
// TierPreview.
const PreviewMaxDim = 1024

// Background is the fill color that shows wherever rotation, zoom, or an
// off-center midpoint leaves canvas uncovered by source pixels. It is a fixed
// part of the visible contract, shared by Preprocess and Compose.
var Background = color.NRGBA{R: 31, G: 41, B: 55, A: 255}

// Transform holds the user-controlled view parameters applied before
// mirroring.
type Transform struct {
	// RotationDeg rotates the image about the canvas center. Positive values
	// are counter-clockwise on screen. The range is not restricted.
	RotationDeg float64

	// Zoom scales the image uniformly about the canvas center. 1.0 is no
	// zoom, larger values magnify (crop in). Non-positive values are treated
	// as 1.0.
	Zoom float64
}

// Preprocess produces the canonical buffer: the source image scaled to the
// tier's working dimensions, then rotated and zoomed about the canvas center
// onto a Background-filled canvas of those same dimensions.
//
// A nil or zero-sized source yields a zero-dimension buffer; downstream
// stages treat that as "nothing to render".
func Preprocess(src image.Image, tr Transform, tier Tier) *image.NRGBA {
	if src == nil {
		return image.NewNRGBA(image.Rectangle{})
	}
	ow, oh := src.Bounds().Dx(), src.Bounds().Dy()
	if ow == 0 || oh == 0 {
		return image.NewNRGBA(image.Rectangle{})
	}

	ww, wh := workingSize(ow, oh, tier)

	var base image.Image
	if ww != ow || wh != oh {
		base = transform.Resize(src, ww, wh, transform.Linear)
	} else {
		base = imaging.Clone(src)
	}

	zoom := tr.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	if tr.RotationDeg == 0 && zoom == 1 {
		return imaging.Paste(imaging.New(ww, wh, Background), base, image.Pt(0, 0))
	}

	canvas := imaging.New(ww, wh, Background)
	m := geom.CenterTransform(ww, wh, tr.RotationDeg, zoom)
	resampler(tier).Transform(canvas, m, base, base.Bounds(), xdraw.Src, nil)
	return canvas
}

// workingSize computes the canonical dimensions for a tier. At TierPreview a
// source whose longer side exceeds PreviewMaxDim is scaled down so that side
// equals the cap; each axis is rounded to the nearest integer independently,
// which keeps the aspect ratio within a single pixel of the original.
func workingSize(ow, oh int, tier Tier) (int, int) {
	if tier != TierPreview {
		return ow, oh
	}
	longer := ow
	if oh > longer {
		longer = oh
	}
	if longer <= PreviewMaxDim {
		return ow, oh
	}
	s := float64(PreviewMaxDim) / float64(longer)
	return int(math.Round(float64(ow) * s)), int(math.Round(float64(oh) * s))
}

// resampler selects the interpolation kernel for the affine draw: a fast
// bilinear approximation for interactive previews, Catmull-Rom for export
// fidelity.
func resampler(tier Tier) xdraw.Transformer {
	if tier == TierHighRes {
		return xdraw.CatmullRom
	}
	return xdraw.ApproxBiLinear
}
