package kaleido

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	guideColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	labelColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	labelBack  = color.NRGBA{R: 0, G: 0, B: 0, A: 180}
)

// Guides returns a copy of the canonical buffer with the quadrant cut lines,
// a crosshair at the midpoint, and a label in each quadrant. It exists for
// the interactive UI's benefit (showing where the mirror axes fall) and is
// never part of the render pipeline itself.
func Guides(canonical *image.NRGBA, mid Midpoint) *image.NRGBA {
	b := canonical.Bounds()
	w, h := b.Dx(), b.Dy()

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), canonical, b.Min, draw.Src)
	if w == 0 || h == 0 {
		return out
	}

	rects := Partition(w, h, mid)
	mx := rects[TopLeft].Max.X
	my := rects[TopLeft].Max.Y

	// Cut lines. The vertical line sits on the first column of the right-hand
	// rectangles, matching how Partition assigns boundary pixels.
	if mx >= 0 && mx < w {
		for y := 0; y < h; y++ {
			out.SetNRGBA(mx, y, guideColor)
		}
	}
	if my >= 0 && my < h {
		for x := 0; x < w; x++ {
			out.SetNRGBA(x, my, guideColor)
		}
	}

	drawCrosshair(out, mx, my)

	for _, q := range Quadrants {
		if r := rects[q]; !r.Empty() {
			drawLabel(out, r.Min.X+4, r.Min.Y+14, q.String())
		}
	}
	return out
}

// crosshairArm is the arm length of the midpoint marker, in pixels.
const crosshairArm = 8

func drawCrosshair(img *image.NRGBA, cx, cy int) {
	b := img.Bounds()
	for d := -crosshairArm; d <= crosshairArm; d++ {
		if p := image.Pt(cx+d, cy); p.In(b) {
			img.SetNRGBA(p.X, p.Y, guideColor)
		}
		if p := image.Pt(cx, cy+d); p.In(b) {
			img.SetNRGBA(p.X, p.Y, guideColor)
		}
	}
}

// drawLabel renders text at the given baseline position using the fixed 7x13
// face, over a dimmed backing box so it stays readable on any image.
func drawLabel(img *image.NRGBA, x, y int, text string) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()

	box := image.Rect(x-2, y-face.Ascent-1, x+width+2, y+face.Descent+1)
	draw.Draw(img, box.Intersect(img.Bounds()), image.NewUniform(labelBack), image.Point{}, draw.Over)

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
