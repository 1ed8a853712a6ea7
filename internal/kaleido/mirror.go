package kaleido

import (
	"image"

	"github.com/disintegration/imaging"
)

// SeedTile extracts rect from the canonical buffer and reorients it so it
// reads as a top-left tile: the top-right source is flipped horizontally, the
// bottom-left vertically, the bottom-right both ways. Compose can then treat
// every seed identically.
//
// An empty rect (degenerate midpoint) yields an empty tile.
func SeedTile(canonical *image.NRGBA, rect image.Rectangle, q Quadrant) *image.NRGBA {
	if rect.Empty() {
		return image.NewNRGBA(image.Rectangle{})
	}
	tile := imaging.Crop(canonical, rect)
	f := quadrantFlips[q]
	if f.horizontal {
		tile = imaging.FlipH(tile)
	}
	if f.vertical {
		tile = imaging.FlipV(tile)
	}
	return tile
}

// Compose builds the full symmetric pattern: a width x height canvas filled
// with Background, with the seed tile placed in all four corners using the
// quadrant flip table — identity at the top-left, horizontal mirror flush to
// the right edge, vertical mirror flush to the bottom edge, and the doubly
// mirrored copy at the bottom-right.
//
// The seed's size generally differs from half the canvas (the midpoint is
// arbitrary), so the copies may leave a background-colored gap around the
// center or overlap each other; overlap resolves in the fixed draw order
// above, which keeps output deterministic.
func Compose(seed *image.NRGBA, width, height int) *image.NRGBA {
	out := imaging.New(width, height, Background)
	if width <= 0 || height <= 0 {
		return out
	}
	sw, sh := seed.Bounds().Dx(), seed.Bounds().Dy()
	if sw == 0 || sh == 0 {
		return out
	}

	for _, q := range Quadrants {
		tile := seed
		f := quadrantFlips[q]
		if f.horizontal {
			tile = imaging.FlipH(tile)
		}
		if f.vertical {
			tile = imaging.FlipV(tile)
		}

		pos := image.Pt(0, 0)
		if f.horizontal {
			pos.X = width - sw
		}
		if f.vertical {
			pos.Y = height - sh
		}
		out = imaging.Paste(out, tile, pos)
	}
	return out
}
