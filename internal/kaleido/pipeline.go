package kaleido

import (
	"fmt"
	"image"
)

// Preview runs the full pipeline at TierPreview and returns the four
// composited patterns in canonical quadrant order. Every pattern has the
// canonical buffer's dimensions.
//
// With an absent or empty source all four patterns are zero-dimension
// buffers.
func Preview(src image.Image, mid Midpoint, tr Transform) [4]*image.NRGBA {
	canonical := Preprocess(src, tr, TierPreview)
	w, h := canonical.Bounds().Dx(), canonical.Bounds().Dy()
	rects := Partition(w, h, mid)

	var patterns [4]*image.NRGBA
	for _, q := range Quadrants {
		patterns[q] = Compose(SeedTile(canonical, rects[q], q), w, h)
	}
	return patterns
}

// RenderQuadrant runs the pipeline for a single quadrant at the given tier.
// It fails only on an invalid quadrant; an empty source renders to an empty
// pattern.
func RenderQuadrant(src image.Image, mid Midpoint, tr Transform, q Quadrant, tier Tier) (*image.NRGBA, error) {
	if !q.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuadrant, int(q))
	}
	canonical := Preprocess(src, tr, tier)
	w, h := canonical.Bounds().Dx(), canonical.Bounds().Dy()
	rects := Partition(w, h, mid)
	return Compose(SeedTile(canonical, rects[q], q), w, h), nil
}
