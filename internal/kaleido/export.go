package kaleido

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"time"
)

var (
	// ErrInvalidQuadrant reports a quadrant index outside {0,1,2,3}.
	ErrInvalidQuadrant = errors.New("invalid quadrant index")

	// ErrEncodeFailed reports that PNG encoding produced no usable output.
	ErrEncodeFailed = errors.New("png encoding failed")
)

// ExportResult is a fully encoded export: the PNG bytes, the suggested
// download filename, and the pattern dimensions.
type ExportResult struct {
	Data     []byte
	Filename string
	Width    int
	Height   int
}

// Export renders the selected quadrant's pattern at native resolution and
// encodes it as a maximally compressed, lossless PNG. The byte stream is only
// returned once fully produced; no partial output ever escapes.
//
// Fails with ErrInvalidQuadrant for an index outside {0,1,2,3} and with
// ErrEncodeFailed when the encoder yields no bytes (including the degenerate
// zero-sized pattern produced by an empty source image).
func Export(src image.Image, mid Midpoint, tr Transform, q Quadrant) (*ExportResult, error) {
	pattern, err := RenderQuadrant(src, mid, tr, q, TierHighRes)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, pattern); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}
	if buf.Len() == 0 {
		return nil, ErrEncodeFailed
	}

	return &ExportResult{
		Data:     buf.Bytes(),
		Filename: Filename(q, time.Now()),
		Width:    pattern.Bounds().Dx(),
		Height:   pattern.Bounds().Dy(),
	}, nil
}

// Filename builds the deterministic suggested name for an export produced at
// the given instant: refract-<quadrant-label>-<unix-epoch-millis>.png.
func Filename(q Quadrant, at time.Time) string {
	return fmt.Sprintf("refract-%s-%d.png", q, at.UnixMilli())
}
