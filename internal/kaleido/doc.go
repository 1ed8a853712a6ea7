// Package kaleido implements the four-fold mirror-symmetry pipeline that
// turns one rectangular raster image into a kaleidoscope pattern anchored at
// an arbitrary midpoint.
//
// # Pipeline
//
// The pipeline runs the same stages for preview and export, differing only in
// resolution tier:
//
//  1. Preprocess: rotation, zoom, and tier scaling produce the canonical
//     buffer, the image "as it will be mirrored".
//  2. Partition: the midpoint cuts the canonical buffer into four rectangles
//     that tile it exactly (TopLeft, TopRight, BottomLeft, BottomRight).
//  3. SeedTile: one rectangle is extracted and flipped so it reads as a
//     top-left tile regardless of which quadrant supplied it.
//  4. Compose: the seed tile is mirrored into all four corners of a canvas
//     the size of the canonical buffer.
//
// Preview runs stages 2-4 for all four quadrants at the capped preview
// resolution; Export runs them for a single quadrant at native resolution and
// encodes the result as a lossless PNG.
//
// # Buffers
//
// Raster buffers are *image.NRGBA values with zero-origin bounds, so
// len(Pix) == width*height*4. Every stage allocates a fresh output buffer and
// never mutates its input, which keeps repeated invocations with equal inputs
// byte-identical.
//
// # Coordinate and angle conventions
//
// (0,0) is the top-left pixel, X grows rightward, Y grows downward. Positive
// rotation angles are counter-clockwise as seen on screen. Midpoint
// coordinates are normalized to [0,1] relative to the canonical buffer.
//
// # Concurrency
//
// All functions are pure: no shared mutable state, no locks. Callers may run
// any number of pipeline invocations concurrently over the same source image.
// The package has no cancellation; callers that issue overlapping preview
// requests must discard stale results themselves.
package kaleido
