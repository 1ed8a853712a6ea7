// Package source manages the original uploaded image: decoding, caching, and
// the small inspection helpers the interactive UI needs while the user places
// the midpoint crosshair.
//
// The render pipeline in internal/kaleido never touches the filesystem; this
// package is where file paths stop and decoded image.Image values begin.
//
// # Thread Safety
//
// Cache is safe for concurrent use. Decoded images are treated as read-only
// by every consumer, so any number of pipeline runs may share one cached
// image.
package source
