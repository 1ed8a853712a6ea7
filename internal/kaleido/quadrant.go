package kaleido

import "fmt"

// Quadrant identifies one of the four regions the midpoint cuts the canonical
// buffer into. The numeric values are part of the external contract: they are
// used as array indices, wire-level quadrant indices, and in export
// filenames, always in the order TopLeft, TopRight, BottomLeft, BottomRight.
type Quadrant int

const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
)

// Quadrants lists all quadrants in canonical order, for ranging.
var Quadrants = [4]Quadrant{TopLeft, TopRight, BottomLeft, BottomRight}

// quadrantFlips maps a quadrant to the mirror operations that relate it to
// the top-left position. The same table drives both seed extraction (flip a
// quadrant into top-left orientation) and compositing (flip the seed back out
// to each corner).
var quadrantFlips = [4]struct {
	horizontal bool
	vertical   bool
}{
	TopLeft:     {false, false},
	TopRight:    {true, false},
	BottomLeft:  {false, true},
	BottomRight: {true, true},
}

// Valid reports whether q is one of the four defined quadrants.
func (q Quadrant) Valid() bool {
	return q >= TopLeft && q <= BottomRight
}

// String returns the hyphenated label used in tool results and export
// filenames.
func (q Quadrant) String() string {
	switch q {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	}
	return fmt.Sprintf("quadrant(%d)", int(q))
}

// ParseQuadrant converts a label ("top-left", "bottom-right", ...) to its
// Quadrant.
func ParseQuadrant(label string) (Quadrant, error) {
	for _, q := range Quadrants {
		if q.String() == label {
			return q, nil
		}
	}
	return 0, fmt.Errorf("unknown quadrant label: %q", label)
}
