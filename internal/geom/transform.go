// Package geom provides 2D affine transform composition for the render
// pipeline.
//
// Transforms are represented as 3x3 homogeneous matrices so that rotation,
// uniform scale, and translation compose by plain matrix multiplication and
// can be tested as pure math, independent of any drawing layer. The screen
// coordinate convention is used throughout: the origin is at the top-left,
// X increases rightward, Y increases downward. A positive rotation angle is
// counter-clockwise as seen on screen.
package geom

import (
	"math"

	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/mat"
)

// Affine is a 2D affine transform backed by a 3x3 homogeneous matrix.
// The zero value is not useful; construct one with Identity, Translate,
// Rotate, or Scale.
type Affine struct {
	m *mat.Dense
}

// Identity returns the transform that maps every point to itself.
func Identity() Affine {
	return Affine{m: mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})}
}

// Translate returns the transform that shifts points by (tx, ty).
func Translate(tx, ty float64) Affine {
	return Affine{m: mat.NewDense(3, 3, []float64{
		1, 0, tx,
		0, 1, ty,
		0, 0, 1,
	})}
}

// Rotate returns the transform that rotates points about the origin by deg
// degrees, counter-clockwise on screen for positive values.
//
// Because screen Y grows downward, the matrix uses the sign-flipped form of
// the textbook rotation so that positive angles appear counter-clockwise to
// the viewer.
func Rotate(deg float64) Affine {
	rad := deg * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	return Affine{m: mat.NewDense(3, 3, []float64{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	})}
}

// Scale returns the transform that scales points uniformly by s about the
// origin.
func Scale(s float64) Affine {
	return Affine{m: mat.NewDense(3, 3, []float64{
		s, 0, 0,
		0, s, 0,
		0, 0, 1,
	})}
}

// Mul returns the composition a∘b: the transform that applies b first and
// then a, matching matrix-product order.
func (a Affine) Mul(b Affine) Affine {
	var out mat.Dense
	out.Mul(a.m, b.m)
	return Affine{m: &out}
}

// Apply maps the point (x, y) through the transform.
func (a Affine) Apply(x, y float64) (float64, float64) {
	m := a.m
	return m.At(0, 0)*x + m.At(0, 1)*y + m.At(0, 2),
		m.At(1, 0)*x + m.At(1, 1)*y + m.At(1, 2)
}

// Aff3 converts the transform to the 2x3 form consumed by
// golang.org/x/image/draw.
func (a Affine) Aff3() f64.Aff3 {
	m := a.m
	return f64.Aff3{
		m.At(0, 0), m.At(0, 1), m.At(0, 2),
		m.At(1, 0), m.At(1, 1), m.At(1, 2),
	}
}

// CenterTransform builds the source-to-canvas matrix for a width x height
// canvas: rotate by rotationDeg and scale by zoom, both about the canvas
// center, leaving the center itself fixed.
func CenterTransform(width, height int, rotationDeg, zoom float64) f64.Aff3 {
	cx := float64(width) / 2
	cy := float64(height) / 2
	m := Translate(cx, cy).
		Mul(Rotate(rotationDeg)).
		Mul(Scale(zoom)).
		Mul(Translate(-cx, -cy))
	return m.Aff3()
}
