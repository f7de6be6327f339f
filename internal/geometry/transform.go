// Package geometry implements the whole-canvas geometric stages: affine
// transform, mirror and tiling.
//
// Every stage inverse-maps destination pixels into the source and keeps the
// canvas size of its input.
package geometry

import (
	"math"

	"github.com/gogpu/gg-compose/internal/image"
)

// MinScale is the smallest scale magnitude accepted by Transform. Smaller
// factors are clamped to it with the sign preserved.
const MinScale = 0.001

// Params describes an affine transform about the canvas center.
type Params struct {
	// Offset translates the result, as a fraction of the canvas size.
	Offset [2]float64

	// Angle rotates the image counter-clockwise on screen, in degrees.
	Angle float64

	// Scale multiplies the image size along x and y.
	Scale [2]float64

	// Interp selects the resampling kernel.
	Interp image.Interpolation

	// Edge resolves samples that fall outside the source.
	Edge image.EdgeMode

	// Fill colors clipped samples.
	Fill image.Color
}

// Identity returns parameters that leave an image unchanged.
func Identity() Params {
	return Params{Scale: [2]float64{1, 1}, Interp: image.InterpLinear}
}

// clampScale keeps a scale factor away from zero.
func clampScale(s float64) float64 {
	if math.Abs(s) >= MinScale {
		return s
	}
	if s < 0 {
		return -MinScale
	}
	return MinScale
}

// Matrix returns the forward transform for a width×height canvas:
// scale and rotation about the center, followed by the pixel offset.
func Matrix(width, height int, p Params) image.Affine {
	cx := float64(width-1) / 2
	cy := float64(height-1) / 2
	sx := clampScale(p.Scale[0])
	sy := clampScale(p.Scale[1])
	theta := -p.Angle * math.Pi / 180

	return image.Translate(p.Offset[0]*float64(width), p.Offset[1]*float64(height)).
		Multiply(image.About(cx, cy, image.Rotate(theta).Multiply(image.Scale(sx, sy))))
}

// Transform resamples src through the affine transform described by p.
// The result has the size and format of src.
func Transform(src *image.Buffer, p Params) (*image.Buffer, error) {
	w, h := src.Bounds()
	fwd := Matrix(w, h, p)
	if fwd.IsIdentity() {
		return src.Clone(), nil
	}

	inv, ok := fwd.Invert()
	if !ok {
		// Unreachable with clamped scales; fall back to an unchanged copy.
		return src.Clone(), nil
	}

	return image.Remap(src, w, h, p.Interp, p.Edge, p.Fill, func(x, y float64) (float64, float64, bool) {
		sx, sy := inv.Apply(x, y)
		return sx, sy, true
	})
}
