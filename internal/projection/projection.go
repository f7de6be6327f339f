// Package projection implements the non-affine remaps: perspective quad warp
// and the spherical, fisheye and polar lens remaps.
//
// Every remap samples its source with clipped edges, leaves exposed regions
// transparent and keeps the canvas size of its input.
package projection

import (
	"errors"

	"github.com/gogpu/gg-compose/internal/enum"
	"github.com/gogpu/gg-compose/internal/image"
)

// ErrDegenerateQuad is returned when the perspective corners do not span an area.
var ErrDegenerateQuad = errors.New("projection: degenerate quadrilateral")

// Projection selects the remap applied by Apply.
type Projection uint8

const (
	// Normal applies no remap.
	Normal Projection = iota

	// Perspective warps the canvas rectangle onto a quadrilateral.
	Perspective

	// Spherical bulges the central disk with a quadratic radial profile.
	Spherical

	// Fisheye bulges the central disk with a circular radial profile.
	Fisheye

	// Polar unwraps the image into a disk: angle runs along source x and
	// radius along source y.
	Polar
)

var projectionNames = []string{"NORMAL", "PERSPECTIVE", "SPHERICAL", "FISHEYE", "POLAR"}

// Parse returns the projection with the given name.
func Parse(name string) (Projection, error) {
	return enum.Parse[Projection]("projection", projectionNames, name)
}

// String returns the canonical name of the projection.
func (p Projection) String() string { return enum.Name(projectionNames, p) }

// IsValid reports whether p is a known projection.
func (p Projection) IsValid() bool { return enum.Valid(projectionNames, p) }

// MarshalText implements encoding.TextMarshaler.
func (p Projection) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Projection) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Quad holds the destination corners of a perspective warp as fractions of
// the canvas, in the order top-left, top-right, bottom-right, bottom-left.
type Quad [4][2]float64

// IdentityQuad maps the canvas onto itself.
var IdentityQuad = Quad{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// Params configures Apply.
type Params struct {
	Kind     Projection
	Corners  Quad
	Strength float64
	Interp   image.Interpolation
}

// Apply runs the remap selected by p.Kind. The result is scaled back to the
// size of src; a Normal projection returns a copy.
func Apply(src *image.Buffer, p Params) (*image.Buffer, error) {
	var (
		dst *image.Buffer
		err error
	)
	switch p.Kind {
	case Normal:
		return src.Clone(), nil
	case Perspective:
		dst, err = Warp(src, p.Corners, p.Interp)
	case Spherical:
		dst, err = Sphere(src, p.Strength, p.Interp)
	case Fisheye:
		dst, err = FisheyeRemap(src, p.Strength, p.Interp)
	case Polar:
		dst, err = PolarRemap(src, p.Interp)
	default:
		return nil, image.ErrUnknownMode
	}
	if err != nil {
		return nil, err
	}
	return image.Fit(dst, src.Width(), src.Height(), image.ScaleFit, p.Interp, image.Transparent)
}
