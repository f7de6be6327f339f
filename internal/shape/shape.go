// Package shape rasterizes anti-aliased coverage masks for simple shapes and
// polygonal crops.
//
// Shape coordinates are continuous canvas coordinates: pixel (x, y) covers
// the unit square [x, x+1) × [y, y+1), so a rectangle spanning [0, w] × [0, h]
// covers every pixel fully.
package shape

import (
	stdimage "image"
	"image/color"
	"math"

	"github.com/gogpu/gg-compose/internal/enum"
	"github.com/gogpu/gg-compose/internal/image"
	"golang.org/x/image/vector"
)

// Kind selects a generated shape.
type Kind uint8

const (
	Circle Kind = iota
	Square
	Ellipse
	Rectangle
	Polygon
)

var kindNames = []string{"CIRCLE", "SQUARE", "ELLIPSE", "RECTANGLE", "POLYGON"}

// ParseKind returns the shape kind with the given name.
func ParseKind(name string) (Kind, error) {
	return enum.Parse[Kind]("shape", kindNames, name)
}

// String returns the canonical name of the kind.
func (k Kind) String() string { return enum.Name(kindNames, k) }

// IsValid reports whether k is a known shape kind.
func (k Kind) IsValid() bool { return enum.Valid(kindNames, k) }

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// MinSides and MaxSides bound the side count of a regular polygon.
const (
	MinSides = 3
	MaxSides = 100
)

// Fill returns the coverage of the closed polygon pts on a width×height
// canvas as a Gray8 buffer (0 outside, 255 fully inside). Overlapping
// subpaths follow the non-zero winding rule.
func Fill(width, height int, pts [][2]float64) (*image.Buffer, error) {
	return rasterize(width, height, func(r *vector.Rasterizer) {
		addPolygon(r, pts)
	})
}

// Mask renders a centered shape of the given kind. size is a fraction of
// the canvas: (1, 1) spans the full width and height. SQUARE and CIRCLE use
// size[0] on both axes, POLYGON uses size[0] as the fraction of the shorter
// side covered by its circumscribed circle.
func Mask(kind Kind, width, height int, size [2]float64, sides int) (*image.Buffer, error) {
	w, h := float64(width), float64(height)
	cx, cy := w/2, h/2
	sx, sy := math.Abs(size[0]), math.Abs(size[1])

	switch kind {
	case Circle:
		r := sx * math.Min(w, h) / 2
		return ellipseMask(width, height, cx, cy, r, r)
	case Ellipse:
		return ellipseMask(width, height, cx, cy, sx*w/2, sy*h/2)
	case Square:
		half := sx * math.Min(w, h) / 2
		return Fill(width, height, rect(cx-half, cy-half, cx+half, cy+half))
	case Rectangle:
		return Fill(width, height, rect(cx-sx*w/2, cy-sy*h/2, cx+sx*w/2, cy+sy*h/2))
	case Polygon:
		sides = max(MinSides, min(sides, MaxSides))
		return Fill(width, height, Regular(cx, cy, sx*math.Min(w, h)/2, sides))
	default:
		return nil, image.ErrUnknownMode
	}
}

// Regular returns the vertices of a regular polygon with circumradius r
// centered at (cx, cy), first vertex pointing up.
func Regular(cx, cy, r float64, sides int) [][2]float64 {
	pts := make([][2]float64, sides)
	for i := range pts {
		a := -math.Pi/2 + 2*math.Pi*float64(i)/float64(sides)
		pts[i] = [2]float64{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	return pts
}

func rect(x0, y0, x1, y1 float64) [][2]float64 {
	return [][2]float64{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func ellipseMask(width, height int, cx, cy, rx, ry float64) (*image.Buffer, error) {
	return rasterize(width, height, func(r *vector.Rasterizer) {
		addEllipse(r, float32(cx), float32(cy), float32(rx), float32(ry))
	})
}

func rasterize(width, height int, build func(r *vector.Rasterizer)) (*image.Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, image.ErrInvalidDimensions
	}
	r := vector.NewRasterizer(width, height)
	build(r)

	dst := stdimage.NewAlpha(stdimage.Rect(0, 0, width, height))
	r.Draw(dst, dst.Bounds(), stdimage.NewUniform(color.Alpha{A: 255}), stdimage.Point{})
	return image.FromRaw(dst.Pix, width, height, image.FormatGray8)
}

func addPolygon(r *vector.Rasterizer, pts [][2]float64) {
	if len(pts) < 3 {
		return
	}
	r.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, p := range pts[1:] {
		r.LineTo(float32(p[0]), float32(p[1]))
	}
	r.ClosePath()
}

// addEllipse approximates an ellipse with four cubic Bézier arcs.
func addEllipse(r *vector.Rasterizer, cx, cy, rx, ry float32) {
	const k = float32(0.5522847498)
	kx, ky := k*rx, k*ry

	r.MoveTo(cx+rx, cy)
	r.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	r.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	r.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	r.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	r.ClosePath()
}
