package compose

import (
	"github.com/gogpu/gg-compose/internal/broadcast"
	"github.com/gogpu/gg-compose/internal/geometry"
	"github.com/gogpu/gg-compose/internal/image"
	"github.com/gogpu/gg-compose/internal/shape"
)

// ConstantParams are the broadcast parameters of Constant.
type ConstantParams struct {
	Images []*Buffer // nil: generate a solid canvas
	Color  []Color   // opaque black
	WH     []Size    // engine minimum size
}

// Constant produces a solid WH canvas of Color per item. When an image is
// supplied it is passed through and Color becomes its matte.
func (e *Engine) Constant(p ConstantParams) ([]Output, error) {
	ms := e.opts.minSize
	images := broadcast.Default(p.Images, nil)
	colors := broadcast.Default(p.Color, DefaultMatte)
	wh := broadcast.Default(p.WH, Size{ms, ms})
	n := broadcast.Length(len(images), len(colors), len(wh))

	return run(e, "constant", n, func(i int) (Output, error) {
		c := broadcast.Pick(colors, i)
		img := broadcast.Pick(images, i)
		if img == nil {
			var err error
			if img, err = e.canvas(broadcast.Pick(wh, i), c); err != nil {
				return Output{}, err
			}
		}
		return newOutput(img, c), nil
	})
}

// ShapeParams are the broadcast parameters of Shape.
type ShapeParams struct {
	Kind  []ShapeKind // CIRCLE
	Sides []int       // 3, for POLYGON, clamped to [3, 100]
	Color []Color     // opaque white
	Matte []Color     // opaque black
	WH    []Size      // engine minimum size
	Angle []float64   // 0, degrees counter-clockwise
	Size  []Vec2      // (1, 1), fraction of the canvas
	Edge  []EdgeMode  // CLIP
}

// Shape renders an anti-aliased shape centered on a WH canvas. Coverage
// becomes the alpha plane scaled by Color's alpha; the rendered shape is
// then rotated by Angle.
func (e *Engine) Shape(p ShapeParams) ([]Output, error) {
	ms := e.opts.minSize
	kind := broadcast.Default(p.Kind, ShapeCircle)
	sides := broadcast.Default(p.Sides, shape.MinSides)
	colors := broadcast.Default(p.Color, Color{R: 255, G: 255, B: 255, A: 255})
	matte := broadcast.Default(p.Matte, DefaultMatte)
	wh := broadcast.Default(p.WH, Size{ms, ms})
	angle := broadcast.Default(p.Angle, 0)
	size := broadcast.Default(p.Size, Vec2{1, 1})
	edge := broadcast.Default(p.Edge, EdgeClip)
	n := broadcast.Length(len(kind), len(sides), len(colors), len(matte), len(wh),
		len(angle), len(size), len(edge))

	return run(e, "shape", n, func(i int) (Output, error) {
		m := broadcast.Pick(matte, i)
		s := broadcast.Pick(wh, i)
		w, h := s[0], s[1]
		if w <= 0 || h <= 0 {
			w, h = ms, ms
		}
		mask, err := shape.Mask(broadcast.Pick(kind, i), w, h, broadcast.Pick(size, i), broadcast.Pick(sides, i))
		if err != nil {
			return Output{}, err
		}
		img := shape.Paint(mask, broadcast.Pick(colors, i), m)

		params := geometry.Identity()
		params.Angle = broadcast.Pick(angle, i)
		params.Edge = broadcast.Pick(edge, i)
		params.Fill = image.Transparent
		if img, err = geometry.Transform(img, params); err != nil {
			return Output{}, err
		}
		return newOutput(img, m), nil
	})
}
