package compose

import (
	"github.com/gogpu/gg-compose/internal/broadcast"
	"github.com/gogpu/gg-compose/internal/geometry"
	"github.com/gogpu/gg-compose/internal/image"
	"github.com/gogpu/gg-compose/internal/projection"
)

// TransformParams are the broadcast parameters of Transform.
// A nil field takes the default noted next to it.
type TransformParams struct {
	Images     []*Buffer       // nil: a matte canvas of the engine's minimum size
	Offset     []Vec2          // (0, 0), fraction of the canvas
	Angle      []float64       // 0, degrees counter-clockwise
	Scale      []Vec2          // (1, 1), clamped away from zero
	Edge       []EdgeMode      // CLIP
	Mirror     []MirrorMode    // NONE
	Pivot      []Vec2          // (0.5, 0.5)
	Tile       []Size          // (1, 1)
	Projection []Projection    // NORMAL
	Corners    []Quad          // IdentityQuad
	Strength   []float64       // 1
	Mode       []ScaleMode     // NONE
	WH         []Size          // engine minimum size
	Interp     []Interpolation // LANCZOS4
	Matte      []Color         // opaque black
}

// Transform runs the geometric pipeline on every item: affine transform,
// mirror, tile, projection and an optional scale-fit. Every stage before the
// scale-fit keeps the input size.
func (e *Engine) Transform(p TransformParams) ([]Output, error) {
	ms := e.opts.minSize
	images := broadcast.Default(p.Images, nil)
	offset := broadcast.Default(p.Offset, Vec2{})
	angle := broadcast.Default(p.Angle, 0)
	scale := broadcast.Default(p.Scale, Vec2{1, 1})
	edge := broadcast.Default(p.Edge, EdgeClip)
	mirror := broadcast.Default(p.Mirror, MirrorNone)
	pivot := broadcast.Default(p.Pivot, Vec2{0.5, 0.5})
	tile := broadcast.Default(p.Tile, Size{1, 1})
	proj := broadcast.Default(p.Projection, ProjectionNormal)
	corners := broadcast.Default(p.Corners, IdentityQuad)
	strength := broadcast.Default(p.Strength, 1)
	mode := broadcast.Default(p.Mode, ScaleNone)
	wh := broadcast.Default(p.WH, Size{ms, ms})
	interp := broadcast.Default(p.Interp, InterpLanczos4)
	matte := broadcast.Default(p.Matte, DefaultMatte)

	n := broadcast.Length(len(images), len(offset), len(angle), len(scale), len(edge),
		len(mirror), len(pivot), len(tile), len(proj), len(corners), len(strength),
		len(mode), len(wh), len(interp), len(matte))

	return run(e, "transform", n, func(i int) (Output, error) {
		m := broadcast.Pick(matte, i)
		in := broadcast.Pick(interp, i)

		img, err := e.operand(broadcast.Pick(images, i), m)
		if err != nil {
			return Output{}, err
		}
		w, h := img.Bounds()

		out, err := geometry.Transform(img, geometry.Params{
			Offset: broadcast.Pick(offset, i),
			Angle:  broadcast.Pick(angle, i),
			Scale:  broadcast.Pick(scale, i),
			Interp: in,
			Edge:   broadcast.Pick(edge, i),
			Fill:   image.Transparent,
		})
		if err != nil {
			return Output{}, err
		}

		if mm := broadcast.Pick(mirror, i); mm != MirrorNone {
			if out, err = geometry.Mirror(out, mm, broadcast.Pick(pivot, i)); err != nil {
				return Output{}, err
			}
		}

		t := broadcast.Pick(tile, i)
		if out, err = geometry.Tile(out, t[0], t[1], in); err != nil {
			return Output{}, err
		}

		out, err = projection.Apply(out, projection.Params{
			Kind:     broadcast.Pick(proj, i),
			Corners:  broadcast.Pick(corners, i),
			Strength: broadcast.Pick(strength, i),
			Interp:   in,
		})
		if err != nil {
			return Output{}, err
		}

		Logger().Debug("compose: transform", "index", i, "w", w, "h", h)
		return finish(out, broadcast.Pick(mode, i), broadcast.Pick(wh, i), in, m)
	})
}
