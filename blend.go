package compose

import (
	"github.com/gogpu/gg-compose/internal/blend"
	"github.com/gogpu/gg-compose/internal/broadcast"
)

// BlendParams are the broadcast parameters of Blend.
type BlendParams struct {
	A, B   []*Buffer       // nil: a matte canvas
	Mask   []*Buffer       // nil: B's alpha, else A's alpha, else Matte.A
	Func   []BlendMode     // NORMAL
	Alpha  []float64       // 1
	Flip   []bool          // false; true exchanges A and B
	Invert []bool          // false; true inverts the mask
	Mode   []ScaleMode     // NONE: post-resize policy
	WH     []Size          // engine minimum size
	Interp []Interpolation // LANCZOS4
	Matte  []Color         // opaque black
}

// Blend composites B over A with a blend function, weighted per pixel by
// alpha times the mask. The canvas is A's (or B's when A is nil).
func (e *Engine) Blend(p BlendParams) ([]Output, error) {
	ms := e.opts.minSize
	as := broadcast.Default(p.A, nil)
	bs := broadcast.Default(p.B, nil)
	masks := broadcast.Default(p.Mask, nil)
	fn := broadcast.Default(p.Func, BlendNormal)
	alpha := broadcast.Default(p.Alpha, 1)
	flip := broadcast.Default(p.Flip, false)
	invert := broadcast.Default(p.Invert, false)
	mode := broadcast.Default(p.Mode, ScaleNone)
	wh := broadcast.Default(p.WH, Size{ms, ms})
	interp := broadcast.Default(p.Interp, InterpLanczos4)
	matte := broadcast.Default(p.Matte, DefaultMatte)

	n := broadcast.Length(len(as), len(bs), len(masks), len(fn), len(alpha), len(flip),
		len(invert), len(mode), len(wh), len(interp), len(matte))

	return run(e, "blend", n, func(i int) (Output, error) {
		m := broadcast.Pick(matte, i)
		in := broadcast.Pick(interp, i)
		img, err := blend.Apply(blend.Params{
			A:       broadcast.Pick(as, i),
			B:       broadcast.Pick(bs, i),
			Mask:    broadcast.Pick(masks, i),
			Mode:    broadcast.Pick(fn, i),
			Alpha:   broadcast.Pick(alpha, i),
			Flip:    broadcast.Pick(flip, i),
			Invert:  broadcast.Pick(invert, i),
			Matte:   m,
			MinSize: ms,
			Interp:  in,
		})
		if err != nil {
			return Output{}, err
		}
		return finish(img, broadcast.Pick(mode, i), broadcast.Pick(wh, i), in, m)
	})
}
