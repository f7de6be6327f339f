package compose

import (
	"github.com/gogpu/gg-compose/internal/broadcast"
	"github.com/gogpu/gg-compose/internal/channel"
)

// SplitParams are the broadcast parameters of Split.
type SplitParams struct {
	Images []*Buffer       // nil: a matte canvas
	Masks  []*Buffer       // nil: keep the image's own alpha
	Interp []Interpolation // LANCZOS4, stretches a mask to the image
	Matte  []Color         // opaque black, fills absent images
}

// Split returns the R, G, B and A planes of every item as Gray8 masks.
// A supplied mask first replaces the alpha plane.
func (e *Engine) Split(p SplitParams) ([][4]*Buffer, error) {
	images := broadcast.Default(p.Images, nil)
	masks := broadcast.Default(p.Masks, nil)
	interp := broadcast.Default(p.Interp, InterpLanczos4)
	matte := broadcast.Default(p.Matte, DefaultMatte)
	n := broadcast.Length(len(images), len(masks), len(interp), len(matte))

	return run(e, "split", n, func(i int) ([4]*Buffer, error) {
		img, err := e.operand(broadcast.Pick(images, i), broadcast.Pick(matte, i))
		if err != nil {
			return [4]*Buffer{}, err
		}
		img, err = channel.MaskAdd(img, broadcast.Pick(masks, i), broadcast.Pick(interp, i))
		if err != nil {
			return [4]*Buffer{}, err
		}
		return channel.Split(img), nil
	})
}

// MergeParams are the broadcast parameters of Merge.
type MergeParams struct {
	R, G, B, A []*Buffer       // nil planes take the defaults below
	Color      []uint8         // 0, fill for absent R, G and B planes
	Alpha      []uint8         // 255, fill for an absent A plane
	Mode       []ScaleMode     // NONE
	WH         []Size          // engine minimum size, also the canvas when every plane is nil
	Interp     []Interpolation // LANCZOS4
	Matte      []Color         // opaque black
}

// Merge combines up to four planes into an RGBA image per item. The canvas
// is the first present plane's; planes of other sizes are stretched to it.
func (e *Engine) Merge(p MergeParams) ([]Output, error) {
	ms := e.opts.minSize
	rs := broadcast.Default(p.R, nil)
	gs := broadcast.Default(p.G, nil)
	bs := broadcast.Default(p.B, nil)
	as := broadcast.Default(p.A, nil)
	fillColor := broadcast.Default(p.Color, channel.DefaultMerge.Color)
	fillAlpha := broadcast.Default(p.Alpha, channel.DefaultMerge.Alpha)
	mode := broadcast.Default(p.Mode, ScaleNone)
	wh := broadcast.Default(p.WH, Size{ms, ms})
	interp := broadcast.Default(p.Interp, InterpLanczos4)
	matte := broadcast.Default(p.Matte, DefaultMatte)

	n := broadcast.Length(len(rs), len(gs), len(bs), len(as), len(fillColor), len(fillAlpha),
		len(mode), len(wh), len(interp), len(matte))

	return run(e, "merge", n, func(i int) (Output, error) {
		in := broadcast.Pick(interp, i)
		size := broadcast.Pick(wh, i)
		planes := [4]*Buffer{
			broadcast.Pick(rs, i), broadcast.Pick(gs, i),
			broadcast.Pick(bs, i), broadcast.Pick(as, i),
		}
		img, err := channel.Merge(planes, size, channel.MergeDefaults{
			Color: broadcast.Pick(fillColor, i),
			Alpha: broadcast.Pick(fillAlpha, i),
		}, in)
		if err != nil {
			return Output{}, err
		}
		return finish(img, broadcast.Pick(mode, i), size, in, broadcast.Pick(matte, i))
	})
}

// SwapParams are the broadcast parameters of Swap.
type SwapParams struct {
	A, B      []*Buffer     // nil: a matte canvas
	Selectors [][4]Selector // RED_A, GREEN_A, BLUE_A, ALPHA_A
	Constants []Color       // zero, used by CONSTANT selectors
	Matte     []Color       // opaque black
}

// Swap builds each output channel from a chosen plane of A or B or from a
// constant. B is center-cropped or padded to A's canvas.
func (e *Engine) Swap(p SwapParams) ([]Output, error) {
	as := broadcast.Default(p.A, nil)
	bs := broadcast.Default(p.B, nil)
	sel := broadcast.Default(p.Selectors, channel.DefaultSwizzle)
	consts := broadcast.Default(p.Constants, Color{})
	matte := broadcast.Default(p.Matte, DefaultMatte)
	n := broadcast.Length(len(as), len(bs), len(sel), len(consts), len(matte))

	return run(e, "swap", n, func(i int) (Output, error) {
		m := broadcast.Pick(matte, i)
		img, err := channel.Swizzle(broadcast.Pick(as, i), broadcast.Pick(bs, i),
			broadcast.Pick(sel, i), broadcast.Pick(consts, i), m, e.opts.minSize)
		if err != nil {
			return Output{}, err
		}
		return newOutput(img, m), nil
	})
}

// MaskAddParams are the broadcast parameters of MaskAdd.
type MaskAddParams struct {
	Images []*Buffer       // nil: a matte canvas
	Masks  []*Buffer       // nil: keep or synthesize an opaque alpha plane
	Interp []Interpolation // LANCZOS4
	Matte  []Color         // opaque black
}

// MaskAdd guarantees every item has an alpha plane, taken from the mask's
// luminance when one is supplied.
func (e *Engine) MaskAdd(p MaskAddParams) ([]Output, error) {
	images := broadcast.Default(p.Images, nil)
	masks := broadcast.Default(p.Masks, nil)
	interp := broadcast.Default(p.Interp, InterpLanczos4)
	matte := broadcast.Default(p.Matte, DefaultMatte)
	n := broadcast.Length(len(images), len(masks), len(interp), len(matte))

	return run(e, "mask_add", n, func(i int) (Output, error) {
		m := broadcast.Pick(matte, i)
		img, err := e.operand(broadcast.Pick(images, i), m)
		if err != nil {
			return Output{}, err
		}
		img, err = channel.MaskAdd(img, broadcast.Pick(masks, i), broadcast.Pick(interp, i))
		if err != nil {
			return Output{}, err
		}
		return newOutput(img, m), nil
	})
}
