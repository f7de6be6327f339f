package blend

import (
	"errors"

	"github.com/gogpu/gg-compose/internal/image"
)

// Errors returned by the compositor.
var (
	// ErrSizeMismatch is returned when Composite operands differ in size.
	ErrSizeMismatch = errors.New("blend: operand size mismatch")

	// ErrNoCanvas is returned when neither operand nor a minimum size
	// defines the canvas.
	ErrNoCanvas = errors.New("blend: cannot determine canvas size")
)

// Composite blends b over a with mode, weighting each pixel by
// alpha·mask/255:
//
//	out = a + (f(a, b) - a)·w
//
// Color channels use the mode's function. The alpha channel is lerped from
// a's alpha toward b's with the same weight. a and b must be RGBA8 and mask
// Gray8, all of the same size.
func Composite(a, b, mask *image.Buffer, mode Mode, alpha float64) (*image.Buffer, error) {
	if !a.SameSize(b) || !a.SameSize(mask) {
		return nil, ErrSizeMismatch
	}
	if a.Format() != image.FormatRGBA8 || b.Format() != image.FormatRGBA8 || mask.Format() != image.FormatGray8 {
		return nil, image.ErrInvalidFormat
	}
	if !mode.IsValid() {
		return nil, image.ErrUnknownMode
	}
	alpha = max(0, min(1, alpha))

	dst := image.MustBuffer(a.Width(), a.Height(), image.FormatRGBA8)
	ad, bd, md, dd := a.Data(), b.Data(), mask.Data(), dst.Data()

	for i, m := range md {
		o := i * 4
		w := alpha * float64(m) / 255
		if w == 0 {
			copy(dd[o:o+4], ad[o:o+4])
			continue
		}

		av := [3]float64{float64(ad[o]), float64(ad[o+1]), float64(ad[o+2])}
		bv := [3]float64{float64(bd[o]), float64(bd[o+1]), float64(bd[o+2])}
		f := mode.RGB(av, bv)
		for c := range 3 {
			dd[o+c] = image.ClampByte(av[c] + (f[c]-av[c])*w)
		}
		aa, ba := float64(ad[o+3]), float64(bd[o+3])
		dd[o+3] = image.ClampByte(aa + (ba-aa)*w)
	}
	return dst, nil
}

// Params describes one compositor invocation.
type Params struct {
	// A is the backdrop and B the overlay. Either may be nil.
	A, B *image.Buffer

	// Mask weights B over A per pixel. When nil it is taken from B's alpha,
	// else A's alpha, else filled with Matte.A.
	Mask *image.Buffer

	Mode  Mode
	Alpha float64

	// Flip exchanges A and B before anything else.
	Flip bool

	// Invert replaces the mask m with 255-m.
	Invert bool

	// Matte fills absent operands and the area A is flattened onto.
	Matte image.Color

	// MinSize is the canvas edge used when both operands are nil.
	MinSize int

	// Interp resamples an explicit mask of a different size.
	Interp image.Interpolation
}

// Apply runs the compositor on the canvas of the first available operand.
//
// A is composited onto the matte color keeping its alpha; B is
// center-cropped or padded to the canvas. An explicit mask contributes its
// luminance, stretched to the canvas.
//
// Because A is matted first, a translucent A comes back darkened toward the
// matte, and its alpha moves toward B's by the mask weight. Laws such as
// MULTIPLY with white reproducing A hold exactly only for opaque A.
func Apply(p Params) (*image.Buffer, error) {
	a, b := p.A, p.B
	if p.Flip {
		a, b = b, a
	}

	w, h := p.MinSize, p.MinSize
	switch {
	case a != nil:
		w, h = a.Bounds()
	case b != nil:
		w, h = b.Bounds()
	}
	if w <= 0 || h <= 0 {
		return nil, ErrNoCanvas
	}

	var candidate *image.Buffer
	if a == nil {
		a, _ = image.Solid(w, h, image.FormatRGBA8, p.Matte)
	} else {
		a = image.Matte(a, p.Matte)
		candidate = a
	}

	if b == nil {
		b, _ = image.Solid(w, h, image.FormatRGBA8, p.Matte)
	} else {
		b = image.ToRGBA(b)
		if !b.SameSize(a) {
			var err error
			if b, err = image.CropCenter(b, w, h, image.Transparent); err != nil {
				return nil, err
			}
		}
		candidate = b
	}

	mask, err := resolveMask(p.Mask, candidate, w, h, p.Matte.A, p.Interp)
	if err != nil {
		return nil, err
	}
	if p.Invert {
		mask = image.InvertAll(mask)
	}

	return Composite(a, b, mask, p.Mode, p.Alpha)
}

// resolveMask picks the explicit mask, the candidate's alpha or a solid fill.
func resolveMask(explicit, candidate *image.Buffer, w, h int, fill uint8, interp image.Interpolation) (*image.Buffer, error) {
	switch {
	case explicit != nil:
		return image.Resize(image.ToGray(explicit), w, h, interp)
	case candidate != nil:
		return image.Alpha(candidate), nil
	default:
		return image.Solid(w, h, image.FormatGray8, image.Color{R: fill, G: fill, B: fill, A: 255})
	}
}

// Accumulate returns dst + src per channel with saturation. src must have the
// size and format of dst.
func Accumulate(dst, src *image.Buffer) (*image.Buffer, error) {
	if !dst.SameSize(src) || dst.Format() != src.Format() {
		return nil, ErrSizeMismatch
	}
	out := dst.Clone()
	od, sd := out.Data(), src.Data()
	for i := range od {
		od[i] = uint8(min(int(od[i])+int(sd[i]), 255))
	}
	return out, nil
}
