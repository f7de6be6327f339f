package compose

import (
	"github.com/gogpu/gg-compose/internal/image"
)

// Output is the per-item result of an image-producing operation.
type Output struct {
	// Image is the RGBA result.
	Image *Buffer

	// RGB is Image composited over the matte, without alpha.
	RGB *Buffer

	// Mask is the alpha plane of Image.
	Mask *Buffer
}

func newOutput(img *Buffer, matte Color) Output {
	rgba := image.ToRGBA(img)
	return Output{
		Image: rgba,
		RGB:   image.Flatten(rgba, matte),
		Mask:  image.Alpha(rgba),
	}
}

// DefaultMatte is opaque black.
var DefaultMatte = Color{A: 255}

// canvas returns a matte buffer of size wh, falling back to the engine's
// minimum size for non-positive dimensions.
func (e *Engine) canvas(wh Size, matte Color) (*Buffer, error) {
	w, h := wh[0], wh[1]
	if w <= 0 || h <= 0 {
		w, h = e.opts.minSize, e.opts.minSize
	}
	return image.Solid(w, h, image.FormatRGBA8, matte)
}

// finish applies the optional scale-fit and wraps the result. Padding
// added by the fit is transparent, so it shows the matte in Output.RGB.
func finish(img *Buffer, mode ScaleMode, wh Size, interp Interpolation, matte Color) (Output, error) {
	if mode != ScaleNone {
		var err error
		if img, err = image.Fit(img, max(wh[0], 1), max(wh[1], 1), mode, interp, image.Transparent); err != nil {
			return Output{}, err
		}
	}
	return newOutput(img, matte), nil
}

// operand coerces an optional image: nil becomes a matte canvas of the
// minimum size, anything else is converted to RGBA.
func (e *Engine) operand(img *Buffer, matte Color) (*Buffer, error) {
	return image.Coerce(img, e.opts.minSize, e.opts.minSize, matte)
}
