// Package channel implements per-plane algebra on pixel buffers: split,
// merge, alpha synthesis and swizzle.
//
// Planes are Gray8 buffers. Multi-plane results are RGBA8.
package channel

import (
	"errors"

	"github.com/gogpu/gg-compose/internal/image"
)

// ErrNoShape is returned when Merge has neither an input plane nor a
// fallback size to take its canvas from.
var ErrNoShape = errors.New("channel: cannot determine output shape")

// MaskAdd returns src as RGBA with a guaranteed alpha plane.
//
// If mask is non-nil its luminance, stretched to the canvas of src, becomes
// the alpha plane. Otherwise an existing alpha plane is kept and sources
// with 1 or 3 channels become fully opaque.
func MaskAdd(src, mask *image.Buffer, interp image.Interpolation) (*image.Buffer, error) {
	dst := image.ToRGBA(src)
	if mask == nil {
		return dst, nil
	}

	plane, err := image.Resize(image.ToGray(mask), dst.Width(), dst.Height(), interp)
	if err != nil {
		return nil, err
	}
	d, a := dst.Data(), plane.Data()
	for i, v := range a {
		d[i*4+3] = v
	}
	return dst, nil
}

// Split returns the R, G, B and A planes of src. Sources without alpha get
// a fully opaque A plane.
func Split(src *image.Buffer) [4]*image.Buffer {
	rgba := image.ToRGBA(src)
	var planes [4]*image.Buffer
	for c := range planes {
		planes[c], _ = image.Plane(rgba, c)
	}
	return planes
}

// MergeDefaults are the fill values for absent planes.
type MergeDefaults struct {
	Color uint8 // R, G and B
	Alpha uint8
}

// DefaultMerge fills absent color planes with 0 and an absent alpha with 255.
var DefaultMerge = MergeDefaults{Color: 0, Alpha: 255}

// Merge combines up to four planes into an RGBA buffer.
//
// The canvas is taken from the first non-nil plane in R, G, B, A order, or
// from size when every plane is nil. Planes with several channels contribute
// their luminance; planes of a different size are stretched to the canvas.
func Merge(planes [4]*image.Buffer, size [2]int, defaults MergeDefaults, interp image.Interpolation) (*image.Buffer, error) {
	w, h := size[0], size[1]
	for _, p := range planes {
		if p != nil {
			w, h = p.Bounds()
			break
		}
	}
	if w <= 0 || h <= 0 {
		return nil, ErrNoShape
	}

	dst, err := image.NewBuffer(w, h, image.FormatRGBA8)
	if err != nil {
		return nil, err
	}
	d := dst.Data()

	for c, p := range planes {
		if p == nil {
			v := defaults.Color
			if c == 3 {
				v = defaults.Alpha
			}
			for i := c; i < len(d); i += 4 {
				d[i] = v
			}
			continue
		}

		plane, err := image.Resize(image.ToGray(p), w, h, interp)
		if err != nil {
			return nil, err
		}
		for i, v := range plane.Data() {
			d[i*4+c] = v
		}
	}
	return dst, nil
}
