package shape

import (
	"math"

	"github.com/gogpu/gg-compose/internal/image"
)

// Paint turns a coverage mask into an RGBA image: color is laid over matte
// in proportion to coverage, and alpha is the coverage scaled by color's
// alpha.
func Paint(mask *image.Buffer, fg, matte image.Color) *image.Buffer {
	m := image.ToGray(mask)
	w, h := m.Bounds()
	dst := image.MustBuffer(w, h, image.FormatRGBA8)
	d := dst.Data()
	for i, c := range m.Data() {
		t := float64(c) / 255
		o := i * 4
		d[o] = lerp(matte.R, fg.R, t)
		d[o+1] = lerp(matte.G, fg.G, t)
		d[o+2] = lerp(matte.B, fg.B, t)
		d[o+3] = image.ClampByte(float64(fg.A) * t)
	}
	return dst
}

// CropFree keeps the part of src inside quad, given as fractions of the
// canvas in TL, TR, BR, BL order. Pixels outside the quad are blended toward
// fill by their coverage and the result is cut to the quad's bounding box.
func CropFree(src *image.Buffer, quad [4][2]float64, fill image.Color) (*image.Buffer, error) {
	rgba := image.ToRGBA(src)
	w, h := rgba.Bounds()
	fw, fh := float64(w), float64(h)

	pts := make([][2]float64, 4)
	x0, y0, x1, y1 := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for i, q := range quad {
		x, y := q[0]*fw, q[1]*fh
		pts[i] = [2]float64{x, y}
		x0, y0 = math.Min(x0, x), math.Min(y0, y)
		x1, y1 = math.Max(x1, x), math.Max(y1, y)
	}

	cov, err := Fill(w, h, pts)
	if err != nil {
		return nil, err
	}
	d := rgba.Data()
	for i, c := range cov.Data() {
		if c == 255 {
			continue
		}
		t := float64(c) / 255
		o := i * 4
		d[o] = lerp(fill.R, d[o], t)
		d[o+1] = lerp(fill.G, d[o+1], t)
		d[o+2] = lerp(fill.B, d[o+2], t)
		d[o+3] = lerp(fill.A, d[o+3], t)
	}

	bx0 := max(0, int(math.Floor(x0)))
	by0 := max(0, int(math.Floor(y0)))
	bx1 := min(w, int(math.Ceil(x1)))
	by1 := min(h, int(math.Ceil(y1)))
	if bx1-bx0 <= 0 || by1-by0 <= 0 {
		return nil, image.ErrInvalidDimensions
	}
	return image.Crop(rgba, bx0, by0, bx1-bx0, by1-by0, fill)
}

func lerp(a, b uint8, t float64) uint8 {
	return image.ClampByte(float64(a) + (float64(b)-float64(a))*t)
}
