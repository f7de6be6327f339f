package compose

import (
	"math"

	"github.com/gogpu/gg-compose/internal/broadcast"
	"github.com/gogpu/gg-compose/internal/color"
	"github.com/gogpu/gg-compose/internal/image"
)

// ColorTheoryParams are the broadcast parameters of ColorTheory.
type ColorTheoryParams struct {
	Images []*Buffer // nil: a matte canvas
	Scheme []Scheme  // COMPLEMENTARY
	Angle  []float64 // 0, added to every offset, clamped to [-180, 180]
	Invert []bool    // false; true inverts the color channels of every output
	Matte  []Color   // opaque black
}

// ColorTheory returns, per item, the image followed by one hue-rotated copy
// per offset of the scheme: at most five images.
func (e *Engine) ColorTheory(p ColorTheoryParams) ([][]*Buffer, error) {
	images := broadcast.Default(p.Images, nil)
	scheme := broadcast.Default(p.Scheme, Complementary)
	angle := broadcast.Default(p.Angle, 0)
	invert := broadcast.Default(p.Invert, false)
	matte := broadcast.Default(p.Matte, DefaultMatte)
	n := broadcast.Length(len(images), len(scheme), len(angle), len(invert), len(matte))

	return run(e, "color_theory", n, func(i int) ([]*Buffer, error) {
		img, err := e.operand(broadcast.Pick(images, i), broadcast.Pick(matte, i))
		if err != nil {
			return nil, err
		}
		a := math.Max(-180, math.Min(180, broadcast.Pick(angle, i)))
		out, err := color.Harmonize(img, broadcast.Pick(scheme, i), a)
		if err != nil {
			return nil, err
		}
		if broadcast.Pick(invert, i) {
			for k, b := range out {
				out[k] = image.Invert(b)
			}
		}
		return out, nil
	})
}
