// Package stereogram synthesizes single-image random-dot autostereograms.
//
// The canvas is cut into vertical strips one period wide. The first strip is
// copied from the pattern, optionally perturbed by noise; every pixel to the
// right of it repeats the pixel s columns to its left, where s is the period
// shortened by the disparity of the local depth value. Rows are resolved
// left to right in a single pass, so each referenced column is final before
// it is read.
package stereogram

import (
	"math"
	"math/rand/v2"

	"github.com/gogpu/gg-compose/internal/image"
)

// Params configures Synthesize.
type Params struct {
	// Divisions is the number of strips across the canvas. Values below 1
	// are treated as 1.
	Divisions int

	// Noise in [0,1] blends strip 0 toward uniform random values.
	Noise float64

	// Gamma in [0,1] scales the disparity produced by a depth value.
	Gamma float64

	// Shift in [-1,1] biases every depth value before scaling.
	Shift float64

	// Interp resamples the depth map to the pattern canvas.
	Interp image.Interpolation
}

// DefaultParams returns the stock configuration: 8 strips, 0.33 noise and
// gamma, full shift.
func DefaultParams() Params {
	return Params{Divisions: 8, Noise: 0.33, Gamma: 0.33, Shift: 1, Interp: image.InterpLinear}
}

// Period returns the strip width for a canvas of the given width.
func (p Params) Period(width int) int {
	d := max(p.Divisions, 1)
	return max(width/d, 1)
}

// Disparity returns the leftward offset in columns produced by depth value
// z (0 far, 255 near) for strips of the given period. It lies in
// [0, period-1] so the lookup distance never exceeds one period.
func (p Params) Disparity(z uint8, period int) int {
	g := clamp01(p.Gamma)
	shift := math.Max(-1, math.Min(1, p.Shift))
	d := int(math.Round(g * float64(period) * 0.5 * (float64(z)/255 + shift)))
	return max(0, min(d, period-1))
}

// Synthesize renders an autostereogram on pattern's canvas. depth is
// converted to luminance and resized to the canvas; a nil depth is a flat
// far plane. rng supplies the strip noise; nil uses a fixed seed.
func Synthesize(pattern, depth *image.Buffer, p Params, rng *rand.Rand) (*image.Buffer, error) {
	if pattern == nil {
		return nil, image.ErrInvalidDimensions
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(0, 0))
	}
	src := image.ToRGBA(pattern)
	w, h := src.Bounds()

	var z *image.Buffer
	if depth == nil {
		z = image.MustBuffer(w, h, image.FormatGray8)
	} else {
		var err error
		z, err = image.Resize(image.ToGray(depth), w, h, p.Interp)
		if err != nil {
			return nil, err
		}
	}

	dst := image.MustBuffer(w, h, image.FormatRGBA8)
	period := p.Period(w)
	noise := clamp01(p.Noise)

	var shifts [256]int
	for i := range shifts {
		shifts[i] = period - p.Disparity(uint8(i), period)
	}

	for y := range h {
		in := src.Row(y)
		out := dst.Row(y)
		zr := z.Row(y)
		for x := range w {
			o := x * 4
			if x < period {
				for c := range 3 {
					v := float64(in[o+c])
					if noise > 0 {
						v = v*(1-noise) + rng.Float64()*255*noise
					}
					out[o+c] = image.ClampByte(v)
				}
				out[o+3] = in[o+3]
				continue
			}
			s := min(shifts[zr[x]], x)
			copy(out[o:o+4], out[o-s*4:o-s*4+4])
		}
	}
	return dst, nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
